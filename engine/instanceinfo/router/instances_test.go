package instancerouter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mecsphere/appo/engine/infra/server/appstate"
	router "github.com/mecsphere/appo/engine/infra/server/router"
	"github.com/mecsphere/appo/engine/instanceinfo"
	"github.com/mecsphere/appo/engine/instanceinfo/testutil"
	"github.com/mecsphere/appo/engine/instanceinfo/uc"
	"github.com/mecsphere/appo/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tenantID   = "18db0283-3c67-4042-a708-a8e4c9ad60a2"
	instanceID = "71c5de0a-3b2c-4c15-9d8b-5f6e3e1b2a4c"
	basePath   = "/appo/v1/tenants/" + tenantID + "/app_instance_infos"
)

// setupRouterWithState creates a test gin router with app state middleware installed.
func setupRouterWithState(t *testing.T, repo uc.Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st, err := appstate.NewState(appstate.NewBaseDeps(config.Default(), repo))
	require.NoError(t, err)
	r := gin.New()
	r.Use(appstate.StateMiddleware(st))
	api := r.Group("/appo/v1")
	Register(api)
	return r
}

func seedRepo(t *testing.T) *testutil.InMemoryRepo {
	t.Helper()
	repo := testutil.NewInMemoryRepo()
	err := repo.CreateInstanceInfo(context.Background(), &instanceinfo.AppInstanceInfo{
		TenantID:      tenantID,
		AppInstanceID: instanceID,
		AppName:       "positioning-service",
		AppPackageID:  "pkg-001",
	})
	require.NoError(t, err)
	return repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", "token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func Test_getInstanceInfo_Handler(t *testing.T) {
	t.Run("Should return 200 with the record", func(t *testing.T) {
		repo := seedRepo(t)
		r := setupRouterWithState(t, repo)
		w := doJSON(t, r, http.MethodGet, basePath+"/"+instanceID, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var dto AppInstanceInfoDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.Equal(t, instanceID, dto.AppInstanceID)
		assert.Equal(t, "positioning-service", dto.AppName)
	})
	t.Run("Should return 404 when the record does not exist", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		r := setupRouterWithState(t, repo)
		w := doJSON(t, r, http.MethodGet, basePath+"/"+instanceID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), router.ErrNotFoundCode)
	})
	t.Run("Should reject an invalid instance id before hitting the repository", func(t *testing.T) {
		repo := seedRepo(t)
		r := setupRouterWithState(t, repo)
		calls := repo.Calls()
		w := doJSON(t, r, http.MethodGet, basePath+"/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), router.ErrBadRequestCode)
		assert.Equal(t, calls, repo.Calls())
	})
	t.Run("Should reject an invalid tenant id before hitting the repository", func(t *testing.T) {
		repo := seedRepo(t)
		r := setupRouterWithState(t, repo)
		calls := repo.Calls()
		w := doJSON(t, r, http.MethodGet, "/appo/v1/tenants/bogus/app_instance_infos/"+instanceID, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, calls, repo.Calls())
	})
}

func Test_listInstanceInfos_Handler(t *testing.T) {
	t.Run("Should list records of the tenant", func(t *testing.T) {
		repo := seedRepo(t)
		r := setupRouterWithState(t, repo)
		w := doJSON(t, r, http.MethodGet, basePath, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var dtos []AppInstanceInfoDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dtos))
		require.Len(t, dtos, 1)
		assert.Equal(t, instanceID, dtos[0].AppInstanceID)
	})
	t.Run("Should reject an invalid tenant id before hitting the repository", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		r := setupRouterWithState(t, repo)
		w := doJSON(t, r, http.MethodGet, "/appo/v1/tenants/%20/app_instance_infos", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, repo.Calls())
	})
}

func Test_createInstanceInfo_Handler(t *testing.T) {
	t.Run("Should create a record scoped to the path tenant", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		r := setupRouterWithState(t, repo)
		body := AppInstanceInfoDTO{
			AppInstanceID: instanceID,
			AppName:       "positioning-service",
		}
		w := doJSON(t, r, http.MethodPost, basePath, body)
		assert.Equal(t, http.StatusOK, w.Code)
		var dto AppInstanceInfoDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.Equal(t, tenantID, dto.TenantID)
		assert.False(t, dto.CreateTime.IsZero())
	})
	t.Run("Should return 409 for a duplicate record", func(t *testing.T) {
		repo := seedRepo(t)
		r := setupRouterWithState(t, repo)
		body := AppInstanceInfoDTO{AppInstanceID: instanceID, AppName: "positioning-service"}
		w := doJSON(t, r, http.MethodPost, basePath, body)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), router.ErrConflictCode)
	})
	t.Run("Should reject a structurally invalid body before delegating", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		r := setupRouterWithState(t, repo)
		w := doJSON(t, r, http.MethodPost, basePath, map[string]string{"app_descriptor": "no ids"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, repo.Calls())
	})
}

func Test_updateInstanceInfo_Handler(t *testing.T) {
	t.Run("Should force the path instance id over the body value", func(t *testing.T) {
		repo := seedRepo(t)
		r := setupRouterWithState(t, repo)
		body := AppInstanceInfoDTO{
			AppInstanceID: "deadbeef-0000-0000-0000-000000000000",
			AppName:       "positioning-service-v2",
		}
		w := doJSON(t, r, http.MethodPut, basePath+"/"+instanceID, body)
		assert.Equal(t, http.StatusOK, w.Code)
		var dto AppInstanceInfoDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.Equal(t, instanceID, dto.AppInstanceID)
		assert.Equal(t, "positioning-service-v2", dto.AppName)
	})
	t.Run("Should return 404 when the record does not exist", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		r := setupRouterWithState(t, repo)
		body := AppInstanceInfoDTO{AppInstanceID: instanceID, AppName: "x"}
		w := doJSON(t, r, http.MethodPut, basePath+"/"+instanceID, body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("Should reject a structurally invalid body before delegating", func(t *testing.T) {
		repo := seedRepo(t)
		r := setupRouterWithState(t, repo)
		calls := repo.Calls()
		w := doJSON(t, r, http.MethodPut, basePath+"/"+instanceID, map[string]string{"operation_info": "missing required fields"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, calls, repo.Calls())
	})
}

func Test_deleteInstanceInfo_Handler(t *testing.T) {
	t.Run("Should return the literal success marker", func(t *testing.T) {
		repo := seedRepo(t)
		r := setupRouterWithState(t, repo)
		w := doJSON(t, r, http.MethodDelete, basePath+"/"+instanceID, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"success"`, w.Body.String())
	})
	t.Run("Should return 404 when the record does not exist", func(t *testing.T) {
		repo := testutil.NewInMemoryRepo()
		r := setupRouterWithState(t, repo)
		w := doJSON(t, r, http.MethodDelete, basePath+"/"+instanceID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func Test_InstanceHandlers_MissingAppState(t *testing.T) {
	t.Run("Should return 500 when app state is missing", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		api := r.Group("/appo/v1")
		Register(api)
		req := httptest.NewRequest(http.MethodGet, basePath, http.NoBody)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
