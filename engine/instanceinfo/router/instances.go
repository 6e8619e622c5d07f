package instancerouter

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mecsphere/appo/engine/infra/server/router"
	"github.com/mecsphere/appo/engine/instanceinfo/uc"
	"github.com/mecsphere/appo/pkg/logger"
)

// getInstanceInfo retrieves one application instance info record
//
//	@Summary		Get application instance info
//	@Description	Retrieve one application instance info record by tenant and instance id
//	@Tags			app_instance_infos
//	@Accept			json
//	@Produce		json
//	@Param			access_token	header		string									true	"Access token"
//	@Param			tenant_id		path		string									true	"Tenant ID"
//	@Param			appInstance_id	path		string									true	"Application instance ID"
//	@Success		200				{object}	AppInstanceInfoDTO						"Record retrieved"
//	@Failure		400				{object}	router.Response{error=router.ErrorInfo}	"Invalid identifier"
//	@Failure		404				{object}	router.Response{error=router.ErrorInfo}	"Record not found"
//	@Failure		500				{object}	router.Response{error=router.ErrorInfo}	"Internal server error"
//	@Router			/tenants/{tenant_id}/app_instance_infos/{appInstance_id} [get]
func getInstanceInfo(c *gin.Context) {
	tenantID := router.GetTenantID(c)
	if tenantID == "" {
		return
	}
	appInstanceID := router.GetAppInstanceID(c)
	if appInstanceID == "" {
		return
	}
	ctx := c.Request.Context()
	logger.FromContext(ctx).Info("Retrieve application instance info", "app_instance_id", appInstanceID)
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	info, err := uc.NewGetInstance(state.Repo, tenantID, appInstanceID).Execute(ctx)
	if err != nil {
		respondWithRepoError(c, err, "application instance info not found")
		return
	}
	c.JSON(http.StatusOK, ToDTO(info))
}

// listInstanceInfos retrieves all instance info records of a tenant
//
//	@Summary		List application instance infos
//	@Description	Retrieve all application instance info records of a tenant
//	@Tags			app_instance_infos
//	@Accept			json
//	@Produce		json
//	@Param			access_token	header		string									true	"Access token"
//	@Param			tenant_id		path		string									true	"Tenant ID"
//	@Success		200				{array}		AppInstanceInfoDTO						"Records retrieved"
//	@Failure		400				{object}	router.Response{error=router.ErrorInfo}	"Invalid identifier"
//	@Failure		500				{object}	router.Response{error=router.ErrorInfo}	"Internal server error"
//	@Router			/tenants/{tenant_id}/app_instance_infos [get]
func listInstanceInfos(c *gin.Context) {
	tenantID := router.GetTenantID(c)
	if tenantID == "" {
		return
	}
	ctx := c.Request.Context()
	logger.FromContext(ctx).Info("Retrieve application instance infos")
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	infos, err := uc.NewListInstances(state.Repo, tenantID).Execute(ctx)
	if err != nil {
		reqErr := router.NewRequestError(
			http.StatusInternalServerError,
			"failed to list application instance infos",
			err,
		)
		router.RespondWithError(c, reqErr.StatusCode, reqErr)
		return
	}
	dtos := make([]AppInstanceInfoDTO, 0, len(infos))
	for _, info := range infos {
		dtos = append(dtos, ToDTO(info))
	}
	c.JSON(http.StatusOK, dtos)
}

// createInstanceInfo creates an instance info record
//
//	@Summary		Create application instance info
//	@Description	Create an application instance info record for a tenant
//	@Tags			app_instance_infos
//	@Accept			json
//	@Produce		json
//	@Param			access_token	header		string									true	"Access token"
//	@Param			tenant_id		path		string									true	"Tenant ID"
//	@Param			request			body		AppInstanceInfoDTO						true	"Instance info"
//	@Success		200				{object}	AppInstanceInfoDTO						"Record created"
//	@Failure		400				{object}	router.Response{error=router.ErrorInfo}	"Invalid identifier or body"
//	@Failure		409				{object}	router.Response{error=router.ErrorInfo}	"Record already exists"
//	@Failure		500				{object}	router.Response{error=router.ErrorInfo}	"Internal server error"
//	@Router			/tenants/{tenant_id}/app_instance_infos [post]
func createInstanceInfo(c *gin.Context) {
	tenantID := router.GetTenantID(c)
	if tenantID == "" {
		return
	}
	var dto AppInstanceInfoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		reqErr := router.NewRequestError(http.StatusBadRequest, "invalid request body", err)
		router.RespondWithError(c, reqErr.StatusCode, reqErr)
		return
	}
	ctx := c.Request.Context()
	logger.FromContext(ctx).Info("Create application instance info", "app_instance_id", dto.AppInstanceID)
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	info := dto.ToModel()
	info.TenantID = tenantID
	created, err := uc.NewCreateInstance(state.Repo, info).Execute(ctx)
	if err != nil {
		respondWithRepoError(c, err, "failed to create application instance info")
		return
	}
	c.JSON(http.StatusOK, ToDTO(created))
}

// updateInstanceInfo updates an instance info record
//
//	@Summary		Update application instance info
//	@Description	Update an application instance info record; the path instance id overrides any id in the body
//	@Tags			app_instance_infos
//	@Accept			json
//	@Produce		json
//	@Param			access_token	header		string									true	"Access token"
//	@Param			tenant_id		path		string									true	"Tenant ID"
//	@Param			appInstance_id	path		string									true	"Application instance ID"
//	@Param			request			body		AppInstanceInfoDTO						true	"Instance info"
//	@Success		200				{object}	AppInstanceInfoDTO						"Record updated"
//	@Failure		400				{object}	router.Response{error=router.ErrorInfo}	"Invalid identifier or body"
//	@Failure		404				{object}	router.Response{error=router.ErrorInfo}	"Record not found"
//	@Failure		500				{object}	router.Response{error=router.ErrorInfo}	"Internal server error"
//	@Router			/tenants/{tenant_id}/app_instance_infos/{appInstance_id} [put]
func updateInstanceInfo(c *gin.Context) {
	tenantID := router.GetTenantID(c)
	if tenantID == "" {
		return
	}
	appInstanceID := router.GetAppInstanceID(c)
	if appInstanceID == "" {
		return
	}
	var dto AppInstanceInfoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		reqErr := router.NewRequestError(http.StatusBadRequest, "invalid request body", err)
		router.RespondWithError(c, reqErr.StatusCode, reqErr)
		return
	}
	ctx := c.Request.Context()
	logger.FromContext(ctx).Info("Update application instance info", "app_instance_id", appInstanceID)
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	info := dto.ToModel()
	info.TenantID = tenantID
	updated, err := uc.NewUpdateInstance(state.Repo, appInstanceID, info).Execute(ctx)
	if err != nil {
		respondWithRepoError(c, err, "failed to update application instance info")
		return
	}
	c.JSON(http.StatusOK, ToDTO(updated))
}

// deleteInstanceInfo deletes an instance info record
//
//	@Summary		Delete application instance info
//	@Description	Delete an application instance info record by tenant and instance id
//	@Tags			app_instance_infos
//	@Accept			json
//	@Produce		json
//	@Param			access_token	header		string									true	"Access token"
//	@Param			tenant_id		path		string									true	"Tenant ID"
//	@Param			appInstance_id	path		string									true	"Application instance ID"
//	@Success		200				{string}	string									"success"
//	@Failure		400				{object}	router.Response{error=router.ErrorInfo}	"Invalid identifier"
//	@Failure		404				{object}	router.Response{error=router.ErrorInfo}	"Record not found"
//	@Failure		500				{object}	router.Response{error=router.ErrorInfo}	"Internal server error"
//	@Router			/tenants/{tenant_id}/app_instance_infos/{appInstance_id} [delete]
func deleteInstanceInfo(c *gin.Context) {
	tenantID := router.GetTenantID(c)
	if tenantID == "" {
		return
	}
	appInstanceID := router.GetAppInstanceID(c)
	if appInstanceID == "" {
		return
	}
	ctx := c.Request.Context()
	logger.FromContext(ctx).Info("Delete application instance info", "app_instance_id", appInstanceID)
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	if err := uc.NewDeleteInstance(state.Repo, tenantID, appInstanceID).Execute(ctx); err != nil {
		respondWithRepoError(c, err, "failed to delete application instance info")
		return
	}
	// External callers depend on the literal marker body.
	c.JSON(http.StatusOK, "success")
}

// respondWithRepoError maps repository sentinels to their HTTP statuses and
// passes the underlying failure through in the error details.
func respondWithRepoError(c *gin.Context, err error, fallbackReason string) {
	switch {
	case errors.Is(err, uc.ErrInstanceNotFound):
		reqErr := router.NewRequestError(http.StatusNotFound, "application instance info not found", err)
		router.RespondWithError(c, reqErr.StatusCode, reqErr)
	case errors.Is(err, uc.ErrInstanceExists):
		reqErr := router.NewRequestError(http.StatusConflict, "application instance info already exists", err)
		router.RespondWithError(c, reqErr.StatusCode, reqErr)
	default:
		reqErr := router.NewRequestError(http.StatusInternalServerError, fallbackReason, err)
		router.RespondWithError(c, reqErr.StatusCode, reqErr)
	}
}
