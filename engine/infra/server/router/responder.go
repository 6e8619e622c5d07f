package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mecsphere/appo/engine/infra/server/appstate"
)

// Response is the envelope used for error payloads. Success payloads are
// written raw because external callers depend on the exact body shapes
// (single record, record sequence, or the literal "success" marker).
type Response struct {
	Status int        `json:"status"`
	Error  *ErrorInfo `json:"error,omitempty"`
}

// RespondWithError writes the standardized error envelope and aborts the
// request.
func RespondWithError(c *gin.Context, statusCode int, reqErr *RequestError) {
	c.AbortWithStatusJSON(statusCode, Response{
		Status: statusCode,
		Error:  reqErr.GetErrorInfo(),
	})
}

// GetAppState returns the shared application state, responding with an
// internal error when the state middleware is not installed.
func GetAppState(c *gin.Context) *appstate.State {
	state, err := appstate.GetState(c.Request.Context())
	if err != nil {
		reqErr := NewRequestError(
			http.StatusInternalServerError,
			ErrMsgAppStateNotInitialized,
			err,
		)
		RespondWithError(c, reqErr.StatusCode, reqErr)
		return nil
	}
	return state
}

// GetTenantID validates the tenant_id path parameter against the configured
// pattern. It responds with a client error and returns "" on mismatch.
func GetTenantID(c *gin.Context) string {
	state := GetAppState(c)
	if state == nil {
		return ""
	}
	tenantID := c.Param("tenant_id")
	if !state.Patterns.ValidTenantID(tenantID) {
		reqErr := NewRequestError(
			http.StatusBadRequest,
			"invalid tenant id",
			fmt.Errorf("tenant id %q does not match the configured pattern", tenantID),
		)
		RespondWithError(c, reqErr.StatusCode, reqErr)
		return ""
	}
	return tenantID
}

// GetAppInstanceID validates the appInstance_id path parameter against the
// configured pattern. It responds with a client error and returns "" on
// mismatch.
func GetAppInstanceID(c *gin.Context) string {
	state := GetAppState(c)
	if state == nil {
		return ""
	}
	appInstanceID := c.Param("appInstance_id")
	if !state.Patterns.ValidAppInstanceID(appInstanceID) {
		reqErr := NewRequestError(
			http.StatusBadRequest,
			"invalid app instance id",
			fmt.Errorf("app instance id %q does not match the configured pattern", appInstanceID),
		)
		RespondWithError(c, reqErr.StatusCode, reqErr)
		return ""
	}
	return appInstanceID
}
