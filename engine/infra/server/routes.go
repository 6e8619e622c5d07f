package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	instancerouter "github.com/mecsphere/appo/engine/instanceinfo/router"
)

// RegisterRoutes wires all HTTP routes onto the engine.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiBase := r.Group("/appo/v1")
	apiBase.Use(AccessTokenMiddleware())
	instancerouter.Register(apiBase)
}
