package instancerouter

import "github.com/gin-gonic/gin"

func Register(apiBase *gin.RouterGroup) {
	tenantsGroup := apiBase.Group("/tenants/:tenant_id")
	{
		infosGroup := tenantsGroup.Group("/app_instance_infos")
		{
			// GET /appo/v1/tenants/:tenant_id/app_instance_infos
			infosGroup.GET("", listInstanceInfos)

			// GET /appo/v1/tenants/:tenant_id/app_instance_infos/:appInstance_id
			infosGroup.GET("/:appInstance_id", getInstanceInfo)

			// POST /appo/v1/tenants/:tenant_id/app_instance_infos
			infosGroup.POST("", createInstanceInfo)

			// PUT /appo/v1/tenants/:tenant_id/app_instance_infos/:appInstance_id
			infosGroup.PUT("/:appInstance_id", updateInstanceInfo)

			// DELETE /appo/v1/tenants/:tenant_id/app_instance_infos/:appInstance_id
			infosGroup.DELETE("/:appInstance_id", deleteInstanceInfo)
		}
	}
}
