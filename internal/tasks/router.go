package tasks

import (
	"taskhub/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTaskRoutes registers task routes. The request gate already runs
// ahead of these; delete additionally requires the admin role.
func SetupTaskRoutes(rg *gin.RouterGroup, controller *Controller) {
	taskRoutes := rg.Group("/tasks")
	{
		taskRoutes.GET("", controller.List)
		taskRoutes.POST("", controller.Create)
		taskRoutes.GET("/:id", controller.Get)
		taskRoutes.PUT("/:id", controller.Update)
		taskRoutes.PATCH("/:id", controller.Update)
		taskRoutes.DELETE("/:id", middleware.RequireAdmin(), controller.Delete)
	}
}
