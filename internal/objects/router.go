package objects

import (
	"taskhub/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupObjectRoutes registers object routes. The request gate already runs
// ahead of these; delete additionally requires the admin role.
func SetupObjectRoutes(rg *gin.RouterGroup, controller *Controller) {
	objects := rg.Group("/objects")
	{
		objects.GET("", controller.List)
		objects.POST("", controller.Create)
		objects.GET("/:id", controller.Get)
		objects.PUT("/:id", controller.Update)
		objects.PATCH("/:id", controller.Update)
		objects.DELETE("/:id", middleware.RequireAdmin(), controller.Delete)
		objects.GET("/:id/profile", controller.Profile)
	}

	rg.GET("/stats", controller.Stats)
}
