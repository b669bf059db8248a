package employees

import (
	"github.com/gin-gonic/gin"
)

// SetupEmployeeRoutes registers the read-only employee routes
func SetupEmployeeRoutes(rg *gin.RouterGroup, controller *Controller) {
	employees := rg.Group("/employees")
	{
		employees.GET("", controller.List)
		employees.GET("/:id", controller.Get)
	}
}
