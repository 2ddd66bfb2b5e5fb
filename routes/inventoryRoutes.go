package routes

import (
	"github.com/Jumah/dukani-admin-api/controllers"
	"github.com/Jumah/dukani-admin-api/middlewares"
	"github.com/gin-gonic/gin"
)

func InventoryRoutes(server *gin.Engine) {
	inventory := server.Group("/inventory/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		inventory.POST("/adjust", controllers.AdjustInventory)
		inventory.GET("/logs", controllers.GetInventoryLogs)
		inventory.GET("/summary", controllers.GetInventorySummary)
	}
}
