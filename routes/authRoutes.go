package routes

import (
	"github.com/Jumah/dukani-admin-api/controllers"
	"github.com/Jumah/dukani-admin-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	server.POST("/auth/login", controllers.Login)
	server.GET("/admin/profile", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetProfile)
}
