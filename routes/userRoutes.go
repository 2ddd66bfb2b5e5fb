package routes

import (
	"github.com/Jumah/dukani-admin-api/controllers"
	"github.com/Jumah/dukani-admin-api/middlewares"
	"github.com/gin-gonic/gin"
)

func UserRoutes(server *gin.Engine) {
	users := server.Group("/admin/users", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		users.GET("", controllers.GetUsers)
		users.GET("/stats", controllers.GetUserStats)
		users.POST("/create", controllers.CreateUser)
		users.POST("/verify-otp", controllers.VerifyOtp)
		users.POST("/complete-profile", controllers.CompleteProfile)
		users.GET("/:id", controllers.GetUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.PUT("/:id/status", controllers.UpdateUserStatus)
		users.POST("/:id/resend-otp", controllers.ResendOtp)
		users.DELETE("/:id", controllers.DeleteUser)
	}
}
