package routes

import (
	"github.com/Jumah/dukani-admin-api/controllers"
	"github.com/Jumah/dukani-admin-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ReviewRoutes(server *gin.Engine) {
	reviews := server.Group("/reviews/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		reviews.GET("", controllers.GetReviews)
		reviews.PUT("/:id/status", controllers.UpdateReviewStatus)
		reviews.DELETE("/:id", controllers.DeleteReview)
	}
}

func NotificationRoutes(server *gin.Engine) {
	notifications := server.Group("/notifications", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		notifications.GET("", controllers.GetNotifications)
		notifications.POST("", controllers.CreateNotification)
		notifications.PUT("/:id/read", controllers.MarkNotificationRead)
		notifications.DELETE("/:id", controllers.DeleteNotification)
	}
}

func NewsletterRoutes(server *gin.Engine) {
	newsletter := server.Group("/newsletter/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		newsletter.GET("/subscribers", controllers.GetNewsletterSubscribers)
		newsletter.DELETE("/subscribers/:id", controllers.DeleteNewsletterSubscriber)
	}
}

func EMIRoutes(server *gin.Engine) {
	emi := server.Group("/emi/options", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		emi.GET("", controllers.GetEMIOptions)
		emi.POST("", controllers.CreateEMIOption)
		emi.PUT("/:id", controllers.UpdateEMIOption)
		emi.DELETE("/:id", controllers.DeleteEMIOption)
	}
}

func WishlistRoutes(server *gin.Engine) {
	wishlist := server.Group("/admin/wishlists", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		wishlist.GET("/top-products", controllers.GetMostWishlistedProducts)
		wishlist.GET("/:userId", controllers.GetWishlistByUserId)
	}
}

func ReportRoutes(server *gin.Engine) {
	server.GET("/admin/dashboard/stats", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetDashboardStats)

	reports := server.Group("/reports", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		reports.GET("/ordersReports", controllers.GetOrdersReport)
		reports.GET("/inventoryReports", controllers.GetInventoryReport)
		reports.GET("/customersReports", controllers.GetCustomersReport)
		reports.GET("/productsReports/performance", controllers.GetProductsPerformance)
	}
}
