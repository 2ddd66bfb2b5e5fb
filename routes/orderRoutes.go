package routes

import (
	"github.com/Jumah/dukani-admin-api/controllers"
	"github.com/Jumah/dukani-admin-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/admin/orders", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		orders.GET("", controllers.GetOrders)
		orders.GET("/awaiting-review", controllers.GetOrdersAwaitingReview)
		orders.GET("/:orderId", controllers.GetOrderById)
		orders.PUT("/:orderId/status", controllers.UpdateOrderStatus)
		orders.PUT("/:orderId/shipping-price", controllers.SetShippingPrice)
		orders.DELETE("/:orderId", controllers.DeleteOrder)
	}

	review := server.Group("/admin/order-review", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		review.POST("/:orderId/set-shipping", controllers.SetShippingPrice)
	}
}
