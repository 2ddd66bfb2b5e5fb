package routes

import (
	"github.com/Jumah/dukani-admin-api/controllers"
	"github.com/Jumah/dukani-admin-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CouponRoutes(server *gin.Engine) {
	coupons := server.Group("/coupons", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		coupons.GET("", controllers.GetCoupons)
		coupons.POST("", controllers.CreateCoupon)
		coupons.POST("/generate-for-users", controllers.GenerateCouponsForUsers)
		coupons.PUT("/:id", controllers.UpdateCoupon)
		coupons.DELETE("/:id", controllers.DeleteCoupon)
	}

	offers := server.Group("/admin/offers", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		offers.GET("", controllers.GetOffers)
		offers.POST("", controllers.CreateOffer)
		offers.PUT("/:id", controllers.UpdateOffer)
		offers.DELETE("/:id", controllers.DeleteOffer)
	}
}
