package main

import (
	"time"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://admin.dukani.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Request"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.UserRoutes(server)
	routes.ProductRoutes(server)
	routes.OrderRoutes(server)
	routes.CouponRoutes(server)
	routes.InventoryRoutes(server)
	routes.ReviewRoutes(server)
	routes.NotificationRoutes(server)
	routes.NewsletterRoutes(server)
	routes.EMIRoutes(server)
	routes.WishlistRoutes(server)
	routes.ReportRoutes(server)
	server.Run()
}
