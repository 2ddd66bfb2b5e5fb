package routes

import (
	"github.com/Jumah/dukani-admin-api/controllers"
	"github.com/Jumah/dukani-admin-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	products := server.Group("/admin/products", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		products.GET("", controllers.GetProducts)
		products.POST("", controllers.CreateProduct)
		products.POST("/specs", controllers.CreateProductSpecs)
		products.POST("/images", controllers.UploadProductImages)
		products.GET("/:id", controllers.GetProduct)
		products.PUT("/:id", controllers.UpdateProduct)
		products.PUT("/:id/stock", controllers.UpdateProductStock)
		products.PUT("/:id/featured", controllers.UpdateProductFeatured)
		products.PUT("/:id/status", controllers.UpdateProductStatus)
		products.DELETE("/:id", controllers.DeleteProduct)
	}

	categories := server.Group("/admin/categories", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		categories.GET("", controllers.GetCategories)
		categories.POST("", controllers.CreateCategory)
		categories.PUT("/:id", controllers.UpdateCategory)
		categories.DELETE("/:id", controllers.DeleteCategory)
	}
}
