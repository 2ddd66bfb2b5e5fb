package initializers

import (
	"log"

	"github.com/Jumah/dukani-admin-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductSpecs{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.Offer{},
		&models.InventoryLog{},
		&models.Review{},
		&models.Notification{},
		&models.NewsletterSubscriber{},
		&models.EMIOption{},
		&models.Wishlist{},
		&models.WishlistItem{},
	)
	log.Println("Database synced successfully.")
}
