package models

import "gorm.io/gorm"

type WishlistItem struct {
	gorm.Model
	WishlistID   int     `json:"wishlistId"`
	ProductId    int     `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductPrice float64 `json:"productPrice"`
}

type Wishlist struct {
	gorm.Model
	UserID int            `json:"userId"`
	Items  []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
}
