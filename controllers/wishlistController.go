package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetWishlistByUserId(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	var wishlist models.Wishlist
	result := initializers.DB.
		Where("user_id = ?", userId).
		Preload("Items").
		First(&wishlist)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Wishlist not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch wishlist", result.Error)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"wishlist": wishlist})
}

// GetMostWishlistedProducts ranks products by how many wishlists contain
// them, for the merchandising dashboard.
func GetMostWishlistedProducts(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	var rankings []struct {
		ProductId   int    `json:"productId"`
		ProductName string `json:"productName"`
		Count       int64  `json:"count"`
	}

	result := initializers.DB.Model(&models.WishlistItem{}).
		Select("product_id, product_name, COUNT(*) as count").
		Group("product_id, product_name").
		Order("count desc").
		Limit(limit).
		Scan(&rankings)

	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to rank wishlisted products", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": rankings})
}
