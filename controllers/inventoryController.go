package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var errInsufficientStock = errors.New("insufficient stock")

func actorIdFromContext(ctx *gin.Context) int {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return 0
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0
	}
	return int(id)
}

// AdjustInventory applies an audited stock adjustment. The product's cached
// stock and the ledger entry are written in one transaction. A remove larger
// than current stock is rejected; the ledger never records a clamped value.
func AdjustInventory(ctx *gin.Context) {
	var adjustData struct {
		ProductID int    `json:"productId" binding:"required"`
		Action    string `json:"action" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required"`
		Notes     string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&adjustData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if adjustData.Action != models.InventoryActionAdd && adjustData.Action != models.InventoryActionRemove {
		sendErrorResponse(ctx, http.StatusBadRequest, "Action must be add or remove")
		return
	}
	if adjustData.Quantity < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	var entry models.InventoryLog

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, adjustData.ProductID).Error; err != nil {
			return err
		}

		previousStock := product.Stock
		var currentStock int
		if adjustData.Action == models.InventoryActionAdd {
			currentStock = previousStock + adjustData.Quantity
		} else {
			if adjustData.Quantity > previousStock {
				return errInsufficientStock
			}
			currentStock = previousStock - adjustData.Quantity
		}

		if err := tx.Model(&product).Update("stock", currentStock).Error; err != nil {
			return err
		}

		entry = models.InventoryLog{
			ProductID:     adjustData.ProductID,
			Action:        adjustData.Action,
			Quantity:      adjustData.Quantity,
			PreviousStock: previousStock,
			CurrentStock:  currentStock,
			UserID:        actorIdFromContext(ctx),
			Notes:         adjustData.Notes,
		}
		return tx.Create(&entry).Error
	})

	if err != nil {
		switch err {
		case errInsufficientStock:
			sendErrorResponse(ctx, http.StatusBadRequest, "Cannot remove more stock than is available")
		case gorm.ErrRecordNotFound:
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		default:
			log.Println("Inventory adjustment error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Inventory adjusted successfully.",
		"log":     entry,
	})
}

func GetInventoryLogs(ctx *gin.Context) {
	var logs []models.InventoryLog

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.InventoryLog{})
	countQuery := initializers.DB.Model(&models.InventoryLog{})

	if productId := ctx.Query("productId"); productId != "" {
		query = query.Where("product_id = ?", productId)
		countQuery = countQuery.Where("product_id = ?", productId)
	}
	if action := ctx.Query("action"); action != "" {
		query = query.Where("action = ?", action)
		countQuery = countQuery.Where("action = ?", action)
	}

	result := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&logs)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch inventory logs", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"logs": logs,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

func GetInventorySummary(ctx *gin.Context) {
	var totalProducts, lowStock, outOfStock, recentAdjustments int64

	initializers.DB.Model(&models.Product{}).Count(&totalProducts)
	initializers.DB.Model(&models.Product{}).
		Where("stock > 0 AND stock <= low_stock_threshold").
		Count(&lowStock)
	initializers.DB.Model(&models.Product{}).Where("stock = 0").Count(&outOfStock)
	initializers.DB.Model(&models.InventoryLog{}).
		Where("created_at > ?", time.Now().AddDate(0, 0, -7)).
		Count(&recentAdjustments)

	ctx.JSON(http.StatusOK, gin.H{
		"totalProducts":     totalProducts,
		"lowStock":          lowStock,
		"outOfStock":        outOfStock,
		"recentAdjustments": recentAdjustments,
	})
}
