package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Jumah/dukani-admin-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func inventoryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/inventory/admin/adjust", AdjustInventory)
	return router
}

func seedProduct(t *testing.T, db *gorm.DB, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Brand:       "Acme",
		Name:        "Desk lamp",
		Description: "Adjustable desk lamp",
		Price:       45,
		Stock:       stock,
		Status:      models.ProductStatusActive,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAdjustInventoryRejectsRemoveBeyondStock(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, 3)
	router := inventoryRouter()

	recorder := performJSONRequest(router, http.MethodPost, "/inventory/admin/adjust", map[string]any{
		"productId": product.ID,
		"action":    "remove",
		"quantity":  5,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Cannot remove more stock than is available")

	// Nothing committed: stock untouched and the ledger stays empty.
	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 3, reloaded.Stock)

	var logCount int64
	db.Model(&models.InventoryLog{}).Count(&logCount)
	assert.Equal(t, int64(0), logCount)
}

func TestAdjustInventoryRemove(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, 3)
	router := inventoryRouter()

	recorder := performJSONRequest(router, http.MethodPost, "/inventory/admin/adjust", map[string]any{
		"productId": product.ID,
		"action":    "remove",
		"quantity":  2,
		"notes":     "damaged in transit",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 1, reloaded.Stock)

	var entry models.InventoryLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, models.InventoryActionRemove, entry.Action)
	assert.Equal(t, 2, entry.Quantity)
	assert.Equal(t, 3, entry.PreviousStock)
	assert.Equal(t, 1, entry.CurrentStock)
	assert.Equal(t, "damaged in transit", entry.Notes)
}

func TestAdjustInventoryAdd(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, 3)
	router := inventoryRouter()

	recorder := performJSONRequest(router, http.MethodPost, "/inventory/admin/adjust", map[string]any{
		"productId": product.ID,
		"action":    "add",
		"quantity":  4,
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 7, reloaded.Stock)

	var entry models.InventoryLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, 3, entry.PreviousStock)
	assert.Equal(t, 7, entry.CurrentStock)
}

func TestAdjustInventoryUnknownProduct(t *testing.T) {
	setupTestDB(t)
	router := inventoryRouter()

	recorder := performJSONRequest(router, http.MethodPost, "/inventory/admin/adjust", map[string]any{
		"productId": 999,
		"action":    "add",
		"quantity":  1,
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAdjustInventoryRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, 3)
	router := inventoryRouter()

	for _, body := range []map[string]any{
		{"productId": product.ID, "action": "transfer", "quantity": 1},
		{"productId": product.ID, "action": "remove", "quantity": 0},
		{"productId": product.ID, "action": "remove", "quantity": -2},
	} {
		recorder := performJSONRequest(router, http.MethodPost, "/inventory/admin/adjust", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, fmt.Sprintf("body %v", body))
	}

	var logCount int64
	db.Model(&models.InventoryLog{}).Count(&logCount)
	assert.Equal(t, int64(0), logCount)
}
