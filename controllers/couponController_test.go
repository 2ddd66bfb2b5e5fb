package controllers

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/Jumah/dukani-admin-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func couponRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/coupons", CreateCoupon)
	router.PUT("/coupons/:id", UpdateCoupon)
	return router
}

func seedCoupon(t *testing.T, db *gorm.DB, code string) models.Coupon {
	t.Helper()
	coupon := models.Coupon{
		Code:          code,
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Active:        true,
	}
	require.NoError(t, db.Create(&coupon).Error)
	return coupon
}

func couponPayload(code string) map[string]any {
	return map[string]any{
		"code":          code,
		"discountType":  "percentage",
		"discountValue": 10,
		"startDate":     "2024-01-01T00:00:00Z",
		"endDate":       "2024-01-31T00:00:00Z",
		"active":        true,
	}
}

func TestCreateCouponStoresUppercaseCode(t *testing.T) {
	db := setupTestDB(t)
	router := couponRouter()

	recorder := performJSONRequest(router, http.MethodPost, "/coupons", couponPayload("save10"))
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var coupon models.Coupon
	require.NoError(t, db.First(&coupon).Error)
	assert.Equal(t, "SAVE10", coupon.Code)
}

func TestCreateCouponDuplicateCode(t *testing.T) {
	db := setupTestDB(t)
	seedCoupon(t, db, "SAVE10")
	router := couponRouter()

	recorder := performJSONRequest(router, http.MethodPost, "/coupons", couponPayload("save10"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "coupon code already exists")
}

func TestUpdateCoupon(t *testing.T) {
	db := setupTestDB(t)
	coupon := seedCoupon(t, db, "SAVE10")
	router := couponRouter()

	recorder := performJSONRequest(router, http.MethodPut, "/coupons/"+strconv.Itoa(int(coupon.ID)), couponPayload("save15"))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var reloaded models.Coupon
	require.NoError(t, db.First(&reloaded, coupon.ID).Error)
	assert.Equal(t, "SAVE15", reloaded.Code)
}

func TestUpdateCouponDuplicateCode(t *testing.T) {
	db := setupTestDB(t)
	seedCoupon(t, db, "SAVE10")
	other := seedCoupon(t, db, "WELCOME5")
	router := couponRouter()

	recorder := performJSONRequest(router, http.MethodPut, "/coupons/"+strconv.Itoa(int(other.ID)), couponPayload("save10"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "coupon code already exists")

	var reloaded models.Coupon
	require.NoError(t, db.First(&reloaded, other.ID).Error)
	assert.Equal(t, "WELCOME5", reloaded.Code)
}

func TestUpdateCouponRejectsInvalidWindow(t *testing.T) {
	db := setupTestDB(t)
	coupon := seedCoupon(t, db, "SAVE10")
	router := couponRouter()

	payload := couponPayload("SAVE10")
	payload["startDate"] = "2024-02-01T00:00:00Z"

	recorder := performJSONRequest(router, http.MethodPut, "/coupons/"+strconv.Itoa(int(coupon.ID)), payload)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "end date must be after start date")
}
