package controllers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/models"
	"github.com/Jumah/dukani-admin-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func sendCouponEmail(user models.User, coupon models.Coupon) error {
	var worth string
	if coupon.DiscountType == models.DiscountTypePercentage {
		worth = fmt.Sprintf("%.0f%% off", coupon.DiscountValue)
	} else {
		worth = fmt.Sprintf("%.2f off", coupon.DiscountValue)
	}

	emailData := utils.EmailData{
		Name:    user.FirstName,
		Message: fmt.Sprintf("Here is a coupon just for you: %s. Use it at checkout before %s.", worth, coupon.EndDate.Format("2 Jan 2006")),
		Code:    coupon.Code,
		LogoURL: "https://www.dukani.store/images/logo.jpg",
	}

	templatePath := filepath.Join("templates", "coupon_email.html")
	return utils.SendEmail(user.Email, "A coupon for you", emailData, templatePath)
}

func GetCoupons(ctx *gin.Context) {
	var coupons []models.Coupon

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.Coupon{})
	countQuery := initializers.DB.Model(&models.Coupon{})

	if search := ctx.Query("search"); search != "" {
		pattern := "%" + strings.ToUpper(search) + "%"
		query = query.Where("code LIKE ?", pattern)
		countQuery = countQuery.Where("code LIKE ?", pattern)
	}
	if active := ctx.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
		countQuery = countQuery.Where("active = ?", active == "true")
	}

	result := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&coupons)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch coupons", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"coupons": coupons,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

func CreateCoupon(ctx *gin.Context) {
	var coupon models.Coupon
	if err := ctx.ShouldBindJSON(&coupon); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := coupon.Validate(); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if err := initializers.DB.Create(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			sendErrorResponse(ctx, http.StatusBadRequest, "coupon code already exists")
			return
		}
		log.Println("Coupon creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, coupon)
}

func UpdateCoupon(ctx *gin.Context) {
	couponId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse coupon id")
		return
	}

	var updateData models.Coupon
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := updateData.Validate(); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var coupon models.Coupon
	if result := initializers.DB.First(&coupon, couponId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Coupon not found")
		return
	}

	if result := initializers.DB.Model(&coupon).Updates(map[string]any{
		"code":           updateData.Code,
		"discount_type":  updateData.DiscountType,
		"discount_value": updateData.DiscountValue,
		"start_date":     updateData.StartDate,
		"end_date":       updateData.EndDate,
		"usage_limit":    updateData.UsageLimit,
		"active":         updateData.Active,
	}); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			sendErrorResponse(ctx, http.StatusBadRequest, "coupon code already exists")
			return
		}
		log.Println("Coupon update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Coupon updated successfully."})
}

func DeleteCoupon(ctx *gin.Context) {
	couponId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse coupon id")
		return
	}

	result := initializers.DB.Delete(&models.Coupon{}, couponId)
	if result.Error != nil {
		log.Println("Coupon deletion error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Coupon not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Coupon deleted successfully."})
}

// GenerateCouponsForUsers creates a personal single-use coupon for each of
// the given users and emails it to them.
func GenerateCouponsForUsers(ctx *gin.Context) {
	var generateData struct {
		UserIDs       []int     `json:"userIds" binding:"required"`
		Prefix        string    `json:"prefix"`
		DiscountType  string    `json:"discountType" binding:"required"`
		DiscountValue float64   `json:"discountValue" binding:"required"`
		StartDate     time.Time `json:"startDate" binding:"required"`
		EndDate       time.Time `json:"endDate" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&generateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if len(generateData.UserIDs) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "At least one user is required")
		return
	}

	prefix := strings.ToUpper(strings.TrimSpace(generateData.Prefix))
	if prefix == "" {
		prefix = "DUKANI"
	}

	template := models.Coupon{
		Code:          prefix,
		DiscountType:  generateData.DiscountType,
		DiscountValue: generateData.DiscountValue,
		StartDate:     generateData.StartDate,
		EndDate:       generateData.EndDate,
	}
	if err := template.Validate(); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var created []models.Coupon
	var failed []int

	for _, userId := range generateData.UserIDs {
		var user models.User
		if result := initializers.DB.First(&user, userId); result.Error != nil {
			failed = append(failed, userId)
			continue
		}

		suffix, err := utils.GenerateCode(6)
		if err != nil {
			log.Println("Coupon code generation error:", err)
			failed = append(failed, userId)
			continue
		}

		usageLimit := 1
		coupon := models.Coupon{
			Code:          prefix + "-" + suffix,
			DiscountType:  generateData.DiscountType,
			DiscountValue: generateData.DiscountValue,
			StartDate:     generateData.StartDate,
			EndDate:       generateData.EndDate,
			UsageLimit:    &usageLimit,
			UserID:        &userId,
			Active:        true,
		}

		if err := initializers.DB.Create(&coupon).Error; err != nil {
			log.Println("Coupon creation error for user", userId, ":", err)
			failed = append(failed, userId)
			continue
		}

		if err := sendCouponEmail(user, coupon); err != nil {
			log.Println("Error emailing coupon to user", userId, ":", err)
		}

		created = append(created, coupon)
	}

	response := gin.H{
		"message": fmt.Sprintf("Generated %d coupons.", len(created)),
		"coupons": created,
	}
	if len(failed) > 0 {
		response["failedUserIds"] = failed
	}

	sendJSONResponse(ctx, http.StatusOK, response)
}
