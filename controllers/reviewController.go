package controllers

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/models"
	"github.com/gin-gonic/gin"
)

func GetReviews(ctx *gin.Context) {
	var reviews []models.Review

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.Review{})
	countQuery := initializers.DB.Model(&models.Review{})

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}
	if productId := ctx.Query("productId"); productId != "" {
		query = query.Where("product_id = ?", productId)
		countQuery = countQuery.Where("product_id = ?", productId)
	}

	result := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&reviews)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch reviews", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

// UpdateReviewStatus approves or rejects a customer review.
func UpdateReviewStatus(ctx *gin.Context) {
	reviewId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse review id")
		return
	}

	var statusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if statusData.Status != models.ReviewStatusApproved && statusData.Status != models.ReviewStatusRejected {
		sendErrorResponse(ctx, http.StatusBadRequest, "Status must be approved or rejected")
		return
	}

	result := initializers.DB.Model(&models.Review{}).Where("id = ?", reviewId).Update("status", statusData.Status)
	if result.Error != nil {
		log.Println("Review status update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Review not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Review status updated successfully."})
}

func DeleteReview(ctx *gin.Context) {
	reviewId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse review id")
		return
	}

	result := initializers.DB.Delete(&models.Review{}, reviewId)
	if result.Error != nil {
		log.Println("Review deletion error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Review not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Review deleted successfully."})
}
