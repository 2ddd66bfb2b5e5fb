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

func GetNewsletterSubscribers(ctx *gin.Context) {
	var subscribers []models.NewsletterSubscriber

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.NewsletterSubscriber{})
	countQuery := initializers.DB.Model(&models.NewsletterSubscriber{})

	if search := ctx.Query("search"); search != "" {
		query = query.Where("email LIKE ?", "%"+search+"%")
		countQuery = countQuery.Where("email LIKE ?", "%"+search+"%")
	}

	result := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&subscribers)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch subscribers", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"subscribers": subscribers,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

func DeleteNewsletterSubscriber(ctx *gin.Context) {
	subscriberId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse subscriber id")
		return
	}

	result := initializers.DB.Delete(&models.NewsletterSubscriber{}, subscriberId)
	if result.Error != nil {
		log.Println("Subscriber deletion error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Subscriber not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Subscriber removed successfully."})
}
