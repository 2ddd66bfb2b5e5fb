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

func GetNotifications(ctx *gin.Context) {
	var notifications []models.Notification

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.Notification{})
	countQuery := initializers.DB.Model(&models.Notification{})

	if userId := ctx.Query("userId"); userId != "" {
		query = query.Where("user_id = ?", userId)
		countQuery = countQuery.Where("user_id = ?", userId)
	}
	if unread := ctx.Query("unread"); unread == "true" {
		query = query.Where("`read` = ?", false)
		countQuery = countQuery.Where("`read` = ?", false)
	}

	result := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&notifications)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch notifications", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

// CreateNotification sends a notification to one user, or to every active
// user when userId is omitted.
func CreateNotification(ctx *gin.Context) {
	var notificationData struct {
		Title   string `json:"title" binding:"required"`
		Message string `json:"message" binding:"required"`
		Type    string `json:"type" binding:"required"`
		UserID  int    `json:"userId"`
	}
	if err := ctx.ShouldBindJSON(&notificationData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if !models.IsValidNotificationType(notificationData.Type) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown notification type")
		return
	}

	if notificationData.UserID != 0 {
		notification := models.Notification{
			Title:   notificationData.Title,
			Message: notificationData.Message,
			Type:    notificationData.Type,
			UserID:  notificationData.UserID,
		}
		if err := initializers.DB.Create(&notification).Error; err != nil {
			log.Println("Notification creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		ctx.JSON(http.StatusCreated, notification)
		return
	}

	var userIds []int
	if err := initializers.DB.Model(&models.User{}).
		Where("status = ?", models.UserStatusActive).
		Pluck("id", &userIds).Error; err != nil {
		log.Println("Broadcast recipient query error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	notifications := make([]models.Notification, 0, len(userIds))
	for _, userId := range userIds {
		notifications = append(notifications, models.Notification{
			Title:   notificationData.Title,
			Message: notificationData.Message,
			Type:    notificationData.Type,
			UserID:  userId,
		})
	}

	if len(notifications) > 0 {
		if err := initializers.DB.Create(&notifications).Error; err != nil {
			log.Println("Broadcast notification error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Notification sent.",
		"count":   len(notifications),
	})
}

func MarkNotificationRead(ctx *gin.Context) {
	notificationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse notification id")
		return
	}

	result := initializers.DB.Model(&models.Notification{}).Where("id = ?", notificationId).Update("read", true)
	if result.Error != nil {
		log.Println("Notification update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Notification not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Notification marked as read."})
}

func DeleteNotification(ctx *gin.Context) {
	notificationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse notification id")
		return
	}

	result := initializers.DB.Delete(&models.Notification{}, notificationId)
	if result.Error != nil {
		log.Println("Notification deletion error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Notification not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Notification deleted successfully."})
}
