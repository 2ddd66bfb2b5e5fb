package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/models"
	"github.com/gin-gonic/gin"
)

func GetOffers(ctx *gin.Context) {
	var offers []models.Offer

	query := initializers.DB.Model(&models.Offer{})
	if active := ctx.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	if result := query.Order("created_at desc").Find(&offers); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch offers", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"offers": offers})
}

func CreateOffer(ctx *gin.Context) {
	var offer models.Offer
	if err := ctx.ShouldBindJSON(&offer); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := offer.Validate(); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if err := initializers.DB.Create(&offer).Error; err != nil {
		log.Println("Offer creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, offer)
}

func UpdateOffer(ctx *gin.Context) {
	offerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse offer id")
		return
	}

	var updateData models.Offer
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := updateData.Validate(); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	result := initializers.DB.Model(&models.Offer{}).Where("id = ?", offerId).Updates(map[string]any{
		"title":          updateData.Title,
		"description":    updateData.Description,
		"discount_type":  updateData.DiscountType,
		"discount_value": updateData.DiscountValue,
		"start_date":     updateData.StartDate,
		"end_date":       updateData.EndDate,
		"active":         updateData.Active,
	})
	if result.Error != nil {
		log.Println("Offer update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Offer not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Offer updated successfully."})
}

func DeleteOffer(ctx *gin.Context) {
	offerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse offer id")
		return
	}

	result := initializers.DB.Delete(&models.Offer{}, offerId)
	if result.Error != nil {
		log.Println("Offer deletion error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Offer not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Offer deleted successfully."})
}
