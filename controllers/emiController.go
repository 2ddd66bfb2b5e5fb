package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/models"
	"github.com/gin-gonic/gin"
)

func GetEMIOptions(ctx *gin.Context) {
	var options []models.EMIOption

	query := initializers.DB.Model(&models.EMIOption{})
	if active := ctx.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	if result := query.Order("tenure_months asc").Find(&options); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch EMI options", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"options": options})
}

func CreateEMIOption(ctx *gin.Context) {
	var option models.EMIOption
	if err := ctx.ShouldBindJSON(&option); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := option.Validate(); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if err := initializers.DB.Create(&option).Error; err != nil {
		log.Println("EMI option creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, option)
}

func UpdateEMIOption(ctx *gin.Context) {
	optionId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse EMI option id")
		return
	}

	var updateData models.EMIOption
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := updateData.Validate(); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	result := initializers.DB.Model(&models.EMIOption{}).Where("id = ?", optionId).Updates(map[string]any{
		"title":            updateData.Title,
		"tenure_months":    updateData.TenureMonths,
		"interest_rate":    updateData.InterestRate,
		"min_order_amount": updateData.MinOrderAmount,
		"active":           updateData.Active,
	})
	if result.Error != nil {
		log.Println("EMI option update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "EMI option not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "EMI option updated successfully."})
}

func DeleteEMIOption(ctx *gin.Context) {
	optionId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse EMI option id")
		return
	}

	result := initializers.DB.Delete(&models.EMIOption{}, optionId)
	if result.Error != nil {
		log.Println("EMI option deletion error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "EMI option not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "EMI option deleted successfully."})
}
