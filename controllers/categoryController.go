package controllers

import (
	"net/http"
	"strconv"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/models"
	"github.com/gin-gonic/gin"
)

func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if result := initializers.DB.Order("name asc").Find(&categories); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func UpdateCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var updateData models.Category
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result := initializers.DB.Model(&models.Category{}).Where("id = ?", categoryId).Updates(map[string]any{
		"name":        updateData.Name,
		"description": updateData.Description,
	})
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update category", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

func DeleteCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	result := initializers.DB.Delete(&models.Category{}, categoryId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
