package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

type Category struct {
	gorm.Model
	Name        string `json:"name" binding:"required" gorm:"uniqueIndex"`
	Description string `json:"description"`
}

type ProductSpecs struct {
	gorm.Model
	Label     string `json:"label" binding:"required"`
	Value     string `json:"value" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type Product struct {
	gorm.Model
	Brand             string         `json:"brand" binding:"required"`
	Name              string         `json:"name" binding:"required"`
	Description       string         `json:"description" binding:"required"`
	Price             float64        `json:"price" binding:"required"`
	CategoryID        int            `json:"categoryId"`
	Colors            datatypes.JSON `json:"colors"`
	Stock             int            `json:"stock"`
	LowStockThreshold int            `json:"lowStockThreshold"`
	Featured          bool           `json:"featured"`
	Status            string         `json:"status"`
	Specifications    []ProductSpecs `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images            []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
