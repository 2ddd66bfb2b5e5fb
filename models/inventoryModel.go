package models

import "gorm.io/gorm"

const (
	InventoryActionAdd    = "add"
	InventoryActionRemove = "remove"
)

// InventoryLog is an append-only audit trail of stock adjustments. Rows are
// never updated; the product's cached stock is written in the same
// transaction as the log entry.
type InventoryLog struct {
	gorm.Model
	ProductID     int    `json:"productId"`
	Action        string `json:"action"`
	Quantity      int    `json:"quantity"`
	PreviousStock int    `json:"previousStock"`
	CurrentStock  int    `json:"currentStock"`
	UserID        int    `json:"userId"`
	Notes         string `json:"notes"`
}
