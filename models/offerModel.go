package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Offer struct {
	gorm.Model
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DiscountType  string    `json:"discountType"`
	DiscountValue float64   `json:"discountValue"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Active        bool      `json:"active"`
}

func (o *Offer) Validate() error {
	if o.Title == "" {
		return errors.New("offer title is required")
	}
	if err := validateDiscount(o.DiscountType, o.DiscountValue); err != nil {
		return err
	}
	return validateDateWindow(o.StartDate, o.EndDate)
}
