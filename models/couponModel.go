package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type Coupon struct {
	gorm.Model
	Code          string    `json:"code" gorm:"uniqueIndex"`
	DiscountType  string    `json:"discountType"`
	DiscountValue float64   `json:"discountValue"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	UsageLimit    *int      `json:"usageLimit"`
	UsedCount     int       `json:"usedCount"`
	UserID        *int      `json:"userId"`
	Active        bool      `json:"active"`
}

func validateDiscount(discountType string, value float64) error {
	switch discountType {
	case DiscountTypePercentage:
		if value <= 0 || value > 100 {
			return errors.New("percentage discount must be between 1 and 100")
		}
	case DiscountTypeFixed:
		if value <= 0 {
			return errors.New("fixed discount must be greater than 0")
		}
	default:
		return errors.New("discount type must be percentage or fixed")
	}
	return nil
}

func validateDateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errors.New("start date and end date are required")
	}
	if !start.Before(end) {
		return errors.New("end date must be after start date")
	}
	return nil
}

// Validate normalizes the code to uppercase and checks the coupon's
// constraints. Uniqueness of the code is left to the database.
func (c *Coupon) Validate() error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		return errors.New("coupon code is required")
	}
	if err := validateDiscount(c.DiscountType, c.DiscountValue); err != nil {
		return err
	}
	if err := validateDateWindow(c.StartDate, c.EndDate); err != nil {
		return err
	}
	if c.UsageLimit != nil && *c.UsageLimit < 1 {
		return errors.New("usage limit must be at least 1")
	}
	return nil
}
