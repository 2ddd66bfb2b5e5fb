package models

import (
	"errors"

	"gorm.io/gorm"
)

// EMIOption is a financing plan attachable to qualifying orders: pay in
// TenureMonths installments at InterestRate percent per annum.
type EMIOption struct {
	gorm.Model
	Title          string  `json:"title"`
	TenureMonths   int     `json:"tenureMonths"`
	InterestRate   float64 `json:"interestRate"`
	MinOrderAmount float64 `json:"minOrderAmount"`
	Active         bool    `json:"active"`
}

func (e *EMIOption) Validate() error {
	if e.Title == "" {
		return errors.New("EMI option title is required")
	}
	if e.TenureMonths < 1 {
		return errors.New("tenure must be at least 1 month")
	}
	if e.InterestRate < 0 {
		return errors.New("interest rate cannot be negative")
	}
	if e.MinOrderAmount < 0 {
		return errors.New("minimum order amount cannot be negative")
	}
	return nil
}
