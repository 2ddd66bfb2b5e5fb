package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCoupon() Coupon {
	return Coupon{
		Code:          "SAVE10",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 10,
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCouponValidate(t *testing.T) {
	coupon := validCoupon()
	require.NoError(t, coupon.Validate())
	assert.Equal(t, "SAVE10", coupon.Code)
}

func TestCouponValidateUppercasesCode(t *testing.T) {
	coupon := validCoupon()
	coupon.Code = "  save10 "
	require.NoError(t, coupon.Validate())
	assert.Equal(t, "SAVE10", coupon.Code)
}

func TestCouponValidateRequiresCode(t *testing.T) {
	coupon := validCoupon()
	coupon.Code = "   "
	assert.Error(t, coupon.Validate())
}

func TestCouponValidatePercentageBounds(t *testing.T) {
	coupon := validCoupon()

	coupon.DiscountValue = 0
	assert.Error(t, coupon.Validate())

	coupon.DiscountValue = 101
	assert.Error(t, coupon.Validate())

	coupon.DiscountValue = 100
	assert.NoError(t, coupon.Validate())

	coupon.DiscountValue = -5
	assert.Error(t, coupon.Validate())
}

func TestCouponValidateFixedDiscount(t *testing.T) {
	coupon := validCoupon()
	coupon.DiscountType = DiscountTypeFixed

	coupon.DiscountValue = 0
	assert.Error(t, coupon.Validate())

	coupon.DiscountValue = 250
	assert.NoError(t, coupon.Validate())

	// Fixed discounts are not capped at 100.
	coupon.DiscountValue = 100000
	assert.NoError(t, coupon.Validate())
}

func TestCouponValidateUnknownDiscountType(t *testing.T) {
	coupon := validCoupon()
	coupon.DiscountType = "bogo"
	assert.Error(t, coupon.Validate())
}

func TestCouponValidateDateWindow(t *testing.T) {
	coupon := validCoupon()

	coupon.StartDate, coupon.EndDate = coupon.EndDate, coupon.StartDate
	assert.Error(t, coupon.Validate())

	coupon.StartDate = coupon.EndDate
	assert.Error(t, coupon.Validate())

	coupon = validCoupon()
	coupon.StartDate = time.Time{}
	assert.Error(t, coupon.Validate())
}

func TestCouponValidateUsageLimit(t *testing.T) {
	coupon := validCoupon()

	zero := 0
	coupon.UsageLimit = &zero
	assert.Error(t, coupon.Validate())

	one := 1
	coupon.UsageLimit = &one
	assert.NoError(t, coupon.Validate())
}

func TestOfferValidate(t *testing.T) {
	offer := Offer{
		Title:         "Summer sale",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 25,
		StartDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, offer.Validate())

	offer.Title = ""
	assert.Error(t, offer.Validate())

	offer.Title = "Summer sale"
	offer.DiscountValue = 120
	assert.Error(t, offer.Validate())

	offer.DiscountValue = 25
	offer.EndDate = offer.StartDate
	assert.Error(t, offer.Validate())
}

func TestEMIOptionValidate(t *testing.T) {
	option := EMIOption{
		Title:          "6 months no-cost",
		TenureMonths:   6,
		InterestRate:   0,
		MinOrderAmount: 500,
		Active:         true,
	}
	require.NoError(t, option.Validate())

	option.TenureMonths = 0
	assert.Error(t, option.Validate())

	option.TenureMonths = 6
	option.InterestRate = -1
	assert.Error(t, option.Validate())

	option.InterestRate = 12.5
	option.MinOrderAmount = -10
	assert.Error(t, option.Validate())

	option.MinOrderAmount = 0
	option.Title = ""
	assert.Error(t, option.Validate())
}
