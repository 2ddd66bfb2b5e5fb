package models

import "gorm.io/gorm"

const (
	OrderStatusPendingReview        = "pending_admin_review"
	OrderStatusAwaitingConfirmation = "waiting_customer_confirmation"
	OrderStatusPending              = "pending"
	OrderStatusConfirmed            = "confirmed"
	OrderStatusProcessing           = "processing"
	OrderStatusShipped              = "shipped"
	OrderStatusDelivered            = "delivered"
	OrderStatusCancelled            = "cancelled"
)

// Allowed forward transitions. Cancelled is reachable from any non-terminal
// status and is handled in CanTransitionTo rather than listed here.
var orderTransitions = map[string][]string{
	OrderStatusPendingReview:        {OrderStatusAwaitingConfirmation},
	OrderStatusAwaitingConfirmation: {OrderStatusPending, OrderStatusConfirmed},
	OrderStatusPending:              {OrderStatusConfirmed},
	OrderStatusConfirmed:            {OrderStatusProcessing},
	OrderStatusProcessing:           {OrderStatusShipped},
	OrderStatusShipped:              {OrderStatusDelivered},
}

type Order struct {
	gorm.Model
	UserID          int         `json:"userId"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	AddressLine1    string      `json:"addressLine1"`
	Suburb          string      `json:"suburb"`
	State           string      `json:"state"`
	ZipCode         string      `json:"zipCode"`
	Country         string      `json:"country"`
	Subtotal        float64     `json:"subtotal"`
	CouponCode      string      `json:"couponCode"`
	CouponDiscount  float64     `json:"couponDiscount"`
	ShippingCharges *float64    `json:"shippingCharges"`
	FinalPrice      *float64    `json:"finalPrice"`
	Status          string      `json:"status"`
	AdminNotes      string      `json:"adminNotes"`
	OrderItems      []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   int     `json:"orderId"`
	ProductId int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPendingReview, OrderStatusAwaitingConfirmation,
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled
}

// CanTransitionTo reports whether the order may move to the given status.
// Writing the current status again is allowed so repeated updates stay
// idempotent.
func (o *Order) CanTransitionTo(next string) bool {
	if !IsValidOrderStatus(next) {
		return false
	}
	if next == o.Status {
		return true
	}
	if next == OrderStatusCancelled {
		return !o.IsTerminal()
	}
	for _, allowed := range orderTransitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ComputeSubtotal sums the item price snapshots taken at order time.
func (o *Order) ComputeSubtotal() float64 {
	var subtotal float64
	for _, item := range o.OrderItems {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// ComputeFinalPrice derives the customer-facing total for a given shipping
// charge. The stored Subtotal is ignored in favor of the item snapshots.
func (o *Order) ComputeFinalPrice(shippingCharges float64) float64 {
	return o.ComputeSubtotal() - o.CouponDiscount + shippingCharges
}
