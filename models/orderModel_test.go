package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSubtotal(t *testing.T) {
	order := Order{
		OrderItems: []OrderItem{
			{Price: 100, Quantity: 3},
			{Price: 49.5, Quantity: 2},
		},
	}
	assert.Equal(t, 399.0, order.ComputeSubtotal())
}

func TestComputeSubtotalEmptyOrder(t *testing.T) {
	order := Order{}
	assert.Equal(t, 0.0, order.ComputeSubtotal())
}

func TestComputeFinalPriceNoDiscount(t *testing.T) {
	order := Order{
		OrderItems: []OrderItem{{Price: 500, Quantity: 1}},
	}
	assert.Equal(t, 550.0, order.ComputeFinalPrice(50))
}

func TestComputeFinalPriceWithDiscount(t *testing.T) {
	order := Order{
		CouponDiscount: 75,
		OrderItems: []OrderItem{
			{Price: 200, Quantity: 2},
			{Price: 100, Quantity: 1},
		},
	}
	// 500 - 75 + 30
	assert.Equal(t, 455.0, order.ComputeFinalPrice(30))
}

func TestComputeFinalPriceIgnoresStoredSubtotal(t *testing.T) {
	order := Order{
		Subtotal:   9999,
		OrderItems: []OrderItem{{Price: 500, Quantity: 1}},
	}
	assert.Equal(t, 550.0, order.ComputeFinalPrice(50))
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus(OrderStatusPendingReview))
	assert.True(t, IsValidOrderStatus(OrderStatusCancelled))
	assert.False(t, IsValidOrderStatus("refunded"))
	assert.False(t, IsValidOrderStatus(""))
}

func TestCanTransitionToForwardChain(t *testing.T) {
	chain := []string{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
	}
	for i := 0; i < len(chain)-1; i++ {
		order := Order{Status: chain[i]}
		assert.True(t, order.CanTransitionTo(chain[i+1]), "%s -> %s", chain[i], chain[i+1])
	}
}

func TestCanTransitionToRejectsSkips(t *testing.T) {
	order := Order{Status: OrderStatusPending}
	assert.False(t, order.CanTransitionTo(OrderStatusShipped))
	assert.False(t, order.CanTransitionTo(OrderStatusDelivered))

	order = Order{Status: OrderStatusShipped}
	assert.False(t, order.CanTransitionTo(OrderStatusPending))
}

func TestCanTransitionToSameStatus(t *testing.T) {
	order := Order{Status: OrderStatusConfirmed}
	assert.True(t, order.CanTransitionTo(OrderStatusConfirmed))

	order = Order{Status: OrderStatusDelivered}
	assert.True(t, order.CanTransitionTo(OrderStatusDelivered))
}

func TestCanTransitionToCancelled(t *testing.T) {
	for _, status := range []string{
		OrderStatusPendingReview,
		OrderStatusAwaitingConfirmation,
		OrderStatusPending,
		OrderStatusShipped,
	} {
		order := Order{Status: status}
		assert.True(t, order.CanTransitionTo(OrderStatusCancelled), "cancel from %s", status)
	}

	delivered := Order{Status: OrderStatusDelivered}
	assert.False(t, delivered.CanTransitionTo(OrderStatusCancelled))
}

func TestCanTransitionToShippingReviewFlow(t *testing.T) {
	order := Order{Status: OrderStatusPendingReview}
	assert.True(t, order.CanTransitionTo(OrderStatusAwaitingConfirmation))
	assert.False(t, order.CanTransitionTo(OrderStatusShipped))

	order.Status = OrderStatusAwaitingConfirmation
	assert.True(t, order.CanTransitionTo(OrderStatusConfirmed))
}

func TestCanTransitionToUnknownStatus(t *testing.T) {
	order := Order{Status: OrderStatusPending}
	assert.False(t, order.CanTransitionTo("archived"))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, (&Order{Status: OrderStatusDelivered}).IsTerminal())
	assert.True(t, (&Order{Status: OrderStatusCancelled}).IsTerminal())
	assert.False(t, (&Order{Status: OrderStatusPending}).IsTerminal())
}
