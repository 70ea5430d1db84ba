package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReadyToServe, true},
		{OrderStatusReadyToServe, OrderStatusServed, true},
		{OrderStatusServed, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusServed, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusServed, false},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusConfirmed, OrderStatusCompleted, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, OrderStatusCompleted.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusServed.Terminal())
}

func TestRecalculateTotal(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
		{Quantity: 3, UnitPrice: decimal.RequireFromString("2.30")},
	}}
	order.RecalculateTotal()
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("26.88")), "total %s", order.TotalAmount)

	order.Items = nil
	order.RecalculateTotal()
	assert.True(t, order.TotalAmount.IsZero())
}
