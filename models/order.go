package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "DINE_IN"
	OrderTypeTakeAway OrderType = "TAKE_AWAY"
	OrderTypeDelivery OrderType = "DELIVERY"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeTakeAway, OrderTypeDelivery:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "PENDING"
	OrderStatusConfirmed    OrderStatus = "CONFIRMED"
	OrderStatusPreparing    OrderStatus = "PREPARING"
	OrderStatusReadyToServe OrderStatus = "READY_TO_SERVE"
	OrderStatusServed       OrderStatus = "SERVED"
	OrderStatusCompleted    OrderStatus = "COMPLETED"
	OrderStatusCancelled    OrderStatus = "CANCELLED"
)

// orderTransitions is the single authoritative transition table. Both the
// ledger's validation path and any rendering path consult it.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:      {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:    {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:    {OrderStatusReadyToServe, OrderStatusCancelled},
	OrderStatusReadyToServe: {OrderStatusServed, OrderStatusCancelled},
	OrderStatusServed:       {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:    {},
	OrderStatusCancelled:    {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Terminal reports whether the status accepts no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID                 string          `gorm:"primaryKey" json:"id"`
	CustomerID         string          `gorm:"index" json:"customer_id,omitempty"`
	TableID            string          `gorm:"index" json:"table_id,omitempty"`
	EmployeeID         string          `json:"employee_id"`
	OrderType          OrderType       `gorm:"type:varchar(20);not null" json:"order_type"`
	Status             OrderStatus     `gorm:"type:varchar(20);not null" json:"status"`
	Items              []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	OrderTime          time.Time       `gorm:"not null" json:"order_time"`
	EstimatedReadyTime *time.Time      `json:"estimated_ready_time,omitempty"`
	ActualDeliveryTime *time.Time      `json:"actual_delivery_time,omitempty"`
}

// Item returns the line for menuItemID, or nil when the order has none.
func (o *Order) Item(menuItemID string) *OrderItem {
	for i := range o.Items {
		if o.Items[i].MenuItemID == menuItemID {
			return &o.Items[i]
		}
	}
	return nil
}

// RecalculateTotal recomputes TotalAmount from scratch over all lines.
// Exact decimal arithmetic, so repeated additions cannot drift.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for i := range o.Items {
		line := o.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(o.Items[i].Quantity)))
		total = total.Add(line)
	}
	o.TotalAmount = total
}
