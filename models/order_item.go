package models

import (
	"github.com/shopspring/decimal"
)

type OrderItemStatus string

const (
	OrderItemStatusPending   OrderItemStatus = "PENDING"
	OrderItemStatusPreparing OrderItemStatus = "PREPARING"
	OrderItemStatusReady     OrderItemStatus = "READY"
	OrderItemStatusServed    OrderItemStatus = "SERVED"
	OrderItemStatusCancelled OrderItemStatus = "CANCELLED"
)

func (s OrderItemStatus) Valid() bool {
	switch s {
	case OrderItemStatusPending, OrderItemStatusPreparing, OrderItemStatusReady,
		OrderItemStatusServed, OrderItemStatusCancelled:
		return true
	}
	return false
}

// OrderItem is one line on an order. UnitPrice is captured from the catalog
// when the line is first created and never re-fetched, so a mid-service
// price change cannot alter an in-progress order.
type OrderItem struct {
	ID         string          `gorm:"primaryKey" json:"id"`
	OrderID    string          `gorm:"index;not null" json:"order_id"`
	MenuItemID string          `gorm:"not null" json:"menu_item_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Status     OrderItemStatus `gorm:"type:varchar(20);not null" json:"status"`
}
