package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "CASH"
	PaymentMethodCreditCard    PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard     PaymentMethod = "DEBIT_CARD"
	PaymentMethodMobilePayment PaymentMethod = "MOBILE_PAYMENT"
	PaymentMethodGiftCard      PaymentMethod = "GIFT_CARD"
	PaymentMethodOther         PaymentMethod = "OTHER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodMobilePayment, PaymentMethodGiftCard, PaymentMethodOther:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "PENDING"
	PaymentStatusCompleted         PaymentStatus = "COMPLETED"
	PaymentStatusFailed            PaymentStatus = "FAILED"
	PaymentStatusRefunded          PaymentStatus = "REFUNDED"
	PaymentStatusPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
	PaymentStatusCancelled         PaymentStatus = "CANCELLED"
)

// Payment records one settlement against an order. It references the order
// by id only; it never reaches into the ledger's internals.
type Payment struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	OrderID     string          `gorm:"index;not null" json:"order_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method      PaymentMethod   `gorm:"type:varchar(20);not null" json:"method"`
	Status      PaymentStatus   `gorm:"type:varchar(20);not null" json:"status"`
	PaymentTime time.Time       `gorm:"not null" json:"payment_time"`
}
