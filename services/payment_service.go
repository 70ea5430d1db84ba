package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant-ops/apperr"
	"restaurant-ops/models"
	"restaurant-ops/repository"
)

// OrderLookup is the slice of the ledger settlement needs: the order's
// existence and total, by id only.
type OrderLookup interface {
	GetOrder(orderID string) (models.Order, error)
}

// PaymentService records settlements against orders. Settlement is
// synchronous and local; a payment either commits as COMPLETED or nothing
// is recorded. Cumulative completed payments for an order never exceed the
// order's total: PayOrder runs under a per-order lock so two concurrent
// payments cannot both pass the balance check.
type PaymentService struct {
	payments repository.PaymentRepository
	orders   OrderLookup
	locks    *keyedMutex
	now      func() time.Time
}

func NewPaymentService(payments repository.PaymentRepository, orders OrderLookup) *PaymentService {
	return &PaymentService{
		payments: payments,
		orders:   orders,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}

func (s *PaymentService) PayOrder(orderID string, amount decimal.Decimal, method models.PaymentMethod) (*models.Payment, error) {
	if amount.Sign() <= 0 {
		return nil, apperr.InvalidArgument("payment amount must be positive")
	}
	if !method.Valid() {
		return nil, apperr.InvalidArgument("unknown payment method %q", method)
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	outstanding := order.TotalAmount.Sub(s.paidToDate(orderID))
	if amount.GreaterThan(outstanding) {
		return nil, apperr.InvalidArgument(
			"payment of %s exceeds the outstanding balance of %s for order %q",
			amount.StringFixed(2), outstanding.StringFixed(2), orderID)
	}

	payment := models.Payment{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		Amount:      amount,
		Method:      method,
		Status:      models.PaymentStatusCompleted,
		PaymentTime: s.now(),
	}
	saved, err := s.payments.Save(payment)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// paidToDate sums the COMPLETED payments already recorded for the order.
func (s *PaymentService) paidToDate(orderID string) decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.payments.FindByOrder(orderID) {
		if p.Status == models.PaymentStatusCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// OutstandingBalance reports what is still owed on the order.
func (s *PaymentService) OutstandingBalance(orderID string) (decimal.Decimal, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return decimal.Zero, err
	}
	return order.TotalAmount.Sub(s.paidToDate(orderID)), nil
}

func (s *PaymentService) GetPayment(id string) (models.Payment, error) {
	payment, ok := s.payments.FindByID(id)
	if !ok {
		return models.Payment{}, apperr.NotFound("payment %q does not exist", id)
	}
	return payment, nil
}

func (s *PaymentService) ListForOrder(orderID string) []models.Payment {
	return s.payments.FindByOrder(orderID)
}

func (s *PaymentService) ListAll() []models.Payment {
	return s.payments.FindAll()
}
