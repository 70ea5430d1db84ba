package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant-ops/apperr"
	"restaurant-ops/models"
	"restaurant-ops/repository"
	"restaurant-ops/utils"
)

// MenuCatalog is the slice of the menu service the ledger needs: resolve an
// id to its current price and availability.
type MenuCatalog interface {
	GetMenuItem(id string) (models.MenuItem, error)
}

// TableReleaser is the slice of the table coordinator the ledger needs when
// an order terminates.
type TableReleaser interface {
	Release(tableID string) error
}

// OrderService is the order ledger. It owns the Order/OrderItem aggregate,
// enforces the total invariant (TotalAmount always equals the sum of its
// lines) and the status workflow, and initiates table release when a dine-in
// order terminates.
//
// Every mutating operation runs the whole fetch-mutate-persist cycle under
// the order's lock, so concurrent staff touching the same order are
// serialized and the merge rule cannot lose an update. Operations on
// different orders do not contend.
type OrderService struct {
	orders repository.OrderRepository
	menu   MenuCatalog
	tables TableReleaser
	locks  *keyedMutex
	now    func() time.Time
}

func NewOrderService(orders repository.OrderRepository, menu MenuCatalog, tables TableReleaser) *OrderService {
	return &OrderService{
		orders: orders,
		menu:   menu,
		tables: tables,
		locks:  newKeyedMutex(),
		now:    time.Now,
	}
}

// CreateOrder opens a new PENDING order with no lines and a zero total and
// returns its id. Dine-in orders must name a table; reserving that table is
// a deliberate second call to the table coordinator, so creation and
// reservation can be retried or compensated independently.
func (s *OrderService) CreateOrder(orderType models.OrderType, employeeID, tableID, customerID string) (string, error) {
	if !orderType.Valid() {
		return "", apperr.InvalidArgument("unknown order type %q", orderType)
	}
	if strings.TrimSpace(employeeID) == "" {
		return "", apperr.InvalidArgument("employee id is required")
	}
	if orderType == models.OrderTypeDineIn && strings.TrimSpace(tableID) == "" {
		return "", apperr.InvalidArgument("table id is required for dine-in orders")
	}

	order := models.Order{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		TableID:     tableID,
		EmployeeID:  employeeID,
		OrderType:   orderType,
		Status:      models.OrderStatusPending,
		Items:       []models.OrderItem{},
		TotalAmount: decimal.Zero,
		OrderTime:   s.now(),
	}

	saved, err := s.orders.Save(order)
	if err != nil {
		return "", err
	}
	return saved.ID, nil
}

// AddItem puts quantity units of a menu item on the order. If the order
// already carries a line for that item the quantities merge and the line
// keeps the unit price captured when it was first added; otherwise a new
// line snapshots the catalog price as of this call. The total is recomputed
// from scratch and the aggregate persisted as one unit.
func (s *OrderService) AddItem(orderID, menuItemID string, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, apperr.InvalidArgument("quantity must be positive")
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, ok := s.orders.FindByID(orderID)
	if !ok {
		return nil, apperr.NotFound("order %q does not exist", orderID)
	}
	menuItem, err := s.menu.GetMenuItem(menuItemID)
	if err != nil {
		return nil, err
	}
	if !menuItem.IsAvailable {
		return nil, apperr.InvalidArgument("menu item %q is not available", menuItem.Name)
	}

	if line := order.Item(menuItemID); line != nil {
		line.Quantity += quantity
	} else {
		order.Items = append(order.Items, models.OrderItem{
			ID:         uuid.NewString(),
			OrderID:    orderID,
			MenuItemID: menuItemID,
			Quantity:   quantity,
			UnitPrice:  menuItem.Price,
			Status:     models.OrderItemStatusPending,
		})
	}
	order.RecalculateTotal()

	if err := s.orders.Update(order); err != nil {
		return nil, err
	}
	return &order, nil
}

// RemoveItem drops the whole line for menuItemID. Reducing a quantity means
// removing the line and re-adding with the new count, which re-snapshots
// the unit price at the current catalog value.
func (s *OrderService) RemoveItem(orderID, menuItemID string) (*models.Order, error) {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, ok := s.orders.FindByID(orderID)
	if !ok {
		return nil, apperr.NotFound("order %q does not exist", orderID)
	}

	removed := false
	kept := order.Items[:0]
	for _, item := range order.Items {
		if item.MenuItemID == menuItemID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil, apperr.NotFound("order %q has no line for menu item %q", orderID, menuItemID)
	}
	order.Items = kept
	order.RecalculateTotal()

	if err := s.orders.Update(order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus advances the order through the workflow, validating the move
// against the transition table. Reaching READY_TO_SERVE stamps the estimated
// ready time; completing a delivery order stamps the actual delivery time.
// When a dine-in order reaches a terminal status the ledger releases its
// table with an explicit call; nothing cascades on its own.
func (s *OrderService) UpdateStatus(orderID string, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, apperr.InvalidArgument("unknown order status %q", next)
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, ok := s.orders.FindByID(orderID)
	if !ok {
		return nil, apperr.NotFound("order %q does not exist", orderID)
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, apperr.InvalidTransition("order %q cannot move from %s to %s", orderID, order.Status, next)
	}

	order.Status = next
	switch {
	case next == models.OrderStatusReadyToServe:
		t := s.now()
		order.EstimatedReadyTime = &t
	case next == models.OrderStatusCompleted && order.OrderType == models.OrderTypeDelivery:
		t := s.now()
		order.ActualDeliveryTime = &t
	}

	if err := s.orders.Update(order); err != nil {
		return nil, err
	}

	if next.Terminal() && order.OrderType == models.OrderTypeDineIn && order.TableID != "" {
		if err := s.tables.Release(order.TableID); err != nil {
			// The transition itself already committed; a missing table only
			// means there is nothing left to free.
			utils.ErrorLogger.Printf("release of table %s after order %s: %v", order.TableID, orderID, err)
		}
	}
	return &order, nil
}

// DeleteOrder destroys an order outright. Administrative; payments recorded
// against the order are not touched.
func (s *OrderService) DeleteOrder(orderID string) error {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	if !s.orders.Delete(orderID) {
		return apperr.NotFound("order %q does not exist", orderID)
	}
	return nil
}

func (s *OrderService) GetOrder(orderID string) (models.Order, error) {
	order, ok := s.orders.FindByID(orderID)
	if !ok {
		return models.Order{}, apperr.NotFound("order %q does not exist", orderID)
	}
	return order, nil
}

func (s *OrderService) ListOrders() []models.Order {
	return s.orders.FindAll()
}

func (s *OrderService) ListByStatus(status models.OrderStatus) ([]models.Order, error) {
	if !status.Valid() {
		return nil, apperr.InvalidArgument("unknown order status %q", status)
	}
	return s.orders.FindByStatus(status), nil
}

func (s *OrderService) ListByCustomer(customerID string) []models.Order {
	return s.orders.FindByCustomer(customerID)
}

func (s *OrderService) ListByTable(tableID string) []models.Order {
	return s.orders.FindByTable(tableID)
}
