package services

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-ops/apperr"
	"restaurant-ops/models"
	"restaurant-ops/repository"
)

type ledgerFixture struct {
	orders *OrderService
	menu   *MenuService
	tables *TableService
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	repos := repository.NewMemoryRepositories()
	menu := NewMenuService(repos.MenuItems)
	tables := NewTableService(repos.Tables)
	return &ledgerFixture{
		orders: NewOrderService(repos.Orders, menu, tables),
		menu:   menu,
		tables: tables,
	}
}

func (f *ledgerFixture) seedMenuItem(t *testing.T, name, price string) string {
	t.Helper()
	item, err := f.menu.AddMenuItem(models.MenuItem{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: models.MenuCategoryMainCourse,
	})
	require.NoError(t, err)
	return item.ID
}

func (f *ledgerFixture) seedTable(t *testing.T, number int) string {
	t.Helper()
	table, err := f.tables.AddTable(models.Table{TableNumber: number, Capacity: 4})
	require.NoError(t, err)
	return table.ID
}

func sumOfLines(order *models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, item := range order.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func TestCreateOrderRequiresTableForDineIn(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.orders.CreateOrder(models.OrderTypeDineIn, "E1", "", "")
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = f.orders.CreateOrder(models.OrderTypeDineIn, "E1", "   ", "")
	assert.True(t, apperr.IsInvalidArgument(err))

	// Take-away needs no table.
	id, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)

	order, err := f.orders.GetOrder(id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Empty(t, order.Items)
	assert.True(t, order.TotalAmount.IsZero())
	assert.False(t, order.OrderTime.IsZero())
}

func TestCreateOrderRejectsUnknownType(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.orders.CreateOrder(models.OrderType("DRIVE_THROUGH"), "E1", "", "")
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestAddItemMergesExistingLine(t *testing.T) {
	f := newLedgerFixture(t)
	menuID := f.seedMenuItem(t, "Margherita", "9.99")
	orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)

	_, err = f.orders.AddItem(orderID, menuID, 2)
	require.NoError(t, err)
	order, err := f.orders.AddItem(orderID, menuID, 3)
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 5, order.Items[0].Quantity)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("49.95")),
		"total %s", order.TotalAmount)
}

func TestAddItemKeepsCapturedPrice(t *testing.T) {
	f := newLedgerFixture(t)
	menuID := f.seedMenuItem(t, "Carbonara", "12.50")
	orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)

	_, err = f.orders.AddItem(orderID, menuID, 1)
	require.NoError(t, err)

	// Mid-service price change must not touch the in-progress order.
	newPrice := decimal.RequireFromString("99.00")
	_, err = f.menu.UpdateMenuItem(menuID, MenuItemPatch{Price: &newPrice})
	require.NoError(t, err)

	order, err := f.orders.AddItem(orderID, menuID, 1)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("25.00")))
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	f := newLedgerFixture(t)
	menuID := f.seedMenuItem(t, "Tiramisu", "6.00")
	orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)

	for _, qty := range []int{0, -1} {
		_, err := f.orders.AddItem(orderID, menuID, qty)
		assert.True(t, apperr.IsInvalidArgument(err), "quantity %d", qty)
	}

	order, err := f.orders.GetOrder(orderID)
	require.NoError(t, err)
	assert.Empty(t, order.Items)
	assert.True(t, order.TotalAmount.IsZero())
}

func TestAddItemUnknownOrderOrMenuItem(t *testing.T) {
	f := newLedgerFixture(t)
	menuID := f.seedMenuItem(t, "Lasagna", "11.00")

	_, err := f.orders.AddItem("missing-order", menuID, 1)
	assert.True(t, apperr.IsNotFound(err))

	orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)
	_, err = f.orders.AddItem(orderID, "missing-item", 1)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAddItemRejectsUnavailableMenuItem(t *testing.T) {
	f := newLedgerFixture(t)
	menuID := f.seedMenuItem(t, "Oysters", "18.00")
	unavailable := false
	_, err := f.menu.UpdateMenuItem(menuID, MenuItemPatch{IsAvailable: &unavailable})
	require.NoError(t, err)

	orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)

	_, err = f.orders.AddItem(orderID, menuID, 1)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestRemoveItemScenario(t *testing.T) {
	f := newLedgerFixture(t)
	tableID := f.seedTable(t, 1)
	menuID := f.seedMenuItem(t, "Pizza Diavola", "9.99")

	orderID, err := f.orders.CreateOrder(models.OrderTypeDineIn, "E1", tableID, "")
	require.NoError(t, err)

	order, err := f.orders.AddItem(orderID, menuID, 2)
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("19.98")))

	order, err = f.orders.RemoveItem(orderID, menuID)
	require.NoError(t, err)
	assert.Empty(t, order.Items)
	assert.True(t, order.TotalAmount.IsZero())
}

func TestRemoveItemUnknownLine(t *testing.T) {
	f := newLedgerFixture(t)
	orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)

	_, err = f.orders.RemoveItem(orderID, "never-added")
	assert.True(t, apperr.IsNotFound(err))

	_, err = f.orders.RemoveItem("missing-order", "whatever")
	assert.True(t, apperr.IsNotFound(err))
}

func TestTotalInvariantAcrossMutations(t *testing.T) {
	f := newLedgerFixture(t)
	pizza := f.seedMenuItem(t, "Pizza", "9.99")
	pasta := f.seedMenuItem(t, "Pasta", "7.45")
	coke := f.seedMenuItem(t, "Coke", "2.30")

	orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)

	steps := []func() (*models.Order, error){
		func() (*models.Order, error) { return f.orders.AddItem(orderID, pizza, 2) },
		func() (*models.Order, error) { return f.orders.AddItem(orderID, coke, 3) },
		func() (*models.Order, error) { return f.orders.AddItem(orderID, pasta, 1) },
		func() (*models.Order, error) { return f.orders.AddItem(orderID, pizza, 1) },
		func() (*models.Order, error) { return f.orders.RemoveItem(orderID, coke) },
		func() (*models.Order, error) { return f.orders.AddItem(orderID, coke, 5) },
		func() (*models.Order, error) { return f.orders.RemoveItem(orderID, pizza) },
	}
	for i, step := range steps {
		order, err := step()
		require.NoError(t, err, "step %d", i)
		assert.True(t, order.TotalAmount.Equal(sumOfLines(order)),
			"step %d: total %s, lines sum %s", i, order.TotalAmount, sumOfLines(order))
	}
}

func TestUpdateStatusHappyPath(t *testing.T) {
	f := newLedgerFixture(t)
	orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)

	path := []models.OrderStatus{
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReadyToServe,
		models.OrderStatusServed,
		models.OrderStatusCompleted,
	}
	for _, next := range path {
		order, err := f.orders.UpdateStatus(orderID, next)
		require.NoError(t, err, "to %s", next)
		assert.Equal(t, next, order.Status)
	}

	order, err := f.orders.GetOrder(orderID)
	require.NoError(t, err)
	assert.NotNil(t, order.EstimatedReadyTime)
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	f := newLedgerFixture(t)
	orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(orderID, models.OrderStatusServed)
	assert.True(t, apperr.IsInvalidTransition(err))

	_, err = f.orders.UpdateStatus(orderID, models.OrderStatus("BOGUS"))
	assert.True(t, apperr.IsInvalidArgument(err))

	// Terminal states accept nothing, not even re-cancelling.
	_, err = f.orders.UpdateStatus(orderID, models.OrderStatusCancelled)
	require.NoError(t, err)
	_, err = f.orders.UpdateStatus(orderID, models.OrderStatusCancelled)
	assert.True(t, apperr.IsInvalidTransition(err))
	_, err = f.orders.UpdateStatus(orderID, models.OrderStatusConfirmed)
	assert.True(t, apperr.IsInvalidTransition(err))
}

func TestCancelledFromAnyNonTerminalState(t *testing.T) {
	f := newLedgerFixture(t)

	for _, setup := range [][]models.OrderStatus{
		{},
		{models.OrderStatusConfirmed},
		{models.OrderStatusConfirmed, models.OrderStatusPreparing},
		{models.OrderStatusConfirmed, models.OrderStatusPreparing, models.OrderStatusReadyToServe},
		{models.OrderStatusConfirmed, models.OrderStatusPreparing, models.OrderStatusReadyToServe, models.OrderStatusServed},
	} {
		orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
		require.NoError(t, err)
		for _, next := range setup {
			_, err = f.orders.UpdateStatus(orderID, next)
			require.NoError(t, err)
		}
		order, err := f.orders.UpdateStatus(orderID, models.OrderStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, order.Status)
	}
}

func TestTerminalDineInOrderReleasesTable(t *testing.T) {
	f := newLedgerFixture(t)
	tableID := f.seedTable(t, 7)
	require.NoError(t, f.tables.Reserve(tableID))

	orderID, err := f.orders.CreateOrder(models.OrderTypeDineIn, "E1", tableID, "")
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(orderID, models.OrderStatusCancelled)
	require.NoError(t, err)

	table, err := f.tables.GetTable(tableID)
	require.NoError(t, err)
	assert.Equal(t, models.TableStatusAvailable, table.Status)
}

func TestCompletedDeliveryStampsActualDeliveryTime(t *testing.T) {
	f := newLedgerFixture(t)
	orderID, err := f.orders.CreateOrder(models.OrderTypeDelivery, "E1", "", "")
	require.NoError(t, err)

	for _, next := range []models.OrderStatus{
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReadyToServe,
		models.OrderStatusServed,
	} {
		_, err = f.orders.UpdateStatus(orderID, next)
		require.NoError(t, err)
	}

	order, err := f.orders.UpdateStatus(orderID, models.OrderStatusCompleted)
	require.NoError(t, err)
	assert.NotNil(t, order.ActualDeliveryTime)
}

func TestDeleteOrderDoesNotCascade(t *testing.T) {
	f := newLedgerFixture(t)
	orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)

	require.NoError(t, f.orders.DeleteOrder(orderID))
	assert.True(t, apperr.IsNotFound(f.orders.DeleteOrder(orderID)))

	_, err = f.orders.GetOrder(orderID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListOrderFilters(t *testing.T) {
	f := newLedgerFixture(t)
	tableID := f.seedTable(t, 3)

	dineIn, err := f.orders.CreateOrder(models.OrderTypeDineIn, "E1", tableID, "C1")
	require.NoError(t, err)
	takeAway, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E2", "", "C2")
	require.NoError(t, err)
	_, err = f.orders.UpdateStatus(takeAway, models.OrderStatusConfirmed)
	require.NoError(t, err)

	byCustomer := f.orders.ListByCustomer("C1")
	require.Len(t, byCustomer, 1)
	assert.Equal(t, dineIn, byCustomer[0].ID)

	byTable := f.orders.ListByTable(tableID)
	require.Len(t, byTable, 1)
	assert.Equal(t, dineIn, byTable[0].ID)

	pending, err := f.orders.ListByStatus(models.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, dineIn, pending[0].ID)

	_, err = f.orders.ListByStatus(models.OrderStatus("NOPE"))
	assert.True(t, apperr.IsInvalidArgument(err))

	assert.Len(t, f.orders.ListOrders(), 2)
}

// 100 staff terminals adding the same new item concurrently must converge to
// a single merged line; without per-order serialization some of these
// additions would be lost or duplicated into separate lines.
func TestConcurrentAddItemSerialized(t *testing.T) {
	f := newLedgerFixture(t)
	coke := f.seedMenuItem(t, "Coke", "2.30")
	orderID, err := f.orders.CreateOrder(models.OrderTypeTakeAway, "E1", "", "")
	require.NoError(t, err)

	const callers = 100
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_, err := f.orders.AddItem(orderID, coke, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	order, err := f.orders.GetOrder(orderID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, callers, order.Items[0].Quantity)
	want := decimal.RequireFromString("2.30").Mul(decimal.NewFromInt(callers))
	assert.True(t, order.TotalAmount.Equal(want), "total %s, want %s", order.TotalAmount, want)
}
