package repository

import (
	"sync"

	"github.com/google/uuid"

	"restaurant-ops/apperr"
	"restaurant-ops/models"
)

// memStore is the shared arena + id-keyed index behind every in-memory
// repository. All access goes through the RWMutex; values cross the boundary
// as deep copies in both directions, so callers can never tear a stored
// entity mid-mutation or alias its slices.
type memStore[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	ident func(T) string
	setID func(T, string) T
	clone func(T) T
}

func newMemStore[T any](ident func(T) string, setID func(T, string) T, clone func(T) T) *memStore[T] {
	return &memStore[T]{
		rows:  make(map[string]T),
		ident: ident,
		setID: setID,
		clone: clone,
	}
}

func (s *memStore[T]) save(v T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ident(v) == "" {
		v = s.setID(v, uuid.NewString())
	}
	s.rows[s.ident(v)] = s.clone(v)
	return v
}

func (s *memStore[T]) findByID(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.clone(v), true
}

func (s *memStore[T]) findAll() []T {
	return s.filter(func(T) bool { return true })
}

func (s *memStore[T]) filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0)
	for _, v := range s.rows {
		if keep(v) {
			out = append(out, s.clone(v))
		}
	}
	return out
}

func (s *memStore[T]) update(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ident(v)
	if _, ok := s.rows[id]; !ok {
		return apperr.NotFound("entity %q does not exist", id)
	}
	s.rows[id] = s.clone(v)
	return nil
}

func (s *memStore[T]) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return false
	}
	delete(s.rows, id)
	return true
}

func cloneOrder(o models.Order) models.Order {
	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	if o.EstimatedReadyTime != nil {
		t := *o.EstimatedReadyTime
		o.EstimatedReadyTime = &t
	}
	if o.ActualDeliveryTime != nil {
		t := *o.ActualDeliveryTime
		o.ActualDeliveryTime = &t
	}
	return o
}

func cloneMenuItem(m models.MenuItem) models.MenuItem {
	if m.Ingredients != nil {
		ing := make([]string, len(m.Ingredients))
		copy(ing, m.Ingredients)
		m.Ingredients = ing
	}
	return m
}

// MemoryOrderRepository keeps Order aggregates (order plus its lines) as one
// unit, so a Save or Update commits the whole aggregate atomically.
type MemoryOrderRepository struct {
	store *memStore[models.Order]
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{store: newMemStore(
		func(o models.Order) string { return o.ID },
		func(o models.Order, id string) models.Order { o.ID = id; return o },
		cloneOrder,
	)}
}

func (r *MemoryOrderRepository) Save(order models.Order) (models.Order, error) {
	return r.store.save(order), nil
}

func (r *MemoryOrderRepository) FindByID(id string) (models.Order, bool) {
	return r.store.findByID(id)
}

func (r *MemoryOrderRepository) FindByStatus(status models.OrderStatus) []models.Order {
	return r.store.filter(func(o models.Order) bool { return o.Status == status })
}

func (r *MemoryOrderRepository) FindByCustomer(customerID string) []models.Order {
	return r.store.filter(func(o models.Order) bool { return o.CustomerID == customerID })
}

func (r *MemoryOrderRepository) FindByTable(tableID string) []models.Order {
	return r.store.filter(func(o models.Order) bool { return o.TableID == tableID })
}

func (r *MemoryOrderRepository) FindAll() []models.Order {
	return r.store.findAll()
}

func (r *MemoryOrderRepository) Update(order models.Order) error {
	return r.store.update(order)
}

func (r *MemoryOrderRepository) Delete(id string) bool {
	return r.store.delete(id)
}

type MemoryMenuItemRepository struct {
	store *memStore[models.MenuItem]
}

func NewMemoryMenuItemRepository() *MemoryMenuItemRepository {
	return &MemoryMenuItemRepository{store: newMemStore(
		func(m models.MenuItem) string { return m.ID },
		func(m models.MenuItem, id string) models.MenuItem { m.ID = id; return m },
		cloneMenuItem,
	)}
}

func (r *MemoryMenuItemRepository) Save(item models.MenuItem) (models.MenuItem, error) {
	return r.store.save(item), nil
}

func (r *MemoryMenuItemRepository) FindByID(id string) (models.MenuItem, bool) {
	return r.store.findByID(id)
}

func (r *MemoryMenuItemRepository) FindByCategory(category models.MenuCategory) []models.MenuItem {
	return r.store.filter(func(m models.MenuItem) bool { return m.Category == category })
}

func (r *MemoryMenuItemRepository) FindAll() []models.MenuItem {
	return r.store.findAll()
}

func (r *MemoryMenuItemRepository) Update(item models.MenuItem) error {
	return r.store.update(item)
}

func (r *MemoryMenuItemRepository) Delete(id string) bool {
	return r.store.delete(id)
}

type MemoryTableRepository struct {
	store *memStore[models.Table]
}

func NewMemoryTableRepository() *MemoryTableRepository {
	return &MemoryTableRepository{store: newMemStore(
		func(t models.Table) string { return t.ID },
		func(t models.Table, id string) models.Table { t.ID = id; return t },
		func(t models.Table) models.Table { return t },
	)}
}

func (r *MemoryTableRepository) Save(table models.Table) (models.Table, error) {
	return r.store.save(table), nil
}

func (r *MemoryTableRepository) FindByID(id string) (models.Table, bool) {
	return r.store.findByID(id)
}

func (r *MemoryTableRepository) FindByNumber(number int) (models.Table, bool) {
	matches := r.store.filter(func(t models.Table) bool { return t.TableNumber == number })
	if len(matches) == 0 {
		return models.Table{}, false
	}
	return matches[0], true
}

func (r *MemoryTableRepository) FindAll() []models.Table {
	return r.store.findAll()
}

func (r *MemoryTableRepository) Update(table models.Table) error {
	return r.store.update(table)
}

func (r *MemoryTableRepository) Delete(id string) bool {
	return r.store.delete(id)
}

type MemoryPaymentRepository struct {
	store *memStore[models.Payment]
}

func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{store: newMemStore(
		func(p models.Payment) string { return p.ID },
		func(p models.Payment, id string) models.Payment { p.ID = id; return p },
		func(p models.Payment) models.Payment { return p },
	)}
}

func (r *MemoryPaymentRepository) Save(payment models.Payment) (models.Payment, error) {
	return r.store.save(payment), nil
}

func (r *MemoryPaymentRepository) FindByID(id string) (models.Payment, bool) {
	return r.store.findByID(id)
}

func (r *MemoryPaymentRepository) FindByOrder(orderID string) []models.Payment {
	return r.store.filter(func(p models.Payment) bool { return p.OrderID == orderID })
}

func (r *MemoryPaymentRepository) FindAll() []models.Payment {
	return r.store.findAll()
}

func (r *MemoryPaymentRepository) Delete(id string) bool {
	return r.store.delete(id)
}

type MemoryCustomerRepository struct {
	store *memStore[models.Customer]
}

func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{store: newMemStore(
		func(c models.Customer) string { return c.ID },
		func(c models.Customer, id string) models.Customer { c.ID = id; return c },
		func(c models.Customer) models.Customer { return c },
	)}
}

func (r *MemoryCustomerRepository) Save(customer models.Customer) (models.Customer, error) {
	return r.store.save(customer), nil
}

func (r *MemoryCustomerRepository) FindByID(id string) (models.Customer, bool) {
	return r.store.findByID(id)
}

func (r *MemoryCustomerRepository) FindAll() []models.Customer {
	return r.store.findAll()
}

func (r *MemoryCustomerRepository) Update(customer models.Customer) error {
	return r.store.update(customer)
}

func (r *MemoryCustomerRepository) Delete(id string) bool {
	return r.store.delete(id)
}

type MemoryEmployeeRepository struct {
	store *memStore[models.Employee]
}

func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{store: newMemStore(
		func(e models.Employee) string { return e.ID },
		func(e models.Employee, id string) models.Employee { e.ID = id; return e },
		func(e models.Employee) models.Employee { return e },
	)}
}

func (r *MemoryEmployeeRepository) Save(employee models.Employee) (models.Employee, error) {
	return r.store.save(employee), nil
}

func (r *MemoryEmployeeRepository) FindByID(id string) (models.Employee, bool) {
	return r.store.findByID(id)
}

func (r *MemoryEmployeeRepository) FindAll() []models.Employee {
	return r.store.findAll()
}

func (r *MemoryEmployeeRepository) Update(employee models.Employee) error {
	return r.store.update(employee)
}

func (r *MemoryEmployeeRepository) Delete(id string) bool {
	return r.store.delete(id)
}

type MemoryUserRepository struct {
	store *memStore[models.User]
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{store: newMemStore(
		func(u models.User) string { return u.ID },
		func(u models.User, id string) models.User { u.ID = id; return u },
		func(u models.User) models.User { return u },
	)}
}

func (r *MemoryUserRepository) Save(user models.User) (models.User, error) {
	return r.store.save(user), nil
}

func (r *MemoryUserRepository) FindByID(id string) (models.User, bool) {
	return r.store.findByID(id)
}

func (r *MemoryUserRepository) FindByUsername(username string) (models.User, bool) {
	matches := r.store.filter(func(u models.User) bool { return u.Username == username })
	if len(matches) == 0 {
		return models.User{}, false
	}
	return matches[0], true
}

func (r *MemoryUserRepository) FindByEmail(email string) (models.User, bool) {
	matches := r.store.filter(func(u models.User) bool { return u.Email == email })
	if len(matches) == 0 {
		return models.User{}, false
	}
	return matches[0], true
}

func (r *MemoryUserRepository) FindAll() []models.User {
	return r.store.findAll()
}

func (r *MemoryUserRepository) Update(user models.User) error {
	return r.store.update(user)
}

func (r *MemoryUserRepository) Delete(id string) bool {
	return r.store.delete(id)
}

// NewMemoryRepositories wires the full in-memory backend.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Orders:    NewMemoryOrderRepository(),
		MenuItems: NewMemoryMenuItemRepository(),
		Tables:    NewMemoryTableRepository(),
		Payments:  NewMemoryPaymentRepository(),
		Customers: NewMemoryCustomerRepository(),
		Employees: NewMemoryEmployeeRepository(),
		Users:     NewMemoryUserRepository(),
	}
}
