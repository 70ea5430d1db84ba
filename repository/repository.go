// Package repository defines the persistence contract the services are
// written against, plus two interchangeable backends: in-memory keyed stores
// and a gorm/sqlite store. Services never know which one they hold.
package repository

import (
	"restaurant-ops/models"
)

// Every Save assigns a fresh id when the entity's id is blank and returns
// the stored entity. Every Update fails with apperr.NotFound when the id is
// unknown; it never inserts. Finds return copies; mutating a returned
// value never touches the store.

type OrderRepository interface {
	Save(order models.Order) (models.Order, error)
	FindByID(id string) (models.Order, bool)
	FindByStatus(status models.OrderStatus) []models.Order
	FindByCustomer(customerID string) []models.Order
	FindByTable(tableID string) []models.Order
	FindAll() []models.Order
	Update(order models.Order) error
	Delete(id string) bool
}

type MenuItemRepository interface {
	Save(item models.MenuItem) (models.MenuItem, error)
	FindByID(id string) (models.MenuItem, bool)
	FindByCategory(category models.MenuCategory) []models.MenuItem
	FindAll() []models.MenuItem
	Update(item models.MenuItem) error
	Delete(id string) bool
}

type TableRepository interface {
	Save(table models.Table) (models.Table, error)
	FindByID(id string) (models.Table, bool)
	FindByNumber(number int) (models.Table, bool)
	FindAll() []models.Table
	Update(table models.Table) error
	Delete(id string) bool
}

type PaymentRepository interface {
	Save(payment models.Payment) (models.Payment, error)
	FindByID(id string) (models.Payment, bool)
	FindByOrder(orderID string) []models.Payment
	FindAll() []models.Payment
	Delete(id string) bool
}

type CustomerRepository interface {
	Save(customer models.Customer) (models.Customer, error)
	FindByID(id string) (models.Customer, bool)
	FindAll() []models.Customer
	Update(customer models.Customer) error
	Delete(id string) bool
}

type EmployeeRepository interface {
	Save(employee models.Employee) (models.Employee, error)
	FindByID(id string) (models.Employee, bool)
	FindAll() []models.Employee
	Update(employee models.Employee) error
	Delete(id string) bool
}

type UserRepository interface {
	Save(user models.User) (models.User, error)
	FindByID(id string) (models.User, bool)
	FindByUsername(username string) (models.User, bool)
	FindByEmail(email string) (models.User, bool)
	FindAll() []models.User
	Update(user models.User) error
	Delete(id string) bool
}

// Repositories bundles one backend's implementation of every contract.
type Repositories struct {
	Orders    OrderRepository
	MenuItems MenuItemRepository
	Tables    TableRepository
	Payments  PaymentRepository
	Customers CustomerRepository
	Employees EmployeeRepository
	Users     UserRepository
}
