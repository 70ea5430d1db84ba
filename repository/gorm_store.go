package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-ops/apperr"
	"restaurant-ops/models"
)

// The gorm backend exists to prove the substitution point: the services run
// unchanged against it. Selected with STORE_DRIVER=sqlite.

// OpenSqlite opens (or creates) the sqlite database at path and migrates
// the schema.
func OpenSqlite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.MenuItem{},
		&models.Table{},
		&models.Payment{},
		&models.Customer{},
		&models.Employee{},
		&models.User{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// NewGormRepositories wires the full gorm backend.
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Orders:    &GormOrderRepository{db: db},
		MenuItems: &GormMenuItemRepository{db: db},
		Tables:    &GormTableRepository{db: db},
		Payments:  &GormPaymentRepository{db: db},
		Customers: &GormCustomerRepository{db: db},
		Employees: &GormEmployeeRepository{db: db},
		Users:     &GormUserRepository{db: db},
	}
}

type GormOrderRepository struct {
	db *gorm.DB
}

func (r *GormOrderRepository) Save(order models.Order) (models.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if err := r.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (r *GormOrderRepository) FindByID(id string) (models.Order, bool) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		return models.Order{}, false
	}
	return order, true
}

func (r *GormOrderRepository) findWhere(query string, args ...interface{}) []models.Order {
	var orders []models.Order
	r.db.Preload("Items").Where(query, args...).Find(&orders)
	return orders
}

func (r *GormOrderRepository) FindByStatus(status models.OrderStatus) []models.Order {
	return r.findWhere("status = ?", status)
}

func (r *GormOrderRepository) FindByCustomer(customerID string) []models.Order {
	return r.findWhere("customer_id = ?", customerID)
}

func (r *GormOrderRepository) FindByTable(tableID string) []models.Order {
	return r.findWhere("table_id = ?", tableID)
}

func (r *GormOrderRepository) FindAll() []models.Order {
	var orders []models.Order
	r.db.Preload("Items").Find(&orders)
	return orders
}

// Update rewrites the whole aggregate in one transaction: lines are replaced,
// not merged, so the stored state always matches the ledger's view exactly.
func (r *GormOrderRepository) Update(order models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&models.Order{}).Where("id = ?", order.ID).Count(&count)
		if count == 0 {
			return apperr.NotFound("order %q does not exist", order.ID)
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Items").Save(&order).Error; err != nil {
			return err
		}
		for i := range order.Items {
			if err := tx.Create(&order.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormOrderRepository) Delete(id string) bool {
	res := r.db.Delete(&models.Order{}, "id = ?", id)
	return res.Error == nil && res.RowsAffected > 0
}

type GormMenuItemRepository struct {
	db *gorm.DB
}

func (r *GormMenuItemRepository) Save(item models.MenuItem) (models.MenuItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := r.db.Create(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (r *GormMenuItemRepository) FindByID(id string) (models.MenuItem, bool) {
	var item models.MenuItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return models.MenuItem{}, false
	}
	return item, true
}

func (r *GormMenuItemRepository) FindByCategory(category models.MenuCategory) []models.MenuItem {
	var items []models.MenuItem
	r.db.Where("category = ?", category).Find(&items)
	return items
}

func (r *GormMenuItemRepository) FindAll() []models.MenuItem {
	var items []models.MenuItem
	r.db.Find(&items)
	return items
}

func (r *GormMenuItemRepository) Update(item models.MenuItem) error {
	return gormUpdate(r.db, &models.MenuItem{}, item.ID, &item)
}

func (r *GormMenuItemRepository) Delete(id string) bool {
	res := r.db.Delete(&models.MenuItem{}, "id = ?", id)
	return res.Error == nil && res.RowsAffected > 0
}

type GormTableRepository struct {
	db *gorm.DB
}

func (r *GormTableRepository) Save(table models.Table) (models.Table, error) {
	if table.ID == "" {
		table.ID = uuid.NewString()
	}
	if err := r.db.Create(&table).Error; err != nil {
		return models.Table{}, err
	}
	return table, nil
}

func (r *GormTableRepository) FindByID(id string) (models.Table, bool) {
	var table models.Table
	if err := r.db.First(&table, "id = ?", id).Error; err != nil {
		return models.Table{}, false
	}
	return table, true
}

func (r *GormTableRepository) FindByNumber(number int) (models.Table, bool) {
	var table models.Table
	if err := r.db.First(&table, "table_number = ?", number).Error; err != nil {
		return models.Table{}, false
	}
	return table, true
}

func (r *GormTableRepository) FindAll() []models.Table {
	var tables []models.Table
	r.db.Find(&tables)
	return tables
}

func (r *GormTableRepository) Update(table models.Table) error {
	return gormUpdate(r.db, &models.Table{}, table.ID, &table)
}

func (r *GormTableRepository) Delete(id string) bool {
	res := r.db.Delete(&models.Table{}, "id = ?", id)
	return res.Error == nil && res.RowsAffected > 0
}

type GormPaymentRepository struct {
	db *gorm.DB
}

func (r *GormPaymentRepository) Save(payment models.Payment) (models.Payment, error) {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if err := r.db.Create(&payment).Error; err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (r *GormPaymentRepository) FindByID(id string) (models.Payment, bool) {
	var payment models.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		return models.Payment{}, false
	}
	return payment, true
}

func (r *GormPaymentRepository) FindByOrder(orderID string) []models.Payment {
	var payments []models.Payment
	r.db.Where("order_id = ?", orderID).Find(&payments)
	return payments
}

func (r *GormPaymentRepository) FindAll() []models.Payment {
	var payments []models.Payment
	r.db.Find(&payments)
	return payments
}

func (r *GormPaymentRepository) Delete(id string) bool {
	res := r.db.Delete(&models.Payment{}, "id = ?", id)
	return res.Error == nil && res.RowsAffected > 0
}

type GormCustomerRepository struct {
	db *gorm.DB
}

func (r *GormCustomerRepository) Save(customer models.Customer) (models.Customer, error) {
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	if err := r.db.Create(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (r *GormCustomerRepository) FindByID(id string) (models.Customer, bool) {
	var customer models.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return models.Customer{}, false
	}
	return customer, true
}

func (r *GormCustomerRepository) FindAll() []models.Customer {
	var customers []models.Customer
	r.db.Find(&customers)
	return customers
}

func (r *GormCustomerRepository) Update(customer models.Customer) error {
	return gormUpdate(r.db, &models.Customer{}, customer.ID, &customer)
}

func (r *GormCustomerRepository) Delete(id string) bool {
	res := r.db.Delete(&models.Customer{}, "id = ?", id)
	return res.Error == nil && res.RowsAffected > 0
}

type GormEmployeeRepository struct {
	db *gorm.DB
}

func (r *GormEmployeeRepository) Save(employee models.Employee) (models.Employee, error) {
	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}
	if err := r.db.Create(&employee).Error; err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

func (r *GormEmployeeRepository) FindByID(id string) (models.Employee, bool) {
	var employee models.Employee
	if err := r.db.First(&employee, "id = ?", id).Error; err != nil {
		return models.Employee{}, false
	}
	return employee, true
}

func (r *GormEmployeeRepository) FindAll() []models.Employee {
	var employees []models.Employee
	r.db.Find(&employees)
	return employees
}

func (r *GormEmployeeRepository) Update(employee models.Employee) error {
	return gormUpdate(r.db, &models.Employee{}, employee.ID, &employee)
}

func (r *GormEmployeeRepository) Delete(id string) bool {
	res := r.db.Delete(&models.Employee{}, "id = ?", id)
	return res.Error == nil && res.RowsAffected > 0
}

type GormUserRepository struct {
	db *gorm.DB
}

func (r *GormUserRepository) Save(user models.User) (models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := r.db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *GormUserRepository) FindByID(id string) (models.User, bool) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, false
	}
	return user, true
}

func (r *GormUserRepository) FindByUsername(username string) (models.User, bool) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return models.User{}, false
	}
	return user, true
}

func (r *GormUserRepository) FindByEmail(email string) (models.User, bool) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return models.User{}, false
	}
	return user, true
}

func (r *GormUserRepository) FindAll() []models.User {
	var users []models.User
	r.db.Find(&users)
	return users
}

func (r *GormUserRepository) Update(user models.User) error {
	return gormUpdate(r.db, &models.User{}, user.ID, &user)
}

func (r *GormUserRepository) Delete(id string) bool {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	return res.Error == nil && res.RowsAffected > 0
}

// gormUpdate saves value only when a row with the id already exists, keeping
// the never-upsert contract the services rely on.
func gormUpdate(db *gorm.DB, model interface{}, id string, value interface{}) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("entity %q does not exist", id)
		}
		return err
	}
	if count == 0 {
		return apperr.NotFound("entity %q does not exist", id)
	}
	return db.Save(value).Error
}
