package services

import (
	"strings"

	"restaurant-ops/apperr"
	"restaurant-ops/models"
	"restaurant-ops/repository"
)

type CustomerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

type CustomerPatch struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  *string `json:"address,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (s *CustomerService) AddCustomer(customer models.Customer) (*models.Customer, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return nil, apperr.InvalidArgument("customer name is required")
	}
	if strings.TrimSpace(customer.Phone) == "" {
		return nil, apperr.InvalidArgument("customer phone is required")
	}
	customer.IsActive = true
	saved, err := s.customers.Save(customer)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *CustomerService) UpdateCustomer(id string, patch CustomerPatch) (*models.Customer, error) {
	customer, ok := s.customers.FindByID(id)
	if !ok {
		return nil, apperr.NotFound("customer %q does not exist", id)
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperr.InvalidArgument("customer name is required")
		}
		customer.Name = *patch.Name
	}
	if patch.Phone != nil {
		if strings.TrimSpace(*patch.Phone) == "" {
			return nil, apperr.InvalidArgument("customer phone is required")
		}
		customer.Phone = *patch.Phone
	}
	if patch.Email != nil {
		customer.Email = *patch.Email
	}
	if patch.Address != nil {
		customer.Address = *patch.Address
	}
	if patch.Notes != nil {
		customer.Notes = *patch.Notes
	}
	if patch.IsActive != nil {
		customer.IsActive = *patch.IsActive
	}
	if err := s.customers.Update(customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) DeleteCustomer(id string) error {
	if !s.customers.Delete(id) {
		return apperr.NotFound("customer %q does not exist", id)
	}
	return nil
}

func (s *CustomerService) GetCustomer(id string) (models.Customer, error) {
	customer, ok := s.customers.FindByID(id)
	if !ok {
		return models.Customer{}, apperr.NotFound("customer %q does not exist", id)
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers() []models.Customer {
	return s.customers.FindAll()
}
