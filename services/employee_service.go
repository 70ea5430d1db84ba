package services

import (
	"strings"
	"time"

	"restaurant-ops/apperr"
	"restaurant-ops/models"
	"restaurant-ops/repository"
)

type EmployeeService struct {
	employees repository.EmployeeRepository
}

func NewEmployeeService(employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

type EmployeePatch struct {
	Name          *string    `json:"name,omitempty"`
	Position      *string    `json:"position,omitempty"`
	HireDate      *time.Time `json:"hire_date,omitempty"`
	Salary        *float64   `json:"salary,omitempty"`
	ContactNumber *string    `json:"contact_number,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Address       *string    `json:"address,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
}

func (s *EmployeeService) AddEmployee(employee models.Employee) (*models.Employee, error) {
	if strings.TrimSpace(employee.Name) == "" {
		return nil, apperr.InvalidArgument("employee name is required")
	}
	if strings.TrimSpace(employee.Position) == "" {
		return nil, apperr.InvalidArgument("employee position is required")
	}
	if employee.Salary < 0 {
		return nil, apperr.InvalidArgument("employee salary must not be negative")
	}
	employee.IsActive = true
	saved, err := s.employees.Save(employee)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *EmployeeService) UpdateEmployee(id string, patch EmployeePatch) (*models.Employee, error) {
	employee, ok := s.employees.FindByID(id)
	if !ok {
		return nil, apperr.NotFound("employee %q does not exist", id)
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperr.InvalidArgument("employee name is required")
		}
		employee.Name = *patch.Name
	}
	if patch.Position != nil {
		employee.Position = *patch.Position
	}
	if patch.HireDate != nil {
		employee.HireDate = *patch.HireDate
	}
	if patch.Salary != nil {
		if *patch.Salary < 0 {
			return nil, apperr.InvalidArgument("employee salary must not be negative")
		}
		employee.Salary = *patch.Salary
	}
	if patch.ContactNumber != nil {
		employee.ContactNumber = *patch.ContactNumber
	}
	if patch.Email != nil {
		employee.Email = *patch.Email
	}
	if patch.Address != nil {
		employee.Address = *patch.Address
	}
	if patch.IsActive != nil {
		employee.IsActive = *patch.IsActive
	}
	if err := s.employees.Update(employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *EmployeeService) DeleteEmployee(id string) error {
	if !s.employees.Delete(id) {
		return apperr.NotFound("employee %q does not exist", id)
	}
	return nil
}

func (s *EmployeeService) GetEmployee(id string) (models.Employee, error) {
	employee, ok := s.employees.FindByID(id)
	if !ok {
		return models.Employee{}, apperr.NotFound("employee %q does not exist", id)
	}
	return employee, nil
}

func (s *EmployeeService) ListEmployees() []models.Employee {
	return s.employees.FindAll()
}
