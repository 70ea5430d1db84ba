package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-ops/models"
	"restaurant-ops/services"
	"restaurant-ops/utils"
)

type EmployeeController struct {
	employees *services.EmployeeService
}

func NewEmployeeController(employees *services.EmployeeService) *EmployeeController {
	return &EmployeeController{employees: employees}
}

func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req struct {
		UserID        string    `json:"user_id"`
		Name          string    `json:"name" binding:"required"`
		Position      string    `json:"position" binding:"required"`
		HireDate      time.Time `json:"hire_date"`
		Salary        float64   `json:"salary"`
		ContactNumber string    `json:"contact_number"`
		Email         string    `json:"email"`
		Address       string    `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	employee, err := ec.employees.AddEmployee(models.Employee{
		UserID:        req.UserID,
		Name:          req.Name,
		Position:      req.Position,
		HireDate:      req.HireDate,
		Salary:        req.Salary,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Address:       req.Address,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Employee created", employee)
}

func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	var patch services.EmployeePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	employee, err := ec.employees.UpdateEmployee(c.Param("employee_id"), patch)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Employee updated", employee)
}

func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id := c.Param("employee_id")
	if err := ec.employees.DeleteEmployee(id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Employee deleted", gin.H{"id": id})
}

func (ec *EmployeeController) GetEmployeeByID(c *gin.Context) {
	employee, err := ec.employees.GetEmployee(c.Param("employee_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Employee detail", employee)
}

func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of employees", ec.employees.ListEmployees())
}
