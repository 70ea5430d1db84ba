package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-ops/models"
	"restaurant-ops/services"
	"restaurant-ops/utils"
)

type CustomerController struct {
	customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{customers: customers}
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		Email   string `json:"email"`
		Address string `json:"address"`
		Notes   string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.customers.AddCustomer(models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var patch services.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.customers.UpdateCustomer(c.Param("customer_id"), patch)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer updated", customer)
}

func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id := c.Param("customer_id")
	if err := cc.customers.DeleteCustomer(id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"id": id})
}

func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	customer, err := cc.customers.GetCustomer(c.Param("customer_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of customers", cc.customers.ListCustomers())
}
