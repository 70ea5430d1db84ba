package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-ops/events"
	"restaurant-ops/models"
	"restaurant-ops/services"
	"restaurant-ops/utils"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder -> open a new order; dine-in must name a table
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		OrderType  models.OrderType `json:"order_type" binding:"required"`
		TableID    string           `json:"table_id"`
		CustomerID string           `json:"customer_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	employeeID := c.GetString("userID")
	orderID, err := oc.orders.CreateOrder(req.OrderType, employeeID, req.TableID, req.CustomerID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	order, err := oc.orders.GetOrder(orderID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	events.BroadcastOrderCreated(order)

	utils.InfoLogger.Printf("Order %s created (%s) by %s", orderID, req.OrderType, employeeID)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// AddItem -> put quantity units of a menu item on the order
func (oc *OrderController) AddItem(c *gin.Context) {
	orderID := c.Param("order_id")

	var req struct {
		MenuItemID string `json:"menu_item_id" binding:"required"`
		Quantity   int    `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.orders.AddItem(orderID, req.MenuItemID, req.Quantity)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	events.BroadcastOrderUpdated(*order)

	utils.RespondJSON(c, http.StatusOK, "Item added", order)
}

// RemoveItem -> drop the whole line for a menu item
func (oc *OrderController) RemoveItem(c *gin.Context) {
	orderID := c.Param("order_id")
	menuItemID := c.Param("menu_item_id")

	order, err := oc.orders.RemoveItem(orderID, menuItemID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	events.BroadcastOrderUpdated(*order)

	utils.RespondJSON(c, http.StatusOK, "Item removed", order)
}

// UpdateStatus -> advance the order through its workflow
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.orders.UpdateStatus(orderID, req.Status)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	events.BroadcastOrderUpdated(*order)

	utils.InfoLogger.Printf("Order %s moved to %s", orderID, req.Status)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// DeleteOrder -> administrative destroy; payments stay untouched
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	if err := oc.orders.DeleteOrder(orderID); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	events.BroadcastOrderDeleted(orderID)

	utils.InfoLogger.Printf("Order %s deleted", orderID)
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"id": orderID})
}

// GetOrderByID -> one order with its lines
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.orders.GetOrder(c.Param("order_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetAllOrders -> list orders, optionally filtered by status, customer or table
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		orders, err := oc.orders.ListByStatus(models.OrderStatus(status))
		if err != nil {
			utils.RespondAppError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
		return
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		utils.RespondJSON(c, http.StatusOK, "List of orders", oc.orders.ListByCustomer(customerID))
		return
	}
	if tableID := c.Query("table_id"); tableID != "" {
		utils.RespondJSON(c, http.StatusOK, "List of orders", oc.orders.ListByTable(tableID))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.orders.ListOrders())
}
