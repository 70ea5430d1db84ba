package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"restaurant-ops/events"
	"restaurant-ops/models"
	"restaurant-ops/services"
	"restaurant-ops/utils"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// PayOrder -> record a settlement against an order
func (pc *PaymentController) PayOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	var req struct {
		Amount decimal.Decimal      `json:"amount" binding:"required"`
		Method models.PaymentMethod `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.payments.PayOrder(orderID, req.Amount, req.Method)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	events.BroadcastPaymentRecorded(*payment)

	utils.InfoLogger.Printf("Payment of %s recorded for order %s (%s)",
		utils.FormatAmount(payment.Amount), orderID, payment.Method)
	utils.RespondJSON(c, http.StatusCreated, "Payment recorded", payment)
}

// GetBalance -> what is still owed on the order
func (pc *PaymentController) GetBalance(c *gin.Context) {
	orderID := c.Param("order_id")

	balance, err := pc.payments.OutstandingBalance(orderID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Outstanding balance", gin.H{
		"order_id": orderID,
		"balance":  balance,
	})
}

// GetPaymentByID -> one payment
func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	payment, err := pc.payments.GetPayment(c.Param("payment_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
}

// GetAllPayments -> every payment, optionally scoped to one order
func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	if orderID := c.Query("order_id"); orderID != "" {
		utils.RespondJSON(c, http.StatusOK, "Payments for order", pc.payments.ListForOrder(orderID))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of payments", pc.payments.ListAll())
}
