package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-ops/events"
	"restaurant-ops/models"
	"restaurant-ops/services"
	"restaurant-ops/utils"
)

type TableController struct {
	tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{tables: tables}
}

// CreateTable -> register a new table
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber int                `json:"table_number" binding:"required"`
		Capacity    int                `json:"capacity" binding:"required"`
		Status      models.TableStatus `json:"status"`
		Location    string             `json:"location"`
		Description string             `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.tables.AddTable(models.Table{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Status:      req.Status,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d created (capacity=%d)", table.TableNumber, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}

// UpdateTable -> partial update; only fields present in the body change
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var patch services.TablePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.tables.UpdateTable(tableID, patch)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	events.BroadcastTableUpdated(*table)

	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// ReserveTable -> refuse with 409 when the table is already reserved
func (tc *TableController) ReserveTable(c *gin.Context) {
	tableID := c.Param("table_id")

	if err := tc.tables.Reserve(tableID); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	table, err := tc.tables.GetTable(tableID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	events.BroadcastTableUpdated(table)

	utils.InfoLogger.Printf("Table %d reserved", table.TableNumber)
	utils.RespondJSON(c, http.StatusOK, "Table reserved", table)
}

// ReleaseTable -> back to available
func (tc *TableController) ReleaseTable(c *gin.Context) {
	tableID := c.Param("table_id")

	if err := tc.tables.Release(tableID); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	table, err := tc.tables.GetTable(tableID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	events.BroadcastTableUpdated(table)

	utils.RespondJSON(c, http.StatusOK, "Table released", table)
}

// DeleteTable -> remove a table from the registry
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")

	if err := tc.tables.DeleteTable(tableID); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %s deleted", tableID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": tableID})
}

// GetTableByID -> one table
func (tc *TableController) GetTableByID(c *gin.Context) {
	table, err := tc.tables.GetTable(c.Param("table_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// GetAllTables -> every table
func (tc *TableController) GetAllTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of tables", tc.tables.ListTables())
}
