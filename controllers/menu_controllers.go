package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"restaurant-ops/models"
	"restaurant-ops/services"
	"restaurant-ops/utils"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// CreateMenuItem -> add a dish to the catalog
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name            string              `json:"name" binding:"required"`
		Description     string              `json:"description"`
		Price           decimal.Decimal     `json:"price" binding:"required"`
		Category        models.MenuCategory `json:"category" binding:"required"`
		IsAvailable     *bool               `json:"is_available"`
		PreparationTime int                 `json:"preparation_time"`
		Ingredients     []string            `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item, err := mc.menu.AddMenuItem(models.MenuItem{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Category:        req.Category,
		IsAvailable:     available,
		PreparationTime: req.PreparationTime,
		Ingredients:     req.Ingredients,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item %q created at %s", item.Name, utils.FormatAmount(item.Price))
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem -> partial update; only fields present in the body change
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	var patch services.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.menu.UpdateMenuItem(c.Param("menu_item_id"), patch)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem -> drop a dish from the catalog
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id := c.Param("menu_item_id")
	if err := mc.menu.DeleteMenuItem(id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"id": id})
}

// GetMenuItemByID -> one dish
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	item, err := mc.menu.GetMenuItem(c.Param("menu_item_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// GetAllMenuItems -> the catalog, optionally one category
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		items, err := mc.menu.ListByCategory(models.MenuCategory(category))
		if err != nil {
			utils.RespondAppError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Menu items in category", items)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", mc.menu.ListMenuItems())
}
