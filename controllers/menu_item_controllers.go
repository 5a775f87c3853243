package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-manager/models"
	"restaurant-manager/storage"
	"restaurant-manager/utils"
)

type MenuItemController struct {
	Store storage.Store
}

func NewMenuItemController(store storage.Store) *MenuItemController {
	return &MenuItemController{Store: store}
}

// GetAllMenuItems -> daftar seluruh item menu
func (mc *MenuItemController) GetAllMenuItems(c *gin.Context) {
	items, err := mc.Store.ListMenuItems()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// CreateMenuItem -> tambah item menu baru
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Price       int64  `json:"price" binding:"required,gt=0"`
		Category    string `json:"category" binding:"required"`
		Available   *bool  `json:"available"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   true,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := mc.Store.CreateMenuItem(&item); err != nil {
		respondFlowError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (price=%s)", item.Name, utils.FormatMinorUnits(item.Price))
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// GetMenuItemByID -> detail satu item menu
func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	id, ok := parseID(c, "menu_item_id")
	if !ok {
		return
	}

	item, err := mc.Store.GetMenuItem(id)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// UpdateMenuItem -> partial update; field nil tidak disentuh
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c, "menu_item_id")
	if !ok {
		return
	}

	var patch models.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if patch.Price != nil && *patch.Price <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must be positive"))
		return
	}
	if patch.Name != nil && *patch.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name must not be empty"))
		return
	}

	item, err := mc.Store.UpdateMenuItem(id, patch)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem -> hapus item menu; order item lama tetap menyimpan
// harga snapshot-nya
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c, "menu_item_id")
	if !ok {
		return
	}

	deleted, err := mc.Store.DeleteMenuItem(id)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	utils.InfoLogger.Printf("Menu item %d deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"menu_item_id": id})
}
