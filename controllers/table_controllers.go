package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-manager/models"
	"restaurant-manager/services"
	"restaurant-manager/storage"
	"restaurant-manager/utils"
)

type TableController struct {
	Store storage.Store
	Flow  *services.OrderFlow
}

func NewTableController(store storage.Store, flow *services.OrderFlow) *TableController {
	return &TableController{Store: store, Flow: flow}
}

// GetAllTables -> daftar seluruh meja. Dengan ?customer_id= hasilnya
// disaring ke meja yang bisa dipakai customer itu: meja kosong, atau
// meja terisi yang order aktifnya milik customer tersebut.
func (tc *TableController) GetAllTables(c *gin.Context) {
	if idStr := c.Query("customer_id"); idStr != "" {
		customerID, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customer_id"))
			return
		}
		tables, err := tc.Flow.TablesForCustomer(uint(customerID))
		if err != nil {
			respondFlowError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Assignable tables", tables)
		return
	}

	tables, err := tc.Store.ListTables()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// CreateTable -> tambah meja baru; nomor meja harus unik
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Number   int `json:"number" binding:"required,gt=0"`
		Capacity int `json:"capacity" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Cek nomor duplikat di sini supaya MemStore dan database
	// berperilaku sama.
	existing, err := tc.Store.ListTables()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	for _, t := range existing {
		if t.Number == req.Number {
			utils.RespondError(c, http.StatusConflict, errors.New("table number already in use"))
			return
		}
	}

	table := models.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
	}
	if err := tc.Store.CreateTable(&table); err != nil {
		respondFlowError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d created (capacity=%d)", table.Number, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}

// GetTableByID -> detail satu meja
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, ok := parseID(c, "table_id")
	if !ok {
		return
	}

	table, err := tc.Store.GetTable(id)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if table == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> partial update meja. Occupied ikut bisa diubah di sini
// demi paritas dengan klien lama, tapi pemilik nilai turunannya tetap
// alur order.
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, ok := parseID(c, "table_id")
	if !ok {
		return
	}

	var patch models.TablePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if patch.Capacity != nil && *patch.Capacity <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("capacity must be positive"))
		return
	}

	// Cek nomor duplikat seperti pada CreateTable supaya kedua store
	// sama-sama menjawab 409, bukan error storage.
	if patch.Number != nil {
		existing, err := tc.Store.ListTables()
		if err != nil {
			respondFlowError(c, err)
			return
		}
		for _, t := range existing {
			if t.ID != id && t.Number == *patch.Number {
				utils.RespondError(c, http.StatusConflict, errors.New("table number already in use"))
				return
			}
		}
	}

	table, err := tc.Store.UpdateTable(id, patch)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if table == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}
