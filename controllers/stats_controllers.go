package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-manager/storage"
	"restaurant-manager/utils"
)

type StatsController struct {
	Store storage.Store
}

func NewStatsController(store storage.Store) *StatsController {
	return &StatsController{Store: store}
}

// GetStats -> ringkasan dashboard: total penjualan, order aktif,
// meja kosong, jumlah customer
func (sc *StatsController) GetStats(c *gin.Context) {
	orders, err := sc.Store.ListOrders()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	tables, err := sc.Store.ListTables()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	customers, err := sc.Store.ListCustomers()
	if err != nil {
		respondFlowError(c, err)
		return
	}

	var totalSales int64
	activeOrders := 0
	for _, o := range orders {
		totalSales += o.TotalAmount
		if o.Active() {
			activeOrders++
		}
	}

	availableTables := 0
	for _, t := range tables {
		if !t.Occupied {
			availableTables++
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"total_sales":      totalSales,
		"active_orders":    activeOrders,
		"available_tables": availableTables,
		"total_tables":     len(tables),
		"customers":        len(customers),
	})
}
