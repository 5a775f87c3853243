package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-manager/controllers"
	"restaurant-manager/models"
	"restaurant-manager/services"
	"restaurant-manager/storage"
	"restaurant-manager/utils"
)

func setupTableRouter(store storage.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	flow := services.NewOrderFlow(store)
	ctrl := controllers.NewTableController(store, flow)
	router.GET("/api/tables", ctrl.GetAllTables)
	router.POST("/api/tables", ctrl.CreateTable)
	router.GET("/api/tables/:table_id", ctrl.GetTableByID)
	router.PATCH("/api/tables/:table_id", ctrl.UpdateTable)
	return router
}

func TestCreateTableRejectsDuplicateNumber(t *testing.T) {
	utils.InitLogger()
	store := storage.NewMemStore()
	router := setupTableRouter(store)

	w := doJSON(t, router, "POST", "/api/tables", gin.H{"number": 5, "capacity": 4})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/api/tables", gin.H{"number": 5, "capacity": 2})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateTableRejectsDuplicateNumber(t *testing.T) {
	utils.InitLogger()
	store := storage.NewMemStore()
	first := models.Table{Number: 1, Capacity: 4}
	second := models.Table{Number: 2, Capacity: 2}
	require.NoError(t, store.CreateTable(&first))
	require.NoError(t, store.CreateTable(&second))

	router := setupTableRouter(store)

	w := doJSON(t, router, "PATCH", fmt.Sprintf("/api/tables/%d", second.ID), gin.H{"number": 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Nomor sendiri boleh dikirim ulang.
	w = doJSON(t, router, "PATCH", fmt.Sprintf("/api/tables/%d", second.ID), gin.H{"number": 2})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateTable(t *testing.T) {
	utils.InitLogger()
	store := storage.NewMemStore()
	table := models.Table{Number: 3, Capacity: 2}
	require.NoError(t, store.CreateTable(&table))

	router := setupTableRouter(store)

	w := doJSON(t, router, "PATCH", fmt.Sprintf("/api/tables/%d", table.ID), gin.H{"capacity": 6})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Table `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Data.Capacity)
	assert.Equal(t, 3, resp.Data.Number)

	w = doJSON(t, router, "PATCH", "/api/tables/42", gin.H{"capacity": 6})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAvailableTablesPerCustomer(t *testing.T) {
	utils.InitLogger()
	store := storage.NewMemStore()

	cake := models.MenuItem{Name: "Cake", Price: 1000, Category: "Dessert", Available: true}
	require.NoError(t, store.CreateMenuItem(&cake))
	occupiedTable := models.Table{Number: 1, Capacity: 4}
	freeTable := models.Table{Number: 2, Capacity: 2}
	require.NoError(t, store.CreateTable(&occupiedTable))
	require.NoError(t, store.CreateTable(&freeTable))
	john := models.Customer{Name: "John", Email: "j@example.com", Phone: "1"}
	jane := models.Customer{Name: "Jane", Email: "a@example.com", Phone: "2"}
	require.NoError(t, store.CreateCustomer(&john))
	require.NoError(t, store.CreateCustomer(&jane))

	flow := services.NewOrderFlow(store)
	_, err := flow.PlaceOrder(john.ID, occupiedTable.ID, []services.OrderItemInput{
		{MenuItemID: cake.ID, Quantity: 1},
	})
	require.NoError(t, err)

	router := setupTableRouter(store)

	var resp struct {
		Data []models.Table `json:"data"`
	}

	// Meja terisi milik John tetap ditawarkan ke John.
	w := doJSON(t, router, "GET", fmt.Sprintf("/api/tables?customer_id=%d", john.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)

	// Jane hanya mendapat meja kosong.
	w = doJSON(t, router, "GET", fmt.Sprintf("/api/tables?customer_id=%d", jane.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, freeTable.ID, resp.Data[0].ID)
}
