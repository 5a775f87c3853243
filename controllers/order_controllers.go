package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-manager/models"
	"restaurant-manager/services"
	"restaurant-manager/storage"
	"restaurant-manager/utils"
)

type OrderController struct {
	Store storage.Store
	Flow  *services.OrderFlow
}

func NewOrderController(store storage.Store, flow *services.OrderFlow) *OrderController {
	return &OrderController{Store: store, Flow: flow}
}

// GetAllOrders -> daftar seluruh order
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Store.ListOrders()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder -> buat order pending lewat alur order: snapshot harga,
// buka kunjungan, tandai meja terisi
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		CustomerID uint                      `json:"customer_id"`
		TableID    uint                      `json:"table_id" binding:"required"`
		Items      []services.OrderItemInput `json:"items" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Flow.PlaceOrder(req.CustomerID, req.TableID, req.Items)
	if err != nil {
		respondFlowError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created at table %d (total=%s)",
		order.ID, order.TableID, utils.FormatMinorUnits(order.TotalAmount))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> detail satu order beserta itemnya
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.Store.GetOrder(id)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if order == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	items, err := oc.Store.ListOrderItems(id)
	if err != nil {
		respondFlowError(c, err)
		return
	}

	type orderDetail struct {
		models.Order
		Items []models.OrderItem `json:"items"`
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", orderDetail{Order: *order, Items: items})
}

// UpdateOrderStatus -> majukan status order satu langkah; saat completed
// alur order membereskan meja dan kunjungan
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Flow.AdvanceOrder(id, req.Status)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if order == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	utils.InfoLogger.Printf("Order %d moved to %s", order.ID, order.Status)
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// AddOrderItem -> tambah item pada order yang ada; total order
// diselaraskan ulang
func (oc *OrderController) AddOrderItem(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	var req services.OrderItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := oc.Flow.AddItem(id, req)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order item added", item)
}
