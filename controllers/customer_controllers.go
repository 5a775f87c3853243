package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-manager/models"
	"restaurant-manager/storage"
	"restaurant-manager/utils"
)

type CustomerController struct {
	Store storage.Store
}

func NewCustomerController(store storage.Store) *CustomerController {
	return &CustomerController{Store: store}
}

// GetAllCustomers -> daftar seluruh customer
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Store.ListCustomers()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// CreateCustomer -> buat record customer baru
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
		Phone string `json:"phone" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := cc.Store.CreateCustomer(&customer); err != nil {
		respondFlowError(c, err)
		return
	}

	utils.InfoLogger.Printf("Customer created: %s (ID=%d)", customer.Name, customer.ID)
	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// GetCustomerByID -> detail satu customer
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := parseID(c, "customer_id")
	if !ok {
		return
	}

	customer, err := cc.Store.GetCustomer(id)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if customer == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// GetCustomerVisits -> riwayat kunjungan satu customer
func (cc *CustomerController) GetCustomerVisits(c *gin.Context) {
	id, ok := parseID(c, "customer_id")
	if !ok {
		return
	}

	customer, err := cc.Store.GetCustomer(id)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if customer == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	visits, err := cc.Store.ListVisitsByCustomer(id)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer visits", visits)
}

// CreateCustomerVisit -> buka kunjungan customer pada sebuah meja
func (cc *CustomerController) CreateCustomerVisit(c *gin.Context) {
	id, ok := parseID(c, "customer_id")
	if !ok {
		return
	}

	var req struct {
		TableID   uint       `json:"table_id" binding:"required"`
		StartTime *time.Time `json:"start_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.Store.GetCustomer(id)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if customer == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	table, err := cc.Store.GetTable(req.TableID)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if table == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	visit := models.CustomerVisit{
		CustomerID: id,
		TableID:    req.TableID,
	}
	if req.StartTime != nil {
		visit.StartTime = req.StartTime.UTC()
	}
	if err := cc.Store.CreateVisit(&visit); err != nil {
		respondFlowError(c, err)
		return
	}

	utils.InfoLogger.Printf("Visit opened for customer %d at table %d", id, req.TableID)
	utils.RespondJSON(c, http.StatusCreated, "Visit created", visit)
}

// EndCustomerVisit -> tutup kunjungan (set end time = sekarang)
func (cc *CustomerController) EndCustomerVisit(c *gin.Context) {
	id, ok := parseID(c, "visit_id")
	if !ok {
		return
	}

	visit, err := cc.Store.EndVisit(id, time.Now().UTC())
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if visit == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("visit not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Visit ended", visit)
}
