package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-manager/models"
	"restaurant-manager/storage"
	"restaurant-manager/utils"
)

type EmployeeController struct {
	Store storage.Store
}

func NewEmployeeController(store storage.Store) *EmployeeController {
	return &EmployeeController{Store: store}
}

// GetAllEmployees -> daftar seluruh pegawai
func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	employees, err := ec.Store.ListEmployees()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of employees", employees)
}

// CreateEmployee -> tambah pegawai baru
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req struct {
		Name   string `json:"name" binding:"required"`
		Email  string `json:"email" binding:"required"`
		Phone  string `json:"phone" binding:"required"`
		Role   string `json:"role" binding:"required"`
		Active *bool  `json:"active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	employee := models.Employee{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   req.Role,
		Active: true,
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}

	if err := ec.Store.CreateEmployee(&employee); err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Employee created", employee)
}
