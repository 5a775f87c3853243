package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-manager/controllers"
	"restaurant-manager/middlewares"
	"restaurant-manager/services"
	"restaurant-manager/storage"
)

// SetupRouter merakit engine beserta seluruh middleware dan rute.
// Middleware harus terpasang sebelum rute didaftarkan: gin membekukan
// rantai handler tiap rute pada saat registrasi.
func SetupRouter(store storage.Store, allowOrigin string, limiter *middlewares.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares(allowOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(limiter.RateLimit())

	flow := services.NewOrderFlow(store)

	menuItemCtrl := controllers.NewMenuItemController(store)
	tableCtrl := controllers.NewTableController(store, flow)
	customerCtrl := controllers.NewCustomerController(store)
	orderCtrl := controllers.NewOrderController(store, flow)
	employeeCtrl := controllers.NewEmployeeController(store)
	statsCtrl := controllers.NewStatsController(store)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.GET("/menu-items", menuItemCtrl.GetAllMenuItems)
		api.POST("/menu-items", menuItemCtrl.CreateMenuItem)
		api.GET("/menu-items/:menu_item_id", menuItemCtrl.GetMenuItemByID)
		api.PATCH("/menu-items/:menu_item_id", menuItemCtrl.UpdateMenuItem)
		api.DELETE("/menu-items/:menu_item_id", menuItemCtrl.DeleteMenuItem)

		api.GET("/tables", tableCtrl.GetAllTables)
		api.POST("/tables", tableCtrl.CreateTable)
		api.GET("/tables/:table_id", tableCtrl.GetTableByID)
		api.PATCH("/tables/:table_id", tableCtrl.UpdateTable)

		api.GET("/customers", customerCtrl.GetAllCustomers)
		api.POST("/customers", customerCtrl.CreateCustomer)
		api.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
		api.GET("/customers/:customer_id/visits", customerCtrl.GetCustomerVisits)
		api.POST("/customers/:customer_id/visits", customerCtrl.CreateCustomerVisit)
		api.PATCH("/customer-visits/:visit_id/end", customerCtrl.EndCustomerVisit)

		api.GET("/orders", orderCtrl.GetAllOrders)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		api.PATCH("/orders/:order_id", orderCtrl.UpdateOrderStatus)
		api.POST("/orders/:order_id/items", orderCtrl.AddOrderItem)

		api.GET("/employees", employeeCtrl.GetAllEmployees)
		api.POST("/employees", employeeCtrl.CreateEmployee)

		api.GET("/stats", statsCtrl.GetStats)
	}

	return r
}
