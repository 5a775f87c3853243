package storage

import (
	"errors"
	"time"

	"restaurant-manager/models"
)

// ErrDuplicateTableNumber dikembalikan MemStore saat nomor meja sudah
// dipakai meja lain; padanan unique index pada backend relasional.
var ErrDuplicateTableNumber = errors.New("table number already in use")

// Store adalah batas persistence untuk seluruh entitas. Dua implementasi
// harus berperilaku identik: GormStore (Postgres/MySQL) dan MemStore
// (fallback in-process saat database tidak tersedia).
//
// Konvensi hasil: record yang tidak ditemukan dikembalikan sebagai
// (nil, nil), bukan error. Error hanya untuk kegagalan storage itu
// sendiri dan tidak pernah ditelan di lapisan ini.
type Store interface {
	// Menu items
	ListMenuItems() ([]models.MenuItem, error)
	GetMenuItem(id uint) (*models.MenuItem, error)
	CreateMenuItem(item *models.MenuItem) error
	UpdateMenuItem(id uint, patch models.MenuItemPatch) (*models.MenuItem, error)
	DeleteMenuItem(id uint) (bool, error)

	// Tables
	ListTables() ([]models.Table, error)
	GetTable(id uint) (*models.Table, error)
	CreateTable(table *models.Table) error
	UpdateTable(id uint, patch models.TablePatch) (*models.Table, error)

	// Customers
	ListCustomers() ([]models.Customer, error)
	GetCustomer(id uint) (*models.Customer, error)
	CreateCustomer(customer *models.Customer) error

	// Customer visits
	ListVisitsByCustomer(customerID uint) ([]models.CustomerVisit, error)
	GetVisit(id uint) (*models.CustomerVisit, error)
	CreateVisit(visit *models.CustomerVisit) error
	EndVisit(id uint, endTime time.Time) (*models.CustomerVisit, error)

	// Orders
	ListOrders() ([]models.Order, error)
	ListOrdersByTable(tableID uint) ([]models.Order, error)
	ListOrdersByCustomer(customerID uint) ([]models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	CreateOrder(order *models.Order) error
	UpdateOrder(id uint, patch models.OrderPatch) (*models.Order, error)

	// Order items
	ListOrderItems(orderID uint) ([]models.OrderItem, error)
	CreateOrderItem(item *models.OrderItem) error

	// Employees
	ListEmployees() ([]models.Employee, error)
	CreateEmployee(employee *models.Employee) error

	// Transact menjalankan fn terhadap view store yang penulisannya
	// atomik: semua berhasil atau tidak ada yang tersimpan.
	Transact(fn func(Store) error) error
}
