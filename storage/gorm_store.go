package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"restaurant-manager/models"
)

// GormStore adalah implementasi Store di atas database relasional.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) AutoMigrate() error {
	return s.DB.AutoMigrate(
		&models.MenuItem{},
		&models.Table{},
		&models.Customer{},
		&models.CustomerVisit{},
		&models.Order{},
		&models.OrderItem{},
		&models.Employee{},
	)
}

// ----------------------------------------------------------------
//                          MENU ITEMS
// ----------------------------------------------------------------

func (s *GormStore) ListMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *GormStore) CreateMenuItem(item *models.MenuItem) error {
	return s.DB.Create(item).Error
}

func (s *GormStore) UpdateMenuItem(id uint, patch models.MenuItemPatch) (*models.MenuItem, error) {
	item, err := s.GetMenuItem(id)
	if err != nil || item == nil {
		return nil, err
	}
	patch.Apply(item)
	if err := s.DB.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GormStore) DeleteMenuItem(id uint) (bool, error) {
	res := s.DB.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ----------------------------------------------------------------
//                            TABLES
// ----------------------------------------------------------------

func (s *GormStore) ListTables() ([]models.Table, error) {
	var tables []models.Table
	if err := s.DB.Order("id").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *GormStore) GetTable(id uint) (*models.Table, error) {
	var table models.Table
	if err := s.DB.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

func (s *GormStore) CreateTable(table *models.Table) error {
	return s.DB.Create(table).Error
}

func (s *GormStore) UpdateTable(id uint, patch models.TablePatch) (*models.Table, error) {
	table, err := s.GetTable(id)
	if err != nil || table == nil {
		return nil, err
	}
	patch.Apply(table)
	if err := s.DB.Save(table).Error; err != nil {
		return nil, err
	}
	return table, nil
}

// ----------------------------------------------------------------
//                           CUSTOMERS
// ----------------------------------------------------------------

func (s *GormStore) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *GormStore) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (s *GormStore) CreateCustomer(customer *models.Customer) error {
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}
	return s.DB.Create(customer).Error
}

// ----------------------------------------------------------------
//                        CUSTOMER VISITS
// ----------------------------------------------------------------

func (s *GormStore) ListVisitsByCustomer(customerID uint) ([]models.CustomerVisit, error) {
	var visits []models.CustomerVisit
	if err := s.DB.Where("customer_id = ?", customerID).Order("id").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (s *GormStore) GetVisit(id uint) (*models.CustomerVisit, error) {
	var visit models.CustomerVisit
	if err := s.DB.First(&visit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (s *GormStore) CreateVisit(visit *models.CustomerVisit) error {
	if visit.StartTime.IsZero() {
		visit.StartTime = time.Now().UTC()
	}
	return s.DB.Create(visit).Error
}

func (s *GormStore) EndVisit(id uint, endTime time.Time) (*models.CustomerVisit, error) {
	visit, err := s.GetVisit(id)
	if err != nil || visit == nil {
		return nil, err
	}
	visit.EndTime = &endTime
	if err := s.DB.Save(visit).Error; err != nil {
		return nil, err
	}
	return visit, nil
}

// ----------------------------------------------------------------
//                            ORDERS
// ----------------------------------------------------------------

func (s *GormStore) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) ListOrdersByTable(tableID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Where("table_id = ?", tableID).Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) ListOrdersByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Where("customer_id = ?", customerID).Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (s *GormStore) CreateOrder(order *models.Order) error {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	return s.DB.Create(order).Error
}

func (s *GormStore) UpdateOrder(id uint, patch models.OrderPatch) (*models.Order, error) {
	order, err := s.GetOrder(id)
	if err != nil || order == nil {
		return nil, err
	}
	patch.Apply(order)
	if err := s.DB.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// ----------------------------------------------------------------
//                          ORDER ITEMS
// ----------------------------------------------------------------

func (s *GormStore) ListOrderItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := s.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) CreateOrderItem(item *models.OrderItem) error {
	return s.DB.Create(item).Error
}

// ----------------------------------------------------------------
//                           EMPLOYEES
// ----------------------------------------------------------------

func (s *GormStore) ListEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.Order("id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *GormStore) CreateEmployee(employee *models.Employee) error {
	if employee.HireDate.IsZero() {
		employee.HireDate = time.Now().UTC()
	}
	return s.DB.Create(employee).Error
}

// Transact membungkus fn dalam transaksi database; error dari fn
// membatalkan seluruh penulisan.
func (s *GormStore) Transact(fn func(Store) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}
