package storage

import (
	"sync"
	"time"

	"restaurant-manager/models"
)

// MemStore adalah implementasi Store in-process yang dipakai sebagai
// fallback saat database tidak tersedia. Record disimpan dalam slice
// per tipe dengan counter id monoton yang dimulai dari 1, urutan list
// mengikuti urutan pembuatan.
type MemStore struct {
	mu sync.RWMutex
	// noLock true pada view transaksi: lock sudah dipegang Transact.
	noLock bool
	data   *memData
}

type memData struct {
	menuItems []models.MenuItem
	tables    []models.Table
	customers []models.Customer
	visits    []models.CustomerVisit
	orders    []models.Order
	items     []models.OrderItem
	employees []models.Employee

	counters struct {
		menuItems uint
		tables    uint
		customers uint
		visits    uint
		orders    uint
		items     uint
		employees uint
	}
}

func NewMemStore() *MemStore {
	return &MemStore{data: &memData{}}
}

func (s *MemStore) rlock() func() {
	if s.noLock {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *MemStore) lock() func() {
	if s.noLock {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// snapshot menyalin seluruh isi store untuk rollback transaksi. Elemen
// slice adalah value, jadi salinan slice sudah cukup dalam.
func (d *memData) snapshot() *memData {
	c := &memData{
		menuItems: append([]models.MenuItem(nil), d.menuItems...),
		tables:    append([]models.Table(nil), d.tables...),
		customers: append([]models.Customer(nil), d.customers...),
		visits:    append([]models.CustomerVisit(nil), d.visits...),
		orders:    append([]models.Order(nil), d.orders...),
		items:     append([]models.OrderItem(nil), d.items...),
		employees: append([]models.Employee(nil), d.employees...),
	}
	c.counters = d.counters
	return c
}

// ----------------------------------------------------------------
//                          MENU ITEMS
// ----------------------------------------------------------------

func (s *MemStore) ListMenuItems() ([]models.MenuItem, error) {
	defer s.rlock()()
	return append([]models.MenuItem(nil), s.data.menuItems...), nil
}

func (s *MemStore) GetMenuItem(id uint) (*models.MenuItem, error) {
	defer s.rlock()()
	for _, item := range s.data.menuItems {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateMenuItem(item *models.MenuItem) error {
	defer s.lock()()
	s.data.counters.menuItems++
	item.ID = s.data.counters.menuItems
	s.data.menuItems = append(s.data.menuItems, *item)
	return nil
}

func (s *MemStore) UpdateMenuItem(id uint, patch models.MenuItemPatch) (*models.MenuItem, error) {
	defer s.lock()()
	for i := range s.data.menuItems {
		if s.data.menuItems[i].ID == id {
			patch.Apply(&s.data.menuItems[i])
			item := s.data.menuItems[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (s *MemStore) DeleteMenuItem(id uint) (bool, error) {
	defer s.lock()()
	for i := range s.data.menuItems {
		if s.data.menuItems[i].ID == id {
			s.data.menuItems = append(s.data.menuItems[:i], s.data.menuItems[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ----------------------------------------------------------------
//                            TABLES
// ----------------------------------------------------------------

func (s *MemStore) ListTables() ([]models.Table, error) {
	defer s.rlock()()
	return append([]models.Table(nil), s.data.tables...), nil
}

func (s *MemStore) GetTable(id uint) (*models.Table, error) {
	defer s.rlock()()
	for _, table := range s.data.tables {
		if table.ID == id {
			return &table, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateTable(table *models.Table) error {
	defer s.lock()()
	// Nomor meja unik, sama seperti unique index di backend relasional.
	for _, t := range s.data.tables {
		if t.Number == table.Number {
			return ErrDuplicateTableNumber
		}
	}
	s.data.counters.tables++
	table.ID = s.data.counters.tables
	s.data.tables = append(s.data.tables, *table)
	return nil
}

func (s *MemStore) UpdateTable(id uint, patch models.TablePatch) (*models.Table, error) {
	defer s.lock()()
	if patch.Number != nil {
		for _, t := range s.data.tables {
			if t.ID != id && t.Number == *patch.Number {
				return nil, ErrDuplicateTableNumber
			}
		}
	}
	for i := range s.data.tables {
		if s.data.tables[i].ID == id {
			patch.Apply(&s.data.tables[i])
			table := s.data.tables[i]
			return &table, nil
		}
	}
	return nil, nil
}

// ----------------------------------------------------------------
//                           CUSTOMERS
// ----------------------------------------------------------------

func (s *MemStore) ListCustomers() ([]models.Customer, error) {
	defer s.rlock()()
	return append([]models.Customer(nil), s.data.customers...), nil
}

func (s *MemStore) GetCustomer(id uint) (*models.Customer, error) {
	defer s.rlock()()
	for _, customer := range s.data.customers {
		if customer.ID == id {
			return &customer, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateCustomer(customer *models.Customer) error {
	defer s.lock()()
	s.data.counters.customers++
	customer.ID = s.data.counters.customers
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}
	s.data.customers = append(s.data.customers, *customer)
	return nil
}

// ----------------------------------------------------------------
//                        CUSTOMER VISITS
// ----------------------------------------------------------------

func (s *MemStore) ListVisitsByCustomer(customerID uint) ([]models.CustomerVisit, error) {
	defer s.rlock()()
	var visits []models.CustomerVisit
	for _, v := range s.data.visits {
		if v.CustomerID == customerID {
			visits = append(visits, v)
		}
	}
	return visits, nil
}

func (s *MemStore) GetVisit(id uint) (*models.CustomerVisit, error) {
	defer s.rlock()()
	for _, visit := range s.data.visits {
		if visit.ID == id {
			return &visit, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateVisit(visit *models.CustomerVisit) error {
	defer s.lock()()
	s.data.counters.visits++
	visit.ID = s.data.counters.visits
	if visit.StartTime.IsZero() {
		visit.StartTime = time.Now().UTC()
	}
	s.data.visits = append(s.data.visits, *visit)
	return nil
}

func (s *MemStore) EndVisit(id uint, endTime time.Time) (*models.CustomerVisit, error) {
	defer s.lock()()
	for i := range s.data.visits {
		if s.data.visits[i].ID == id {
			s.data.visits[i].EndTime = &endTime
			visit := s.data.visits[i]
			return &visit, nil
		}
	}
	return nil, nil
}

// ----------------------------------------------------------------
//                            ORDERS
// ----------------------------------------------------------------

func (s *MemStore) ListOrders() ([]models.Order, error) {
	defer s.rlock()()
	return append([]models.Order(nil), s.data.orders...), nil
}

func (s *MemStore) ListOrdersByTable(tableID uint) ([]models.Order, error) {
	defer s.rlock()()
	var orders []models.Order
	for _, o := range s.data.orders {
		if o.TableID == tableID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (s *MemStore) ListOrdersByCustomer(customerID uint) ([]models.Order, error) {
	defer s.rlock()()
	var orders []models.Order
	for _, o := range s.data.orders {
		if o.CustomerID == customerID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (s *MemStore) GetOrder(id uint) (*models.Order, error) {
	defer s.rlock()()
	for _, order := range s.data.orders {
		if order.ID == id {
			return &order, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateOrder(order *models.Order) error {
	defer s.lock()()
	s.data.counters.orders++
	order.ID = s.data.counters.orders
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	s.data.orders = append(s.data.orders, *order)
	return nil
}

func (s *MemStore) UpdateOrder(id uint, patch models.OrderPatch) (*models.Order, error) {
	defer s.lock()()
	for i := range s.data.orders {
		if s.data.orders[i].ID == id {
			patch.Apply(&s.data.orders[i])
			order := s.data.orders[i]
			return &order, nil
		}
	}
	return nil, nil
}

// ----------------------------------------------------------------
//                          ORDER ITEMS
// ----------------------------------------------------------------

func (s *MemStore) ListOrderItems(orderID uint) ([]models.OrderItem, error) {
	defer s.rlock()()
	var items []models.OrderItem
	for _, item := range s.data.items {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *MemStore) CreateOrderItem(item *models.OrderItem) error {
	defer s.lock()()
	s.data.counters.items++
	item.ID = s.data.counters.items
	s.data.items = append(s.data.items, *item)
	return nil
}

// ----------------------------------------------------------------
//                           EMPLOYEES
// ----------------------------------------------------------------

func (s *MemStore) ListEmployees() ([]models.Employee, error) {
	defer s.rlock()()
	return append([]models.Employee(nil), s.data.employees...), nil
}

func (s *MemStore) CreateEmployee(employee *models.Employee) error {
	defer s.lock()()
	s.data.counters.employees++
	employee.ID = s.data.counters.employees
	if employee.HireDate.IsZero() {
		employee.HireDate = time.Now().UTC()
	}
	s.data.employees = append(s.data.employees, *employee)
	return nil
}

// Transact memegang write lock selama fn berjalan dan mengembalikan isi
// store ke snapshot awal bila fn gagal, sehingga penulisan bertingkat
// terlihat atomik seperti transaksi database.
func (s *MemStore) Transact(fn func(Store) error) error {
	if s.noLock {
		// Sudah di dalam transaksi; jalankan langsung.
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.data.snapshot()
	view := &MemStore{noLock: true, data: s.data}
	if err := fn(view); err != nil {
		*s.data = *backup
		return err
	}
	return nil
}
