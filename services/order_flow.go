package services

import (
	"fmt"
	"time"

	"restaurant-manager/models"
	"restaurant-manager/storage"
)

// ValidationError menandai input yang ditolak sebelum menyentuh store;
// controller memetakannya ke HTTP 400 dengan detail field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// OrderItemInput adalah satu baris item pada permintaan pembuatan order.
// Harga tidak ikut dikirim; selalu di-resolve dari menu saat submit.
type OrderItemInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// OrderFlow memegang aturan konsistensi lintas entitas: occupancy meja
// vs order aktif, buka/tutup kunjungan customer, dan total order vs
// baris itemnya. Semua urutan multi-step dibungkus Store.Transact.
type OrderFlow struct {
	Store storage.Store
}

func NewOrderFlow(store storage.Store) *OrderFlow {
	return &OrderFlow{Store: store}
}

// PlaceOrder membuat order pending beserta itemnya, membuka kunjungan
// bila belum ada yang aktif, lalu menandai meja terisi.
//
// customerID boleh 0 saat meja sudah terisi: customer diambil dari order
// aktif pertama di meja tersebut agar tidak membuat penugasan ganda.
func (f *OrderFlow) PlaceOrder(customerID, tableID uint, items []OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Field: "items", Message: "order must contain at least one item"}
	}

	var order *models.Order
	err := f.Store.Transact(func(tx storage.Store) error {
		table, err := tx.GetTable(tableID)
		if err != nil {
			return err
		}
		if table == nil {
			return &ValidationError{Field: "table_id", Message: fmt.Sprintf("table %d not found", tableID)}
		}

		if table.Occupied && customerID == 0 {
			tableOrders, err := tx.ListOrdersByTable(tableID)
			if err != nil {
				return err
			}
			for _, o := range tableOrders {
				if o.Active() {
					customerID = o.CustomerID
					break
				}
			}
		}
		if customerID == 0 {
			return &ValidationError{Field: "customer_id", Message: "customer is required"}
		}

		customer, err := tx.GetCustomer(customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return &ValidationError{Field: "customer_id", Message: fmt.Sprintf("customer %d not found", customerID)}
		}

		// Snapshot harga satuan dari menu saat ini.
		type line struct {
			menuItemID uint
			quantity   int
			price      int64
		}
		var (
			lines []line
			total int64
		)
		for _, in := range items {
			if in.Quantity < 1 {
				return &ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
			}
			menuItem, err := tx.GetMenuItem(in.MenuItemID)
			if err != nil {
				return err
			}
			if menuItem == nil {
				return &ValidationError{Field: "menu_item_id", Message: fmt.Sprintf("menu item %d not found", in.MenuItemID)}
			}
			lines = append(lines, line{menuItemID: menuItem.ID, quantity: in.Quantity, price: menuItem.Price})
			total += menuItem.Price * int64(in.Quantity)
		}

		o := &models.Order{
			CustomerID:  customerID,
			TableID:     tableID,
			Status:      models.OrderStatusPending,
			TotalAmount: total,
			CreatedAt:   time.Now().UTC(),
		}
		if err := tx.CreateOrder(o); err != nil {
			return err
		}
		for _, l := range lines {
			item := &models.OrderItem{
				OrderID:    o.ID,
				MenuItemID: l.menuItemID,
				Quantity:   l.quantity,
				Price:      l.price,
			}
			if err := tx.CreateOrderItem(item); err != nil {
				return err
			}
		}

		// Buka kunjungan bila customer belum punya kunjungan aktif di meja ini.
		visits, err := tx.ListVisitsByCustomer(customerID)
		if err != nil {
			return err
		}
		hasActiveVisit := false
		for _, v := range visits {
			if v.Active() && v.TableID == tableID {
				hasActiveVisit = true
				break
			}
		}
		if !hasActiveVisit {
			visit := &models.CustomerVisit{
				CustomerID: customerID,
				TableID:    tableID,
				StartTime:  time.Now().UTC(),
			}
			if err := tx.CreateVisit(visit); err != nil {
				return err
			}
		}

		occupied := true
		patch := models.TablePatch{Occupied: &occupied}
		if table.ArrivalTime == nil {
			now := time.Now().UTC()
			patch.ArrivalTime = &now
		}
		if _, err := tx.UpdateTable(tableID, patch); err != nil {
			return err
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// AdvanceOrder memajukan status order satu langkah pada rantai
// pending -> preparing -> served -> completed. Status selain langkah
// berikutnya ditolak; tidak ada operasi yang memundurkan status.
//
// Saat order mencapai completed dan tidak ada order aktif lain di meja
// yang sama, meja dibebaskan dan kunjungan aktif customer ditutup.
// Order berstatus served tetap dihitung aktif.
//
// Mengembalikan (nil, nil) bila order tidak ditemukan.
func (f *OrderFlow) AdvanceOrder(orderID uint, newStatus string) (*models.Order, error) {
	var updated *models.Order
	err := f.Store.Transact(func(tx storage.Store) error {
		order, err := tx.GetOrder(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return nil
		}

		next, ok := models.NextOrderStatus[order.Status]
		if !ok || newStatus != next {
			return &ValidationError{
				Field:   "status",
				Message: fmt.Sprintf("cannot move order from %s to %s", order.Status, newStatus),
			}
		}

		status := newStatus
		updated, err = tx.UpdateOrder(orderID, models.OrderPatch{Status: &status})
		if err != nil {
			return err
		}

		if newStatus != models.OrderStatusCompleted {
			return nil
		}

		// Order terakhir di meja? Bebaskan meja dan tutup kunjungan.
		tableOrders, err := tx.ListOrdersByTable(order.TableID)
		if err != nil {
			return err
		}
		for _, o := range tableOrders {
			if o.ID != orderID && o.Active() {
				return nil
			}
		}

		occupied := false
		if _, err := tx.UpdateTable(order.TableID, models.TablePatch{Occupied: &occupied}); err != nil {
			return err
		}

		visits, err := tx.ListVisitsByCustomer(order.CustomerID)
		if err != nil {
			return err
		}
		for _, v := range visits {
			if v.Active() && v.TableID == order.TableID {
				if _, err := tx.EndVisit(v.ID, time.Now().UTC()); err != nil {
					return err
				}
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddItem menambahkan satu baris item pada order yang sudah ada dengan
// harga snapshot saat ini dan menyelaraskan ulang total order. Order
// yang sudah completed tidak bisa ditambah lagi.
// Mengembalikan (nil, nil) bila order tidak ditemukan.
func (f *OrderFlow) AddItem(orderID uint, in OrderItemInput) (*models.OrderItem, error) {
	if in.Quantity < 1 {
		return nil, &ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}

	var created *models.OrderItem
	err := f.Store.Transact(func(tx storage.Store) error {
		order, err := tx.GetOrder(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return nil
		}
		if !order.Active() {
			return &ValidationError{
				Field:   "order_id",
				Message: fmt.Sprintf("cannot add items to a %s order", order.Status),
			}
		}

		menuItem, err := tx.GetMenuItem(in.MenuItemID)
		if err != nil {
			return err
		}
		if menuItem == nil {
			return &ValidationError{Field: "menu_item_id", Message: fmt.Sprintf("menu item %d not found", in.MenuItemID)}
		}

		item := &models.OrderItem{
			OrderID:    orderID,
			MenuItemID: menuItem.ID,
			Quantity:   in.Quantity,
			Price:      menuItem.Price,
		}
		if err := tx.CreateOrderItem(item); err != nil {
			return err
		}

		total := order.TotalAmount + menuItem.Price*int64(in.Quantity)
		if _, err := tx.UpdateOrder(orderID, models.OrderPatch{TotalAmount: &total}); err != nil {
			return err
		}

		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// TablesForCustomer mengembalikan meja yang bisa dipakai customer:
// meja kosong, atau meja terisi yang order non-completed-nya milik
// customer itu sendiri.
func (f *OrderFlow) TablesForCustomer(customerID uint) ([]models.Table, error) {
	tables, err := f.Store.ListTables()
	if err != nil {
		return nil, err
	}
	customerOrders, err := f.Store.ListOrdersByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	available := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if !t.Occupied {
			available = append(available, t)
			continue
		}
		for _, o := range customerOrders {
			if o.TableID == t.ID && o.Active() {
				available = append(available, t)
				break
			}
		}
	}
	return available, nil
}
