package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-manager/models"
	"restaurant-manager/services"
	"restaurant-manager/storage"
)

type fixture struct {
	store *storage.MemStore
	flow  *services.OrderFlow
	cake  models.MenuItem
	table models.Table
	john  models.Customer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storage.NewMemStore()
	f := &fixture{
		store: store,
		flow:  services.NewOrderFlow(store),
		cake:  models.MenuItem{Name: "Cake", Description: "Sample", Price: 1000, Category: "Dessert", Available: true},
		table: models.Table{Number: 1, Capacity: 4},
		john:  models.Customer{Name: "John", Email: "john@example.com", Phone: "555-1234"},
	}
	require.NoError(t, store.CreateMenuItem(&f.cake))
	require.NoError(t, store.CreateTable(&f.table))
	require.NoError(t, store.CreateCustomer(&f.john))
	return f
}

func (f *fixture) activeVisits(t *testing.T, customerID, tableID uint) []models.CustomerVisit {
	t.Helper()
	visits, err := f.store.ListVisitsByCustomer(customerID)
	require.NoError(t, err)
	var active []models.CustomerVisit
	for _, v := range visits {
		if v.Active() && v.TableID == tableID {
			active = append(active, v)
		}
	}
	return active
}

func TestPlaceOrderComputesTotalAndSideEffects(t *testing.T) {
	f := newFixture(t)

	order, err := f.flow.PlaceOrder(f.john.ID, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, int64(2000), order.TotalAmount)

	items, err := f.store.ListOrderItems(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1000), items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)

	table, err := f.store.GetTable(f.table.ID)
	require.NoError(t, err)
	assert.True(t, table.Occupied)
	assert.NotNil(t, table.ArrivalTime)

	assert.Len(t, f.activeVisits(t, f.john.ID, f.table.ID), 1)
}

func TestPlaceOrderRejectsEmptyItems(t *testing.T) {
	f := newFixture(t)

	_, err := f.flow.PlaceOrder(f.john.ID, f.table.ID, nil)
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "items", verr.Field)
}

func TestPlaceOrderUnknownMenuItemLeavesNothingBehind(t *testing.T) {
	f := newFixture(t)

	_, err := f.flow.PlaceOrder(f.john.ID, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 1},
		{MenuItemID: 999, Quantity: 1},
	})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)

	orders, err := f.store.ListOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)

	table, err := f.store.GetTable(f.table.ID)
	require.NoError(t, err)
	assert.False(t, table.Occupied)
}

func TestPlaceOrderInfersCustomerOnOccupiedTable(t *testing.T) {
	f := newFixture(t)

	first, err := f.flow.PlaceOrder(f.john.ID, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 1},
	})
	require.NoError(t, err)

	// Tanpa customer eksplisit pada meja terisi: ikut order aktif.
	second, err := f.flow.PlaceOrder(0, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, first.CustomerID, second.CustomerID)

	// Kunjungan aktif tidak digandakan.
	assert.Len(t, f.activeVisits(t, f.john.ID, f.table.ID), 1)
}

func TestAdvanceOrderForwardOnly(t *testing.T) {
	f := newFixture(t)

	order, err := f.flow.PlaceOrder(f.john.ID, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 1},
	})
	require.NoError(t, err)

	var verr *services.ValidationError

	// Lompat dua langkah ditolak.
	_, err = f.flow.AdvanceOrder(order.ID, models.OrderStatusServed)
	require.ErrorAs(t, err, &verr)

	// Status yang sama ditolak.
	_, err = f.flow.AdvanceOrder(order.ID, models.OrderStatusPending)
	require.ErrorAs(t, err, &verr)

	for _, status := range []string{
		models.OrderStatusPreparing,
		models.OrderStatusServed,
		models.OrderStatusCompleted,
	} {
		updated, err := f.flow.AdvanceOrder(order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	// Mundur dari completed tidak pernah bisa.
	_, err = f.flow.AdvanceOrder(order.ID, models.OrderStatusServed)
	require.ErrorAs(t, err, &verr)

	// Order tak dikenal: (nil, nil), bukan error.
	missing, err := f.flow.AdvanceOrder(999, models.OrderStatusPreparing)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCompletingLastOrderFreesTableAndClosesVisit(t *testing.T) {
	f := newFixture(t)

	order, err := f.flow.PlaceOrder(f.john.ID, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 2},
	})
	require.NoError(t, err)

	for _, status := range []string{
		models.OrderStatusPreparing,
		models.OrderStatusServed,
		models.OrderStatusCompleted,
	} {
		_, err = f.flow.AdvanceOrder(order.ID, status)
		require.NoError(t, err)
	}

	table, err := f.store.GetTable(f.table.ID)
	require.NoError(t, err)
	assert.False(t, table.Occupied)
	assert.Empty(t, f.activeVisits(t, f.john.ID, f.table.ID))
}

func TestCompletingNonLastOrderKeepsTableAndVisit(t *testing.T) {
	f := newFixture(t)

	first, err := f.flow.PlaceOrder(f.john.ID, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 1},
	})
	require.NoError(t, err)
	_, err = f.flow.PlaceOrder(f.john.ID, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 1},
	})
	require.NoError(t, err)

	for _, status := range []string{
		models.OrderStatusPreparing,
		models.OrderStatusServed,
		models.OrderStatusCompleted,
	} {
		_, err = f.flow.AdvanceOrder(first.ID, status)
		require.NoError(t, err)
	}

	// Order kedua masih aktif: meja tetap terisi, kunjungan tetap buka.
	table, err := f.store.GetTable(f.table.ID)
	require.NoError(t, err)
	assert.True(t, table.Occupied)
	assert.Len(t, f.activeVisits(t, f.john.ID, f.table.ID), 1)
}

func TestTablesForCustomer(t *testing.T) {
	f := newFixture(t)

	free := models.Table{Number: 2, Capacity: 2}
	require.NoError(t, f.store.CreateTable(&free))

	jane := models.Customer{Name: "Jane", Email: "jane@example.com", Phone: "555-5678"}
	require.NoError(t, f.store.CreateCustomer(&jane))

	_, err := f.flow.PlaceOrder(f.john.ID, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 1},
	})
	require.NoError(t, err)

	// John boleh terus memakai mejanya sendiri plus meja kosong.
	johnTables, err := f.flow.TablesForCustomer(f.john.ID)
	require.NoError(t, err)
	require.Len(t, johnTables, 2)

	// Jane hanya melihat meja kosong.
	janeTables, err := f.flow.TablesForCustomer(jane.ID)
	require.NoError(t, err)
	require.Len(t, janeTables, 1)
	assert.Equal(t, free.ID, janeTables[0].ID)
}

func TestAddItemSyncsTotal(t *testing.T) {
	f := newFixture(t)

	order, err := f.flow.PlaceOrder(f.john.ID, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 1},
	})
	require.NoError(t, err)

	item, err := f.flow.AddItem(order.ID, services.OrderItemInput{MenuItemID: f.cake.ID, Quantity: 3})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, int64(1000), item.Price)

	updated, err := f.store.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), updated.TotalAmount)

	missing, err := f.flow.AddItem(999, services.OrderItemInput{MenuItemID: f.cake.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAddItemRejectedOnCompletedOrder(t *testing.T) {
	f := newFixture(t)

	order, err := f.flow.PlaceOrder(f.john.ID, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 1},
	})
	require.NoError(t, err)

	for _, status := range []string{
		models.OrderStatusPreparing,
		models.OrderStatusServed,
		models.OrderStatusCompleted,
	} {
		_, err = f.flow.AdvanceOrder(order.ID, status)
		require.NoError(t, err)
	}

	_, err = f.flow.AddItem(order.ID, services.OrderItemInput{MenuItemID: f.cake.ID, Quantity: 1})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "order_id", verr.Field)

	// Total dan baris item order selesai tidak berubah.
	got, err := f.store.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.TotalAmount)

	items, err := f.store.ListOrderItems(order.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDeletingMenuItemKeepsSnapshotPrice(t *testing.T) {
	f := newFixture(t)

	order, err := f.flow.PlaceOrder(f.john.ID, f.table.ID, []services.OrderItemInput{
		{MenuItemID: f.cake.ID, Quantity: 2},
	})
	require.NoError(t, err)

	deleted, err := f.store.DeleteMenuItem(f.cake.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	items, err := f.store.ListOrderItems(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1000), items[0].Price)

	got, err := f.store.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), got.TotalAmount)
}
