package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusServed    = "served"
	OrderStatusCompleted = "completed"
)

// NextOrderStatus memetakan status ke langkah berikutnya pada rantai
// pending -> preparing -> served -> completed. Status hanya bisa maju
// satu langkah; completed tidak punya lanjutan.
var NextOrderStatus = map[string]string{
	OrderStatusPending:   OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusServed,
	OrderStatusServed:    OrderStatusCompleted,
}

type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	TableID     uint      `gorm:"not null;index" json:"table_id"`
	Status      string    `gorm:"type:varchar(20);not null" json:"status"`
	TotalAmount int64     `gorm:"not null" json:"total_amount"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// Active melaporkan apakah order masih berjalan. Semua status selain
// completed (termasuk served) dihitung masih aktif.
func (o *Order) Active() bool {
	return o.Status != OrderStatusCompleted
}

type OrderPatch struct {
	Status      *string `json:"status"`
	TotalAmount *int64  `json:"total_amount"`
}

func (p OrderPatch) Apply(o *Order) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.TotalAmount != nil {
		o.TotalAmount = *p.TotalAmount
	}
}
