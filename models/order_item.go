package models

// OrderItem adalah satu baris item pada sebuah order. Price adalah harga
// satuan yang di-snapshot saat order dibuat, jadi perubahan harga menu
// setelahnya tidak mempengaruhi order lama.
type OrderItem struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	OrderID    uint  `gorm:"not null;index" json:"order_id"`
	MenuItemID uint  `gorm:"not null" json:"menu_item_id"`
	Quantity   int   `gorm:"not null" json:"quantity"`
	Price      int64 `gorm:"not null" json:"price"`
}
