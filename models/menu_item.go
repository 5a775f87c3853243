package models

// MenuItem merepresentasikan satu item pada katalog menu.
// Harga disimpan dalam satuan minor (sen) untuk menghindari pembulatan float.
type MenuItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Category    string `gorm:"type:varchar(100);not null" json:"category"`
	Available   bool   `gorm:"not null" json:"available"`
}

// MenuItemPatch berisi field yang boleh diubah lewat partial update.
// Field nil tidak disentuh.
type MenuItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	Available   *bool   `json:"available"`
}

func (p MenuItemPatch) Apply(m *MenuItem) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Available != nil {
		m.Available = *p.Available
	}
}
