package models

import "time"

// CustomerVisit mencatat satu kunjungan customer pada sebuah meja.
// Kunjungan dianggap aktif selama EndTime masih nil.
type CustomerVisit struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CustomerID uint       `gorm:"not null;index" json:"customer_id"`
	TableID    uint       `gorm:"not null;index" json:"table_id"`
	StartTime  time.Time  `gorm:"not null" json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
}

func (v *CustomerVisit) Active() bool {
	return v.EndTime == nil
}
