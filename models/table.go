package models

import "time"

// Table merepresentasikan satu meja di restoran. Field Occupied dan
// ArrivalTime dikelola oleh alur order, bukan diset bebas oleh caller.
type Table struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Number      int        `gorm:"not null;uniqueIndex" json:"number"`
	Capacity    int        `gorm:"not null" json:"capacity"`
	Occupied    bool       `gorm:"not null" json:"occupied"`
	ArrivalTime *time.Time `json:"arrival_time,omitempty"`
}

type TablePatch struct {
	Number      *int       `json:"number"`
	Capacity    *int       `json:"capacity"`
	Occupied    *bool      `json:"occupied"`
	ArrivalTime *time.Time `json:"arrival_time"`
}

func (p TablePatch) Apply(t *Table) {
	if p.Number != nil {
		t.Number = *p.Number
	}
	if p.Capacity != nil {
		t.Capacity = *p.Capacity
	}
	if p.Occupied != nil {
		t.Occupied = *p.Occupied
	}
	if p.ArrivalTime != nil {
		t.ArrivalTime = p.ArrivalTime
	}
}
