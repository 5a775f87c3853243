package models

import "time"

type Employee struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Email    string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone    string    `gorm:"type:varchar(50);not null" json:"phone"`
	Role     string    `gorm:"type:varchar(100);not null" json:"role"`
	HireDate time.Time `gorm:"not null" json:"hire_date"`
	Active   bool      `gorm:"not null" json:"active"`
}
