package models

import "time"

type Employee struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"index" json:"user_id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Position      string    `gorm:"type:varchar(100);not null" json:"position"`
	HireDate      time.Time `json:"hire_date"`
	Salary        float64   `json:"salary"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	Address       string    `json:"address,omitempty"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
}
