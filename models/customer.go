package models

type Customer struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Phone    string `gorm:"type:varchar(50);not null" json:"phone"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
	Notes    string `gorm:"type:text" json:"notes,omitempty"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}
