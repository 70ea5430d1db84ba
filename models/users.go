package models

type UserRole string

const (
	UserRoleAdmin   UserRole = "ADMIN"
	UserRoleManager UserRole = "MANAGER"
	UserRoleStaff   UserRole = "STAFF"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleStaff:
		return true
	}
	return false
}

type User struct {
	ID       string   `gorm:"primaryKey" json:"id"`
	Username string   `gorm:"uniqueIndex;type:varchar(50);not null" json:"username"`
	Email    string   `gorm:"uniqueIndex;type:varchar(255);not null" json:"email"`
	Password string   `gorm:"not null" json:"-"` // bcrypt hash
	Role     UserRole `gorm:"type:varchar(20);not null" json:"role"`
	IsActive bool     `gorm:"not null;default:true" json:"is_active"`
}
