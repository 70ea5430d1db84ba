package models

type TableStatus string

const (
	TableStatusAvailable   TableStatus = "AVAILABLE"
	TableStatusOccupied    TableStatus = "OCCUPIED"
	TableStatusReserved    TableStatus = "RESERVED"
	TableStatusMaintenance TableStatus = "MAINTENANCE"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableStatusAvailable, TableStatusOccupied, TableStatusReserved, TableStatusMaintenance:
		return true
	}
	return false
}

type Table struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	TableNumber int         `gorm:"uniqueIndex;not null" json:"table_number"`
	Capacity    int         `gorm:"not null" json:"capacity"`
	Status      TableStatus `gorm:"type:varchar(20);not null" json:"status"`
	Location    string      `json:"location,omitempty"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
}
