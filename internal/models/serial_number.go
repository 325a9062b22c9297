package models

import "time"

type SerialStatus string

const (
	SerialStatusActive       SerialStatus = "active"
	SerialStatusInactive     SerialStatus = "inactive"
	SerialStatusMaintenance  SerialStatus = "maintenance"
	SerialStatusDiscontinued SerialStatus = "discontinued"
)

// ValidSerialStatus: admin tarafında kullanılan kapalı status kümesi
func ValidSerialStatus(s SerialStatus) bool {
	switch s {
	case SerialStatusActive, SerialStatusInactive, SerialStatusMaintenance, SerialStatusDiscontinued:
		return true
	}
	return false
}

type SerialNumber struct {
	ID               uint         `gorm:"primaryKey"`
	SerialNumber     string       `gorm:"size:100;not null;index"` // unique index (LOWER) migration'da ekleniyor
	ProductName      *string      `gorm:"size:200"`
	Model            *string      `gorm:"size:100"`
	ManufactureDate  *time.Time   `gorm:"type:date"`
	InstallationDate *time.Time   `gorm:"type:date"`
	Location         *string      `gorm:"size:200"`
	Status           SerialStatus `gorm:"size:20;not null;default:active"`
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
