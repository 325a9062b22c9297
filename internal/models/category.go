package models

import "time"

type Category struct {
	ID            uint   `gorm:"primaryKey"`
	NameKo        string `gorm:"size:100;not null"`
	NameEn        string `gorm:"size:100;not null"`
	DescriptionKo *string
	DescriptionEn *string
	Icon          *string `gorm:"size:100"`
	IsActive      bool    `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
