package models

import "time"

type Product struct {
	ID             uint `gorm:"primaryKey"`
	CategoryID     *uint
	Category       *Category
	NameKo         string `gorm:"size:200;not null"`
	NameEn         string `gorm:"size:200;not null"`
	DescriptionKo  *string
	DescriptionEn  *string
	FeaturesKo     []string               `gorm:"serializer:json"`
	FeaturesEn     []string               `gorm:"serializer:json"`
	Specifications map[string]interface{} `gorm:"serializer:json"`
	ImageURL       *string                `gorm:"size:500"`
	IsActive       bool                   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
