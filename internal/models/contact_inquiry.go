package models

import "time"

type InquiryStatus string

const (
	InquiryStatusNew     InquiryStatus = "new"
	InquiryStatusReplied InquiryStatus = "replied"
)

// ContactInquiry: iletişim formundan gelen müşteri talepleri.
// Form gönderim hattı dışarıda, burada sadece admin tarafı yönetiliyor.
type ContactInquiry struct {
	ID        uint          `gorm:"primaryKey"`
	Name      string        `gorm:"size:100;not null"`
	Email     string        `gorm:"size:100;not null"`
	Company   *string       `gorm:"size:200"`
	Message   string        `gorm:"not null"`
	Status    InquiryStatus `gorm:"size:20;not null;default:new"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
