package audit

import (
	"encoding/json"
	"log"

	"kurumsal-backend/internal/auth"
	"kurumsal-backend/internal/database"
	"kurumsal-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// PostgreSQL jsonb için boş string yerine "null" JSON string'i kullanmalıyız
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	return database.DB.Create(&entry).Error
}

// WriteSerialLog: serial mutasyon handler'larının ortak audit girişi.
// Audit yazılamaması mutasyonu geri almaz, sadece loglanır.
func WriteSerialLog(c *fiber.Ctx, action models.AuditAction, entityID uint, description string, before, after any) {
	userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
	userName, _ := c.Locals(auth.CtxUserNameKey).(string)

	err := WriteLog(LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "serial_number",
		EntityID:    entityID,
		Action:      action,
		Description: description,
		Before:      before,
		After:       after,
	})
	if err != nil {
		log.Println("Audit log kaydedilemedi:", err)
	}
}
