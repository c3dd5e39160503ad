package audit

import (
	"encoding/json"

	"cafe-backend/internal/database"
	"cafe-backend/internal/logging"
	"cafe-backend/internal/models"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog appends one audit entry. Failures are logged and swallowed so a
// broken audit trail never blocks the mutation it describes.
func WriteLog(opts LogOptions) {
	// jsonb rejects the empty string, use JSON null instead
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

	if err := database.DB.Create(&entry).Error; err != nil {
		logging.L().WithError(err).WithFields(map[string]interface{}{
			"entity_type": opts.EntityType,
			"entity_id":   opts.EntityID,
		}).Error("failed to write audit log")
	}
}
