package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ModifierSelectionType string

const (
	ModifierSelectionSingle   ModifierSelectionType = "single"
	ModifierSelectionMultiple ModifierSelectionType = "multiple"
)

// ModifierOption is one priced choice inside a modifier. Options are stored
// as an ordered JSON list on the modifier row.
type ModifierOption struct {
	Name            string  `json:"name"`
	PriceAdjustment float64 `json:"price_adjustment"` // signed delta
}

// Modifier is a named customization axis for a menu item (e.g. Size).
// Referenced by name from bill lines, no foreign key.
type Modifier struct {
	ID            string                `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string                `gorm:"size:100;uniqueIndex;not null" json:"name"`
	SelectionType ModifierSelectionType `gorm:"size:20;not null;default:single" json:"selection_type"`
	Required      bool                  `gorm:"not null;default:false" json:"required"`
	Options       datatypes.JSON        `gorm:"not null" json:"options"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func (m *Modifier) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
