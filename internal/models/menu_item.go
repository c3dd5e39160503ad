package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:50;index;not null" json:"category"`
	Description string  `gorm:"size:500" json:"description"`
	ImageURL    string  `gorm:"size:500" json:"image_url"`
	// Available gates visibility in ordering, not deletion.
	Available bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
