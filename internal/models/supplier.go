package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Supplier struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	ContactName string    `gorm:"size:100" json:"contact_name"`
	Email       string    `gorm:"size:100" json:"email"`
	Phone       string    `gorm:"size:30" json:"phone"`
	Address     string    `gorm:"size:255" json:"address"`
	Notes       string    `gorm:"size:500" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
