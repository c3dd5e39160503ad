package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem tracks stock for one menu item. Mutated only through stock
// transactions, never in place.
type InventoryItem struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	MenuItemID    string    `gorm:"type:uuid;uniqueIndex;not null" json:"menu_item_id"`
	MenuItem      *MenuItem `gorm:"foreignKey:MenuItemID" json:"-"`
	CurrentStock  float64   `gorm:"not null;default:0" json:"current_stock"`
	MinStockLevel float64   `gorm:"not null;default:0" json:"min_stock_level"`
	MaxStockLevel float64   `gorm:"not null;default:0" json:"max_stock_level"`
	CostPrice     float64   `gorm:"not null;default:0" json:"cost_price"`
	SupplierID    *string   `gorm:"type:uuid" json:"supplier_id"`
	Unit          string    `gorm:"size:20;not null;default:units" json:"unit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

type StockTransactionType string

const (
	StockRestock    StockTransactionType = "restock"
	StockWaste      StockTransactionType = "waste"
	StockAdjustment StockTransactionType = "adjustment"
)

// StockTransaction is one append-only ledger entry. PreviousStock and
// NewStock are persisted for audit and never recomputed retroactively.
type StockTransaction struct {
	ID            uint                 `gorm:"primaryKey" json:"id"`
	InventoryID   string               `gorm:"type:uuid;index;not null" json:"inventory_id"`
	Type          StockTransactionType `gorm:"size:20;not null" json:"transaction_type"`
	Quantity      float64              `gorm:"not null" json:"quantity"`
	PreviousStock float64              `gorm:"not null" json:"previous_stock"`
	NewStock      float64              `gorm:"not null" json:"new_stock"`
	Notes         string               `gorm:"size:500" json:"notes"`
	CreatedBy     string               `gorm:"size:100" json:"created_by"`
	CreatedAt     time.Time            `gorm:"index" json:"created_at"`
}
