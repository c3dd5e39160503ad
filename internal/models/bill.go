package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AppliedModifier is a modifier choice frozen onto a bill line.
type AppliedModifier struct {
	ModifierName    string  `json:"modifier_name"`
	OptionName      string  `json:"option_name"`
	PriceAdjustment float64 `json:"price_adjustment"`
}

// BillItem snapshots one order line. UnitPrice is the menu price at add-time;
// later menu edits must not change an already generated bill.
type BillItem struct {
	ID         uint           `gorm:"primaryKey" json:"-"`
	BillID     string         `gorm:"type:uuid;index;not null" json:"-"`
	MenuItemID string         `gorm:"type:uuid;not null" json:"menu_item_id"`
	Name       string         `gorm:"size:100;not null" json:"name"`
	UnitPrice  float64        `gorm:"not null" json:"price"`
	Quantity   int            `gorm:"not null" json:"quantity"`
	Modifiers  datatypes.JSON `json:"modifiers"`
}

// Bill is immutable once generated. The derived money fields are computed
// once at creation and persisted verbatim, never recomputed on read.
type Bill struct {
	ID              string     `gorm:"type:uuid;primaryKey" json:"id"`
	BillNumber      int64      `gorm:"uniqueIndex;not null" json:"bill_number"`
	Items           []BillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        float64    `gorm:"not null" json:"subtotal"`
	DiscountPercent float64    `gorm:"not null" json:"discount_percent"`
	DiscountAmount  float64    `gorm:"not null" json:"discount_amount"`
	TaxPercent      float64    `gorm:"not null" json:"tax_percent"`
	TaxAmount       float64    `gorm:"not null" json:"tax_amount"`
	Total           float64    `gorm:"not null" json:"total"`
	Currency        string     `gorm:"size:3;not null" json:"currency"`
	CustomerName    string     `gorm:"size:100" json:"customer_name"`
	TableNumber     string     `gorm:"size:20" json:"table_number"`
	NIF             string     `gorm:"size:20;column:nif" json:"nif"` // Portuguese taxpayer number, free text
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BillCounter is the single-row sequence behind bill numbers. It is bumped
// with one atomic upsert so concurrent terminals never collide.
type BillCounter struct {
	ID    uint  `gorm:"primaryKey"`
	Value int64 `gorm:"not null"`
}
