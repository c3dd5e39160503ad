package models

import "time"

// ThemeConfig is a single-row table keyed by a fixed id. The frontend reads
// it and injects the colors as CSS variables.
type ThemeConfig struct {
	ID              string    `gorm:"size:20;primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	PrimaryColor    string    `gorm:"size:9;not null" json:"primary_color"`
	AccentColor     string    `gorm:"size:9;not null" json:"accent_color"`
	BackgroundColor string    `gorm:"size:9;not null" json:"background_color"`
	CardColor       string    `gorm:"size:9;not null" json:"card_color"`
	TextColor       string    `gorm:"size:9;not null" json:"text_color"`
	MutedColor      string    `gorm:"size:9;not null" json:"muted_color"`
	BorderColor     string    `gorm:"size:9;not null" json:"border_color"`
	SuccessColor    string    `gorm:"size:9;not null" json:"success_color"`
	ErrorColor      string    `gorm:"size:9;not null" json:"error_color"`
	UpdatedAt       time.Time `json:"updated_at"`
}
