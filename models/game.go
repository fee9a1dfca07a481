package models

import (
	"strings"
	"time"
)

// Game represents a title in the storefront catalog.
// Category is a free-form tag such as "mobile", "pc" or "console".
type Game struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	NameAr        string `gorm:"not null"`
	Description   string `gorm:"type:text"`
	DescriptionAr string `gorm:"type:text"`
	Image         string
	Category      string `gorm:"index:idx_games_category;not null"`
	IsActive      bool   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (g *Game) TableName() string {
	return "games"
}

// Validate checks the invariants a game must hold before it is stored.
func (g *Game) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return validationError("game name is required")
	}
	if strings.TrimSpace(g.Category) == "" {
		return validationError("game category is required")
	}
	return nil
}
