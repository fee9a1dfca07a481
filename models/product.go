package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PopularProductsLimit is how many popular products the storefront shows.
// Selection takes the first matches in storage order; there is no ranking.
const PopularProductsLimit = 6

// Product represents a purchasable top-up for a game.
// GameID is a plain reference: the game may disappear without the product being touched.
type Product struct {
	ID             uint                `gorm:"primaryKey"`
	GameID         uint                `gorm:"index:idx_products_game;not null"`
	Name           string              `gorm:"not null"`
	NameAr         string              `gorm:"not null"`
	Description    string              `gorm:"type:text"`
	DescriptionAr  string              `gorm:"type:text"`
	Price          decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	Currency       string              `gorm:"size:8;not null"`
	OriginalPrice  decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	IsPopular      bool                `gorm:"index:idx_products_popular;not null"`
	IsActive       bool                `gorm:"not null"`
	DeliveryTime   string
	DeliveryTimeAr string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p *Product) TableName() string {
	return "products"
}

// Validate checks the pricing invariants of a product.
func (p *Product) Validate() error {
	if p.GameID == 0 {
		return validationError("product must reference a game")
	}
	if strings.TrimSpace(p.Name) == "" {
		return validationError("product name is required")
	}
	if p.Price.IsNegative() {
		return validationError("price must not be negative")
	}
	if strings.TrimSpace(p.Currency) == "" {
		return validationError("currency is required")
	}
	if p.OriginalPrice.Valid && p.OriginalPrice.Decimal.LessThan(p.Price) {
		return validationError("original price %s is below price %s", p.OriginalPrice.Decimal, p.Price)
	}
	return nil
}

// ProductWithGame pairs a product with the game it belongs to.
// Game is nil when the referenced game no longer exists.
type ProductWithGame struct {
	Product
	Game *Game
}
