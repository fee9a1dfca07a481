package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the only status an order is created with.
const OrderStatusPending = "pending"

// Order is a customer's purchase request for a single product.
// TotalPrice and Currency are copied from the product when the order is created
// and are never recomputed afterwards.
type Order struct {
	ID             uint   `gorm:"primaryKey"`
	ProductID      uint   `gorm:"index;not null"`
	CustomerName   string `gorm:"not null"`
	CustomerPhone  string `gorm:"index:idx_orders_phone;not null"`
	CustomerEmail  *string
	GameUsername   string `gorm:"not null"`
	GameAccountID  *string
	AdditionalInfo *string         `gorm:"type:text"`
	Status         string          `gorm:"index:idx_orders_status;size:32;not null"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency       string          `gorm:"size:8;not null"`
	CreatedAt      time.Time
}

func (o *Order) TableName() string {
	return "orders"
}

// OrderDetails is an order together with its product and that product's game.
// Either may be nil if the reference no longer resolves.
type OrderDetails struct {
	Order
	Product *Product
	Game    *Game
}
