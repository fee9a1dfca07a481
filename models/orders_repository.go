package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		db: db,
	}
}

func (r *OrdersRepository) Create(ctx context.Context, order *Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrdersRepository) Get(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListByPhone returns the orders placed with exactly this phone number,
// newest first. The lookup goes through idx_orders_phone.
func (r *OrdersRepository) ListByPhone(ctx context.Context, phone string) ([]Order, error) {
	var orders []Order
	if err := r.db.WithContext(ctx).
		Where("customer_phone = ?", phone).
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListDetailsByPhone is ListByPhone with each order's product and game attached.
// References that no longer resolve are left nil.
func (r *OrdersRepository) ListDetailsByPhone(ctx context.Context, catalog *CatalogRepository, phone string) ([]OrderDetails, error) {
	orders, err := r.ListByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	out := make([]OrderDetails, len(orders))
	err = fanOut(ctx, len(orders), func(ctx context.Context, i int) error {
		d := OrderDetails{Order: orders[i]}
		product, err := catalog.findProduct(ctx, orders[i].ProductID)
		if err != nil {
			return err
		}
		if product != nil {
			d.Product = product
			if d.Game, err = catalog.findGame(ctx, product.GameID); err != nil {
				return err
			}
		}
		out[i] = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
