package models

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

// ProductUpdate carries the mutable fields of a product. Nil fields are left unchanged.
type ProductUpdate struct {
	Price         *decimal.Decimal
	OriginalPrice *decimal.NullDecimal
	IsPopular     *bool
	IsActive      *bool
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

// ListActiveGames returns every active game in insertion order.
func (r *CatalogRepository) ListActiveGames(ctx context.Context) ([]Game, error) {
	var games []Game
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// ListActiveGamesByCategory filters active games on an exact category match.
// The lookup goes through idx_games_category.
func (r *CatalogRepository) ListActiveGamesByCategory(ctx context.Context, category string) ([]Game, error) {
	var games []Game
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Where("is_active = ?", true).
		Order("id").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// ListActiveProductsForGame returns the active products referencing gameID.
// An id that matches no game yields an empty list.
func (r *CatalogRepository) ListActiveProductsForGame(ctx context.Context, gameID uint) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Where("is_active = ?", true).
		Order("id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListPopularProducts takes the first limit popular, active products in storage
// order and pairs each with its game. This is a selection policy, not a ranking:
// there is no score, recency or tie-break involved. A limit below one selects nothing.
func (r *CatalogRepository) ListPopularProducts(ctx context.Context, limit int) ([]ProductWithGame, error) {
	if limit <= 0 {
		return []ProductWithGame{}, nil
	}

	var products []Product
	if err := r.db.WithContext(ctx).
		Where("is_popular = ?", true).
		Where("is_active = ?", true).
		Order("id").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}

	out := make([]ProductWithGame, len(products))
	err := fanOut(ctx, len(products), func(ctx context.Context, i int) error {
		game, err := r.findGame(ctx, products[i].GameID)
		if err != nil {
			return err
		}
		out[i] = ProductWithGame{Product: products[i], Game: game}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) GetGame(ctx context.Context, id uint) (*Game, error) {
	var game Game
	if err := r.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *CatalogRepository) GetProduct(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// findGame is GetGame for enrichment: a vanished game is nil, not an error.
func (r *CatalogRepository) findGame(ctx context.Context, id uint) (*Game, error) {
	game, err := r.GetGame(ctx, id)
	if errors.Is(err, ErrGameNotFound) {
		return nil, nil
	}
	return game, err
}

// findProduct is GetProduct for enrichment: a vanished product is nil, not an error.
func (r *CatalogRepository) findProduct(ctx context.Context, id uint) (*Product, error) {
	product, err := r.GetProduct(ctx, id)
	if errors.Is(err, ErrProductNotFound) {
		return nil, nil
	}
	return product, err
}

func (r *CatalogRepository) CountGames(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Game{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *CatalogRepository) CreateGame(ctx context.Context, game *Game) error {
	if err := game.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(game).Error
}

// CreateProduct inserts a product after checking its pricing invariants and
// that the referenced game exists.
func (r *CatalogRepository) CreateProduct(ctx context.Context, product *Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	if _, err := r.GetGame(ctx, product.GameID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(product).Error
}

// UpdateProduct applies u to the product and saves it. Orders already placed
// against the product keep their own price snapshot.
func (r *CatalogRepository) UpdateProduct(ctx context.Context, id uint, u ProductUpdate) (*Product, error) {
	product, err := r.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Price != nil {
		product.Price = *u.Price
	}
	if u.OriginalPrice != nil {
		product.OriginalPrice = *u.OriginalPrice
	}
	if u.IsPopular != nil {
		product.IsPopular = *u.IsPopular
	}
	if u.IsActive != nil {
		product.IsActive = *u.IsActive
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// SetGameActive flips the visibility of a game. Games are never deleted.
func (r *CatalogRepository) SetGameActive(ctx context.Context, id uint, active bool) (*Game, error) {
	game, err := r.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	game.IsActive = active
	if err := r.db.WithContext(ctx).Save(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}
