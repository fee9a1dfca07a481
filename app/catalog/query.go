package catalog

import (
	"context"
	"strings"

	"github.com/gamecharge/storefront/models"
	"golang.org/x/sync/errgroup"
)

// CategoryAll selects every active game regardless of category.
const CategoryAll = "all"

// Store is the part of the catalog repository the storefront reads from.
type Store interface {
	ListActiveGames(ctx context.Context) ([]models.Game, error)
	ListActiveGamesByCategory(ctx context.Context, category string) ([]models.Game, error)
	ListActiveProductsForGame(ctx context.Context, gameID uint) ([]models.Product, error)
	ListPopularProducts(ctx context.Context, limit int) ([]models.ProductWithGame, error)
}

// HomePage is the landing view: visible games plus the popular strip.
type HomePage struct {
	Games   []models.Game
	Popular []models.ProductWithGame
}

// Query composes catalog reads for the storefront.
type Query struct {
	store Store
}

func NewQuery(s Store) *Query {
	return &Query{store: s}
}

// Games lists active games, narrowed to category unless it is empty or "all".
func (q *Query) Games(ctx context.Context, category string) ([]models.Game, error) {
	category = strings.TrimSpace(category)
	if category == "" || category == CategoryAll {
		return q.store.ListActiveGames(ctx)
	}
	return q.store.ListActiveGamesByCategory(ctx, category)
}

// GameProducts lists the active products of a game. A malformed id is
// rejected with models.ErrInvalidID; an unknown one yields no products.
func (q *Query) GameProducts(ctx context.Context, gameID string) ([]models.Product, error) {
	id, err := models.ParseID(gameID)
	if err != nil {
		return nil, err
	}
	return q.store.ListActiveProductsForGame(ctx, id)
}

// PopularProducts returns up to models.PopularProductsLimit popular products
// joined with their games.
func (q *Query) PopularProducts(ctx context.Context) ([]models.ProductWithGame, error) {
	return q.store.ListPopularProducts(ctx, models.PopularProductsLimit)
}

// Home loads the games and the popular products concurrently.
func (q *Query) Home(ctx context.Context, category string) (*HomePage, error) {
	var page HomePage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Games, err = q.Games(gctx, category)
		return err
	})
	g.Go(func() (err error) {
		page.Popular, err = q.PopularProducts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}
