package models

import (
	"context"
	"testing"

	"github.com/gamecharge/storefront/app/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Helpers ---

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func insertGame(t *testing.T, db *gorm.DB, name, category string, active bool) Game {
	t.Helper()
	g := Game{Name: name, NameAr: name, Category: category, IsActive: active}
	require.NoError(t, db.Create(&g).Error)
	return g
}

func insertProduct(t *testing.T, db *gorm.DB, gameID uint, name string, price int64, popular, active bool) Product {
	t.Helper()
	p := Product{
		GameID:    gameID,
		Name:      name,
		NameAr:    name,
		Price:     decimal.NewFromInt(price),
		Currency:  "SAR",
		IsPopular: popular,
		IsActive:  active,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func gameNames(games []Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Name
	}
	return out
}

func productNames[T interface{ Product | ProductWithGame }](products []T) []string {
	out := make([]string, len(products))
	for i, p := range products {
		switch v := any(p).(type) {
		case Product:
			out[i] = v.Name
		case ProductWithGame:
			out[i] = v.Name
		}
	}
	return out
}

var ctx = context.Background()
