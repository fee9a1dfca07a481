package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActiveGames(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)

	insertGame(t, db, "PUBG Mobile", "mobile", true)
	insertGame(t, db, "Old Game", "pc", false)
	insertGame(t, db, "Fortnite", "pc", true)
	insertGame(t, db, "FIFA 24", "console", true)

	games, err := repo.ListActiveGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"PUBG Mobile", "Fortnite", "FIFA 24"}, gameNames(games), "inactive games hidden, insertion order kept")
}

func TestListActiveGames_Empty(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))

	games, err := repo.ListActiveGames(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestListActiveGamesByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)

	insertGame(t, db, "PUBG Mobile", "mobile", true)
	insertGame(t, db, "Free Fire", "mobile", true)
	insertGame(t, db, "Retired Mobile", "mobile", false)
	insertGame(t, db, "Valorant", "pc", true)

	testCases := []struct {
		name     string
		category string
		expected []string
	}{
		{name: "mobile", category: "mobile", expected: []string{"PUBG Mobile", "Free Fire"}},
		{name: "pc", category: "pc", expected: []string{"Valorant"}},
		{name: "unknown category", category: "vr", expected: []string{}},
		{name: "match is exact", category: "Mobile", expected: []string{}},
	}

	all, err := repo.ListActiveGames(ctx)
	require.NoError(t, err)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			games, err := repo.ListActiveGamesByCategory(ctx, tc.category)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, gameNames(games))
			for _, g := range games {
				assert.Contains(t, gameNames(all), g.Name, "category result must be a subset of active games")
				assert.Equal(t, tc.category, g.Category)
			}
		})
	}
}

func TestListActiveProductsForGame(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)

	pubg := insertGame(t, db, "PUBG Mobile", "mobile", true)
	ff := insertGame(t, db, "Free Fire", "mobile", true)
	insertProduct(t, db, pubg.ID, "60 UC", 5, false, true)
	insertProduct(t, db, pubg.ID, "Hidden UC", 7, false, false)
	insertProduct(t, db, ff.ID, "100 Diamonds", 8, false, true)
	insertProduct(t, db, pubg.ID, "325 UC", 25, true, true)

	t.Run("only active products of the game", func(t *testing.T) {
		products, err := repo.ListActiveProductsForGame(ctx, pubg.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"60 UC", "325 UC"}, productNames(products))
		for _, p := range products {
			assert.Equal(t, pubg.ID, p.GameID)
			assert.True(t, p.IsActive)
		}
	})

	t.Run("well formed but unknown id", func(t *testing.T) {
		products, err := repo.ListActiveProductsForGame(ctx, 9999)
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestListPopularProducts(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)

	pubg := insertGame(t, db, "PUBG Mobile", "mobile", true)
	ff := insertGame(t, db, "Free Fire", "mobile", true)
	for i, name := range []string{"P1", "P2", "P3", "P4"} {
		insertProduct(t, db, pubg.ID, name, int64(10+i), true, true)
	}
	insertProduct(t, db, pubg.ID, "Not popular", 5, false, true)
	insertProduct(t, db, ff.ID, "Popular but inactive", 5, true, false)
	for i, name := range []string{"F1", "F2", "F3"} {
		insertProduct(t, db, ff.ID, name, int64(20+i), true, true)
	}

	t.Run("takes the first matches in storage order", func(t *testing.T) {
		products, err := repo.ListPopularProducts(ctx, PopularProductsLimit)
		require.NoError(t, err)
		require.Len(t, products, 6)
		assert.Equal(t, []string{"P1", "P2", "P3", "P4", "F1", "F2"}, productNames(products))
		for _, p := range products {
			assert.True(t, p.IsPopular)
			assert.True(t, p.IsActive)
			require.NotNil(t, p.Game)
			assert.Equal(t, p.GameID, p.Game.ID, "each product paired with its own game")
		}
	})

	t.Run("fewer matches than limit", func(t *testing.T) {
		products, err := repo.ListPopularProducts(ctx, 100)
		require.NoError(t, err)
		assert.Len(t, products, 7)
	})

	t.Run("non-positive limit selects nothing", func(t *testing.T) {
		for _, limit := range []int{0, -1} {
			products, err := repo.ListPopularProducts(ctx, limit)
			require.NoError(t, err)
			assert.NotNil(t, products)
			assert.Empty(t, products, "limit %d", limit)
		}
	})

	t.Run("vanished game degrades to nil", func(t *testing.T) {
		require.NoError(t, db.Delete(&Game{}, ff.ID).Error)

		products, err := repo.ListPopularProducts(ctx, PopularProductsLimit)
		require.NoError(t, err)
		require.Len(t, products, 6)
		for _, p := range products[:4] {
			assert.NotNil(t, p.Game)
		}
		assert.Nil(t, products[4].Game)
		assert.Nil(t, products[5].Game)
	})
}

func TestGetProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	game := insertGame(t, db, "Valorant", "pc", true)
	p := insertProduct(t, db, game.ID, "1000 VP", 45, true, true)

	got, err := repo.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "1000 VP", got.Name)
	assert.True(t, decimal.NewFromInt(45).Equal(got.Price))

	_, err = repo.GetProduct(ctx, p.ID+100)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetGame(ctx, game.ID+100)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestCreateGameAndProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)

	game := &Game{Name: "Call of Duty", NameAr: "كول أوف ديوتي", Category: "console", IsActive: true}
	require.NoError(t, repo.CreateGame(ctx, game))
	assert.NotZero(t, game.ID)

	err := repo.CreateGame(ctx, &Game{Name: "No category"})
	assert.ErrorIs(t, err, ErrValidation)

	product := &Product{
		GameID:        game.ID,
		Name:          "1000 COD Points",
		Price:         decimal.NewFromInt(45),
		Currency:      "SAR",
		OriginalPrice: decimal.NewNullDecimal(decimal.NewFromInt(50)),
		IsActive:      true,
	}
	require.NoError(t, repo.CreateProduct(ctx, product))

	got, err := repo.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.True(t, got.OriginalPrice.Valid)
	assert.True(t, decimal.NewFromInt(50).Equal(got.OriginalPrice.Decimal))

	err = repo.CreateProduct(ctx, &Product{GameID: game.ID + 10, Name: "Orphan", Currency: "SAR"})
	assert.ErrorIs(t, err, ErrGameNotFound)

	var count int64
	require.NoError(t, db.Model(&Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "rejected inserts must not write")
}

func TestUpdateProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	game := insertGame(t, db, "Fortnite", "pc", true)
	p := insertProduct(t, db, game.ID, "1000 V-Bucks", 40, false, true)

	price := decimal.NewFromInt(35)
	popular := true
	updated, err := repo.UpdateProduct(ctx, p.ID, ProductUpdate{Price: &price, IsPopular: &popular})
	require.NoError(t, err)
	assert.True(t, price.Equal(updated.Price))
	assert.True(t, updated.IsPopular)

	original := decimal.NewNullDecimal(decimal.NewFromInt(30))
	_, err = repo.UpdateProduct(ctx, p.ID, ProductUpdate{OriginalPrice: &original})
	assert.ErrorIs(t, err, ErrValidation, "original price below price is rejected")

	stored, err := repo.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, stored.OriginalPrice.Valid)

	_, err = repo.UpdateProduct(ctx, 999, ProductUpdate{Price: &price})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSetGameActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	game := insertGame(t, db, "Free Fire", "mobile", true)

	_, err := repo.SetGameActive(ctx, game.ID, false)
	require.NoError(t, err)

	games, err := repo.ListActiveGames(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)

	n, err := repo.CountGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "deactivation never deletes")
}

func TestProductValidate(t *testing.T) {
	base := func() Product {
		return Product{GameID: 1, Name: "60 UC", Price: decimal.NewFromInt(5), Currency: "SAR"}
	}

	testCases := []struct {
		name    string
		mutate  func(p *Product)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *Product) {}},
		{name: "zero price is allowed", mutate: func(p *Product) { p.Price = decimal.Zero }},
		{name: "negative price", mutate: func(p *Product) { p.Price = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "missing currency", mutate: func(p *Product) { p.Currency = " " }, wantErr: true},
		{name: "missing game", mutate: func(p *Product) { p.GameID = 0 }, wantErr: true},
		{name: "missing name", mutate: func(p *Product) { p.Name = "" }, wantErr: true},
		{name: "original equal to price", mutate: func(p *Product) {
			p.OriginalPrice = decimal.NewNullDecimal(decimal.NewFromInt(5))
		}},
		{name: "original below price", mutate: func(p *Product) {
			p.OriginalPrice = decimal.NewNullDecimal(decimal.NewFromInt(4))
		}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := base()
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrValidation), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		in      string
		want    uint
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: " 42 ", want: 42},
		{in: "0", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "k57a9c2", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			id, err := ParseID(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}
