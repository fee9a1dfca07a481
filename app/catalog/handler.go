package catalog

import (
	"context"
	"net/http"

	"github.com/gamecharge/storefront/app/api"
	"github.com/gamecharge/storefront/models"
	"github.com/samber/lo"
)

type GamesResponse struct {
	Total int    `json:"total"`
	Games []Game `json:"games"`
}

type ProductsResponse struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type PopularResponse struct {
	Products []PopularProduct `json:"products"`
}

type HomeResponse struct {
	Games   []Game           `json:"games"`
	Popular []PopularProduct `json:"popular"`
}

type Game struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	NameAr        string `json:"name_ar"`
	Description   string `json:"description"`
	DescriptionAr string `json:"description_ar"`
	Image         string `json:"image"`
	Category      string `json:"category"`
}

type Product struct {
	ID             uint     `json:"id"`
	GameID         uint     `json:"game_id"`
	Name           string   `json:"name"`
	NameAr         string   `json:"name_ar"`
	Description    string   `json:"description"`
	DescriptionAr  string   `json:"description_ar"`
	Price          float64  `json:"price"`
	Currency       string   `json:"currency"`
	OriginalPrice  *float64 `json:"original_price,omitempty"`
	IsPopular      bool     `json:"is_popular"`
	DeliveryTime   string   `json:"delivery_time"`
	DeliveryTimeAr string   `json:"delivery_time_ar"`
}

// PopularProduct is a product with its game; Game is null if the game is gone.
type PopularProduct struct {
	Product
	Game *Game `json:"game"`
}

type Browser interface {
	Games(ctx context.Context, category string) ([]models.Game, error)
	GameProducts(ctx context.Context, gameID string) ([]models.Product, error)
	PopularProducts(ctx context.Context) ([]models.ProductWithGame, error)
	Home(ctx context.Context, category string) (*HomePage, error)
}

type CatalogHandler struct {
	browser Browser
}

func NewCatalogHandler(b Browser) *CatalogHandler {
	return &CatalogHandler{
		browser: b,
	}
}

func (h *CatalogHandler) HandleGetGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.browser.Games(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		api.FailResponse(w, r, err, "failed to get games")
		return
	}

	api.OKResponse(w, GamesResponse{
		Total: len(games),
		Games: lo.Map(games, func(g models.Game, _ int) Game { return ToGame(g) }),
	})
}

func (h *CatalogHandler) HandleGetGameProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.browser.GameProducts(r.Context(), r.PathValue("id"))
	if err != nil {
		api.FailResponse(w, r, err, "failed to get products")
		return
	}

	api.OKResponse(w, ProductsResponse{
		Total:    len(products),
		Products: lo.Map(products, func(p models.Product, _ int) Product { return ToProduct(p) }),
	})
}

func (h *CatalogHandler) HandleGetPopular(w http.ResponseWriter, r *http.Request) {
	products, err := h.browser.PopularProducts(r.Context())
	if err != nil {
		api.FailResponse(w, r, err, "failed to get popular products")
		return
	}

	api.OKResponse(w, PopularResponse{Products: toPopular(products)})
}

func (h *CatalogHandler) HandleGetHome(w http.ResponseWriter, r *http.Request) {
	page, err := h.browser.Home(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		api.FailResponse(w, r, err, "failed to load storefront")
		return
	}

	api.OKResponse(w, HomeResponse{
		Games:   lo.Map(page.Games, func(g models.Game, _ int) Game { return ToGame(g) }),
		Popular: toPopular(page.Popular),
	})
}

func ToGame(g models.Game) Game {
	return Game{
		ID:            g.ID,
		Name:          g.Name,
		NameAr:        g.NameAr,
		Description:   g.Description,
		DescriptionAr: g.DescriptionAr,
		Image:         g.Image,
		Category:      g.Category,
	}
}

func ToProduct(p models.Product) Product {
	out := Product{
		ID:             p.ID,
		GameID:         p.GameID,
		Name:           p.Name,
		NameAr:         p.NameAr,
		Description:    p.Description,
		DescriptionAr:  p.DescriptionAr,
		Price:          p.Price.InexactFloat64(),
		Currency:       p.Currency,
		IsPopular:      p.IsPopular,
		DeliveryTime:   p.DeliveryTime,
		DeliveryTimeAr: p.DeliveryTimeAr,
	}
	if p.OriginalPrice.Valid {
		out.OriginalPrice = lo.ToPtr(p.OriginalPrice.Decimal.InexactFloat64())
	}
	return out
}

func toPopular(products []models.ProductWithGame) []PopularProduct {
	return lo.Map(products, func(p models.ProductWithGame, _ int) PopularProduct {
		out := PopularProduct{Product: ToProduct(p.Product)}
		if p.Game != nil {
			out.Game = lo.ToPtr(ToGame(*p.Game))
		}
		return out
	})
}
