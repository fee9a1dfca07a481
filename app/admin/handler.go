package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gamecharge/storefront/app/api"
	"github.com/gamecharge/storefront/app/catalog"
	"github.com/gamecharge/storefront/app/seed"
	"github.com/gamecharge/storefront/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type CatalogWriter interface {
	CreateGame(ctx context.Context, game *models.Game) error
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id uint, u models.ProductUpdate) (*models.Product, error)
	SetGameActive(ctx context.Context, id uint, active bool) (*models.Game, error)
}

type Seeder interface {
	SeedIfEmpty(ctx context.Context) (seed.Result, error)
}

type SeedResponse struct {
	Seeded   bool   `json:"seeded"`
	Games    int    `json:"games"`
	Products int    `json:"products"`
	Message  string `json:"message"`
}

// AdminHandler serves catalog maintenance. Callers are expected to be
// authenticated before reaching it.
type AdminHandler struct {
	repo   CatalogWriter
	seeder Seeder
}

func NewAdminHandler(r CatalogWriter, s Seeder) *AdminHandler {
	return &AdminHandler{repo: r, seeder: s}
}

func (h *AdminHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	res, err := h.seeder.SeedIfEmpty(r.Context())
	if err != nil {
		api.FailResponse(w, r, err, "Failed to seed catalog")
		return
	}
	api.OKResponse(w, SeedResponse{
		Seeded:   res.Seeded,
		Games:    res.Games,
		Products: res.Products,
		Message:  res.String(),
	})
}

func (h *AdminHandler) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name          string `json:"name"`
		NameAr        string `json:"name_ar"`
		Description   string `json:"description"`
		DescriptionAr string `json:"description_ar"`
		Image         string `json:"image"`
		Category      string `json:"category"`
		IsActive      *bool  `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	game := &models.Game{
		Name:          input.Name,
		NameAr:        input.NameAr,
		Description:   input.Description,
		DescriptionAr: input.DescriptionAr,
		Image:         input.Image,
		Category:      input.Category,
		IsActive:      lo.FromPtrOr(input.IsActive, true),
	}

	if err := h.repo.CreateGame(r.Context(), game); err != nil {
		api.FailResponse(w, r, err, "Failed to create game")
		return
	}

	api.CreatedResponse(w, catalog.ToGame(*game))
}

func (h *AdminHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var input struct {
		GameID         uint             `json:"game_id"`
		Name           string           `json:"name"`
		NameAr         string           `json:"name_ar"`
		Description    string           `json:"description"`
		DescriptionAr  string           `json:"description_ar"`
		Price          decimal.Decimal  `json:"price"`
		Currency       string           `json:"currency"`
		OriginalPrice  *decimal.Decimal `json:"original_price"`
		IsPopular      bool             `json:"is_popular"`
		IsActive       *bool            `json:"is_active"`
		DeliveryTime   string           `json:"delivery_time"`
		DeliveryTimeAr string           `json:"delivery_time_ar"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	product := &models.Product{
		GameID:         input.GameID,
		Name:           input.Name,
		NameAr:         input.NameAr,
		Description:    input.Description,
		DescriptionAr:  input.DescriptionAr,
		Price:          input.Price,
		Currency:       input.Currency,
		IsPopular:      input.IsPopular,
		IsActive:       lo.FromPtrOr(input.IsActive, true),
		DeliveryTime:   input.DeliveryTime,
		DeliveryTimeAr: input.DeliveryTimeAr,
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = decimal.NewNullDecimal(*input.OriginalPrice)
	}

	if err := h.repo.CreateProduct(r.Context(), product); err != nil {
		api.FailResponse(w, r, err, "Failed to create product")
		return
	}

	api.CreatedResponse(w, catalog.ToProduct(*product))
}

func (h *AdminHandler) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(r.PathValue("id"))
	if err != nil {
		api.FailResponse(w, r, err, "Failed to update product")
		return
	}

	var input struct {
		Price         *decimal.Decimal `json:"price"`
		OriginalPrice *decimal.Decimal `json:"original_price"`
		ClearOriginal bool             `json:"clear_original_price"`
		IsPopular     *bool            `json:"is_popular"`
		IsActive      *bool            `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	update := models.ProductUpdate{
		Price:     input.Price,
		IsPopular: input.IsPopular,
		IsActive:  input.IsActive,
	}
	switch {
	case input.ClearOriginal:
		update.OriginalPrice = &decimal.NullDecimal{}
	case input.OriginalPrice != nil:
		update.OriginalPrice = lo.ToPtr(decimal.NewNullDecimal(*input.OriginalPrice))
	}

	product, err := h.repo.UpdateProduct(r.Context(), id, update)
	if err != nil {
		api.FailResponse(w, r, err, "Failed to update product")
		return
	}

	api.OKResponse(w, catalog.ToProduct(*product))
}

func (h *AdminHandler) HandleUpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(r.PathValue("id"))
	if err != nil {
		api.FailResponse(w, r, err, "Failed to update game")
		return
	}

	var input struct {
		IsActive *bool `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if input.IsActive == nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Missing is_active")
		return
	}

	game, err := h.repo.SetGameActive(r.Context(), id, *input.IsActive)
	if err != nil {
		api.FailResponse(w, r, err, "Failed to update game")
		return
	}

	api.OKResponse(w, catalog.ToGame(*game))
}
