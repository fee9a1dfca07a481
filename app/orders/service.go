package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/gamecharge/storefront/models"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Request is a customer's purchase request as received from the storefront.
type Request struct {
	ProductID      string `json:"product_id"`
	CustomerName   string `json:"customer_name" validate:"required"`
	CustomerPhone  string `json:"customer_phone" validate:"required"`
	CustomerEmail  string `json:"customer_email" validate:"omitempty,email"`
	GameUsername   string `json:"game_username" validate:"required"`
	GameAccountID  string `json:"game_account_id" validate:"omitempty,numeric"`
	AdditionalInfo string `json:"additional_info"`
}

// Receipt is what the caller needs to hand the order off for fulfilment
// without reading the catalog again.
type Receipt struct {
	OrderID        uint
	Status         string
	TotalPrice     decimal.Decimal
	Currency       string
	ProductName    string
	ProductNameAr  string
	DeliveryTime   string
	DeliveryTimeAr string
	CreatedAt      time.Time
}

type Service struct {
	catalog  *models.CatalogRepository
	orders   *models.OrdersRepository
	validate *validator.Validate
	log      *slog.Logger
}

func NewService(catalog *models.CatalogRepository, orders *models.OrdersRepository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by the names clients send.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Service{
		catalog:  catalog,
		orders:   orders,
		validate: validate,
		log:      log,
	}
}

// CreateOrder validates req, resolves the product and records a pending order
// priced from the product as it is right now.
func (s *Service) CreateOrder(ctx context.Context, req Request) (*Receipt, error) {
	req = req.normalized()
	if err := s.validate.Struct(req); err != nil {
		return nil, validationFailure(err)
	}

	productID, err := models.ParseID(req.ProductID)
	if err != nil {
		return nil, models.ErrProductNotFound
	}
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ProductID:      product.ID,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CustomerEmail:  optional(req.CustomerEmail),
		GameUsername:   req.GameUsername,
		GameAccountID:  optional(req.GameAccountID),
		AdditionalInfo: optional(req.AdditionalInfo),
		Status:         models.OrderStatusPending,
		TotalPrice:     product.Price,
		Currency:       product.Currency,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	s.log.InfoContext(ctx, "order created",
		"order_id", order.ID, "product_id", product.ID,
		"total", order.TotalPrice.String(), "currency", order.Currency)

	return &Receipt{
		OrderID:        order.ID,
		Status:         order.Status,
		TotalPrice:     order.TotalPrice,
		Currency:       order.Currency,
		ProductName:    product.Name,
		ProductNameAr:  product.NameAr,
		DeliveryTime:   product.DeliveryTime,
		DeliveryTimeAr: product.DeliveryTimeAr,
		CreatedAt:      order.CreatedAt,
	}, nil
}

// ListOrdersByPhone returns the orders placed with phone, newest first, each
// with its product and game when those still exist. A blank phone matches nothing.
func (s *Service) ListOrdersByPhone(ctx context.Context, phone string) ([]models.OrderDetails, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return []models.OrderDetails{}, nil
	}
	return s.orders.ListDetailsByPhone(ctx, s.catalog, phone)
}

func (r Request) normalized() Request {
	return Request{
		ProductID:      strings.TrimSpace(r.ProductID),
		CustomerName:   strings.TrimSpace(r.CustomerName),
		CustomerPhone:  strings.TrimSpace(r.CustomerPhone),
		CustomerEmail:  strings.TrimSpace(r.CustomerEmail),
		GameUsername:   strings.TrimSpace(r.GameUsername),
		GameAccountID:  strings.TrimSpace(r.GameAccountID),
		AdditionalInfo: strings.TrimSpace(r.AdditionalInfo),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func validationFailure(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	msgs := lo.Map(fieldErrs, func(fe validator.FieldError, _ int) string {
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "email":
			return fe.Field() + " must be an email address"
		case "numeric":
			return fe.Field() + " must be numeric"
		}
		return fe.Field() + " is invalid"
	})
	return fmt.Errorf("%w: %s", models.ErrValidation, strings.Join(msgs, ", "))
}
