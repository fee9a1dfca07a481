package orders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gamecharge/storefront/app/api"
	"github.com/gamecharge/storefront/app/catalog"
	"github.com/gamecharge/storefront/app/handoff"
	"github.com/gamecharge/storefront/models"
	"github.com/samber/lo"
)

type Intake interface {
	CreateOrder(ctx context.Context, req Request) (*Receipt, error)
	ListOrdersByPhone(ctx context.Context, phone string) ([]models.OrderDetails, error)
}

// HandoffConfig says where customers finish their orders. An empty Phone
// disables the handoff link in responses.
type HandoffConfig struct {
	Phone  string
	Locale string
}

type CreateOrderResponse struct {
	ID             uint    `json:"id"`
	Status         string  `json:"status"`
	TotalPrice     float64 `json:"total_price"`
	Currency       string  `json:"currency"`
	Product        string  `json:"product"`
	DeliveryTime   string  `json:"delivery_time"`
	HandoffMessage string  `json:"handoff_message,omitempty"`
	HandoffURL     string  `json:"handoff_url,omitempty"`
}

type Order struct {
	ID             uint             `json:"id"`
	Status         string           `json:"status"`
	TotalPrice     float64          `json:"total_price"`
	Currency       string           `json:"currency"`
	CustomerName   string           `json:"customer_name"`
	CustomerPhone  string           `json:"customer_phone"`
	CustomerEmail  *string          `json:"customer_email,omitempty"`
	GameUsername   string           `json:"game_username"`
	GameAccountID  *string          `json:"game_account_id,omitempty"`
	AdditionalInfo *string          `json:"additional_info,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	Product        *catalog.Product `json:"product"`
	Game           *catalog.Game    `json:"game"`
}

type OrdersResponse struct {
	Total  int     `json:"total"`
	Orders []Order `json:"orders"`
}

// idParam accepts an identity sent either as a JSON number or a string.
type idParam string

func (p *idParam) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*p = idParam(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*p = idParam(s)
	return nil
}

type OrderHandler struct {
	intake  Intake
	handoff HandoffConfig
}

func NewOrderHandler(i Intake, cfg HandoffConfig) *OrderHandler {
	return &OrderHandler{intake: i, handoff: cfg}
}

func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProductID      idParam `json:"product_id"`
		CustomerName   string  `json:"customer_name"`
		CustomerPhone  string  `json:"customer_phone"`
		CustomerEmail  string  `json:"customer_email"`
		GameUsername   string  `json:"game_username"`
		GameAccountID  string  `json:"game_account_id"`
		AdditionalInfo string  `json:"additional_info"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req := Request{
		ProductID:      string(input.ProductID),
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		CustomerEmail:  input.CustomerEmail,
		GameUsername:   input.GameUsername,
		GameAccountID:  input.GameAccountID,
		AdditionalInfo: input.AdditionalInfo,
	}
	receipt, err := h.intake.CreateOrder(r.Context(), req)
	if err != nil {
		api.FailResponse(w, r, err, "failed to create order")
		return
	}

	resp := CreateOrderResponse{
		ID:           receipt.OrderID,
		Status:       receipt.Status,
		TotalPrice:   receipt.TotalPrice.InexactFloat64(),
		Currency:     receipt.Currency,
		Product:      receipt.ProductName,
		DeliveryTime: receipt.DeliveryTime,
	}
	if h.handoff.Phone != "" {
		msg, err := handoff.Build(h.details(req.normalized(), receipt), h.handoff.Locale)
		if err != nil {
			// The order exists; a missing link must not turn it into a failure.
			slog.ErrorContext(r.Context(), "build handoff message", "order_id", receipt.OrderID, "error", err)
		} else {
			resp.HandoffMessage = msg
			resp.HandoffURL = handoff.Link(h.handoff.Phone, msg)
		}
	}
	api.CreatedResponse(w, resp)
}

func (h *OrderHandler) HandleListByPhone(w http.ResponseWriter, r *http.Request) {
	details, err := h.intake.ListOrdersByPhone(r.Context(), r.URL.Query().Get("phone"))
	if err != nil {
		api.FailResponse(w, r, err, "failed to get orders")
		return
	}

	api.OKResponse(w, OrdersResponse{
		Total:  len(details),
		Orders: lo.Map(details, func(d models.OrderDetails, _ int) Order { return toOrder(d) }),
	})
}

func (h *OrderHandler) details(req Request, receipt *Receipt) handoff.Details {
	product, delivery := receipt.ProductNameAr, receipt.DeliveryTimeAr
	if h.handoff.Locale == "en" || product == "" {
		product, delivery = receipt.ProductName, receipt.DeliveryTime
	}
	return handoff.Details{
		OrderID:        receipt.OrderID,
		Product:        product,
		Price:          receipt.TotalPrice.String(),
		Currency:       receipt.Currency,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CustomerEmail:  req.CustomerEmail,
		GameUsername:   req.GameUsername,
		GameAccountID:  req.GameAccountID,
		AdditionalInfo: req.AdditionalInfo,
		DeliveryTime:   delivery,
	}
}

func toOrder(d models.OrderDetails) Order {
	out := Order{
		ID:             d.ID,
		Status:         d.Status,
		TotalPrice:     d.TotalPrice.InexactFloat64(),
		Currency:       d.Currency,
		CustomerName:   d.CustomerName,
		CustomerPhone:  d.CustomerPhone,
		CustomerEmail:  d.CustomerEmail,
		GameUsername:   d.GameUsername,
		GameAccountID:  d.GameAccountID,
		AdditionalInfo: d.AdditionalInfo,
		CreatedAt:      d.CreatedAt,
	}
	if d.Product != nil {
		out.Product = lo.ToPtr(catalog.ToProduct(*d.Product))
	}
	if d.Game != nil {
		out.Game = lo.ToPtr(catalog.ToGame(*d.Game))
	}
	return out
}
