// Package handoff renders the message a customer sends to finish an order
// over chat. It only formats; delivery is up to the customer's client.
package handoff

import (
	"fmt"
	"net/url"
	"strings"
	"text/template"
)

// Details is everything the message shows. Optional fields may be empty.
type Details struct {
	OrderID        uint
	Product        string
	Price          string
	Currency       string
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  string
	GameUsername   string
	GameAccountID  string
	AdditionalInfo string
	DeliveryTime   string
}

type labels struct {
	Title, OrderSection, OrderID, Product, Price      string
	CustomerSection, Name, Phone, Email               string
	GameSection, Username, AccountID, Extra, Delivery string
	NotSpecified, None                                string
}

var locales = map[string]labels{
	"ar": {
		Title: "طلب شحن جديد", OrderSection: "تفاصيل الطلب", OrderID: "رقم الطلب", Product: "المنتج", Price: "السعر",
		CustomerSection: "بيانات العميل", Name: "الاسم", Phone: "الهاتف", Email: "الإيميل",
		GameSection: "بيانات اللعبة", Username: "اسم المستخدم", AccountID: "معرف اللعبة", Extra: "معلومات إضافية",
		Delivery: "وقت التسليم المتوقع", NotSpecified: "غير محدد", None: "لا توجد",
	},
	"en": {
		Title: "New top-up order", OrderSection: "Order details", OrderID: "Order number", Product: "Product", Price: "Price",
		CustomerSection: "Customer", Name: "Name", Phone: "Phone", Email: "Email",
		GameSection: "Game account", Username: "Username", AccountID: "Player ID", Extra: "Additional info",
		Delivery: "Expected delivery", NotSpecified: "not specified", None: "none",
	},
}

var message = template.Must(template.New("handoff").Funcs(template.FuncMap{
	"orElse": func(v, fallback string) string {
		if strings.TrimSpace(v) == "" {
			return fallback
		}
		return v
	},
}).Parse(`🎮 *{{.L.Title}}*

📋 *{{.L.OrderSection}}:*
• {{.L.OrderID}}: {{.D.OrderID}}
• {{.L.Product}}: {{.D.Product}}
• {{.L.Price}}: {{.D.Price}} {{.D.Currency}}

👤 *{{.L.CustomerSection}}:*
• {{.L.Name}}: {{.D.CustomerName}}
• {{.L.Phone}}: {{.D.CustomerPhone}}
• {{.L.Email}}: {{orElse .D.CustomerEmail .L.NotSpecified}}

🎯 *{{.L.GameSection}}:*
• {{.L.Username}}: {{.D.GameUsername}}
• {{.L.AccountID}}: {{orElse .D.GameAccountID .L.NotSpecified}}
• {{.L.Extra}}: {{orElse .D.AdditionalInfo .L.None}}

⏰ *{{.L.Delivery}}:* {{.D.DeliveryTime}}`))

// Build renders d in locale ("ar" or "en"). Unknown locales fall back to "ar".
func Build(d Details, locale string) (string, error) {
	l, ok := locales[strings.ToLower(locale)]
	if !ok {
		l = locales["ar"]
	}
	var b strings.Builder
	if err := message.Execute(&b, struct {
		L labels
		D Details
	}{l, d}); err != nil {
		return "", fmt.Errorf("render handoff: %w", err)
	}
	return strings.TrimSpace(b.String()), nil
}

// Link returns a wa.me deep link that opens a chat with phone prefilled with text.
func Link(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return "https://wa.me/" + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
