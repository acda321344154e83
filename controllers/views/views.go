// Package views shapes models for API responses in the caller's language.
// Both language fields always stay in the payload; the display fields are a
// read-time projection.
package views

import (
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/mayarj/Ecommerceclientappdesign/pricing"
	"github.com/shopspring/decimal"
)

type Product struct {
	models.Product
	DisplayName        string          `json:"displayName"`
	DisplayDescription string          `json:"displayDescription"`
	CategoryLabel      string          `json:"categoryLabel"`
	DisplayImages      []string        `json:"displayImages"`
	EffectivePriceUSD  decimal.Decimal `json:"effectivePriceUSD"`
	EffectivePriceSYP  decimal.Decimal `json:"effectivePriceSYP"`
}

// NewProduct projects p for locale l with the images of the selected color.
func NewProduct(p models.Product, l i18n.Locale, color string) Product {
	return Product{
		Product:            p,
		DisplayName:        p.LocalizedName(l),
		DisplayDescription: p.LocalizedDescription(l),
		CategoryLabel:      p.Category.Label(l),
		DisplayImages:      p.ImagesFor(color),
		EffectivePriceUSD:  pricing.EffectivePrice(p, pricing.USD),
		EffectivePriceSYP:  pricing.EffectivePrice(p, pricing.SYP),
	}
}

func NewProducts(products []models.Product, l i18n.Locale) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, NewProduct(p, l, ""))
	}
	return out
}

type CartLine struct {
	models.CartItem
	DisplayName  string          `json:"displayName"`
	LineTotalUSD decimal.Decimal `json:"lineTotalUSD"`
	LineTotalSYP decimal.Decimal `json:"lineTotalSYP"`
}

func NewCartLine(item models.CartItem, l i18n.Locale) CartLine {
	return CartLine{
		CartItem:     item,
		DisplayName:  item.LocalizedName(l),
		LineTotalUSD: pricing.LineTotal(item, pricing.USD),
		LineTotalSYP: pricing.LineTotal(item, pricing.SYP),
	}
}

func NewCartLines(items []models.CartItem, l i18n.Locale) []CartLine {
	out := make([]CartLine, 0, len(items))
	for _, item := range items {
		out = append(out, NewCartLine(item, l))
	}
	return out
}

type Cart struct {
	Items   []CartLine      `json:"items"`
	Summary pricing.Summary `json:"summary"`
	Message string          `json:"message,omitempty"`
	Locale  i18n.Locale     `json:"locale"`
	Dir     string          `json:"dir"`
}

func NewCart(items []models.CartItem, summary pricing.Summary, l i18n.Locale) Cart {
	c := Cart{
		Items:   NewCartLines(items, l),
		Summary: summary,
		Locale:  l,
		Dir:     l.Dir(),
	}
	if len(items) == 0 {
		c.Message = i18n.T(l, "emptyCart")
	}
	return c
}

type Order struct {
	models.Order
	Items              []CartLine `json:"items"`
	StatusLabel        string     `json:"statusLabel"`
	PaymentMethodLabel string     `json:"paymentMethodLabel"`
}

func NewOrder(o models.Order, l i18n.Locale) Order {
	return Order{
		Order:              o,
		Items:              NewCartLines(o.Items, l),
		StatusLabel:        o.Status.Label(l),
		PaymentMethodLabel: o.PaymentMethod.Label(l),
	}
}

func NewOrders(list []models.Order, l i18n.Locale) []Order {
	out := make([]Order, 0, len(list))
	for _, o := range list {
		out = append(out, NewOrder(o, l))
	}
	return out
}
