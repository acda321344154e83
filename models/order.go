package models

import (
	"strings"
	"time"

	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping

	PaymentCash         PaymentMethod = "cash"         // cash on delivery
	PaymentSyriatelCash PaymentMethod = "syriatelCash" // mobile wallet
)

// Order is immutable once placed; only Status is expected to change, and
// nothing in this service changes it.
type Order struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"` // YYYY-MM-DD
	CreatedAt      time.Time       `json:"createdAt"`
	Status         OrderStatus     `json:"status"`
	Items          []CartItem      `json:"items"`
	TotalUSD       decimal.Decimal `json:"totalUSD"`
	TotalSYP       decimal.Decimal `json:"totalSYP"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"` // SYP
	DeliveryFeeUSD decimal.Decimal `json:"deliveryFeeUSD"`
	Address        string          `json:"address"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
}

// ParsePaymentMethod accepts the method names the checkout form sends.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash", "cod", "cashondelivery":
		return PaymentCash, true
	case "syriatelcash", "syriatel_cash", "syriatel":
		return PaymentSyriatelCash, true
	}
	return "", false
}

func (s OrderStatus) Label(l i18n.Locale) string {
	return i18n.T(l, string(s))
}

func (m PaymentMethod) Label(l i18n.Locale) string {
	if m == PaymentCash {
		return i18n.T(l, "cashOnDelivery")
	}
	return i18n.T(l, string(m))
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	c := o
	c.Items = make([]CartItem, len(o.Items))
	for i, item := range o.Items {
		c.Items[i] = item.Clone()
	}
	return c
}
