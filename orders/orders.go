// Package orders turns a cart snapshot into an immutable order and keeps the
// per-session order history.
package orders

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/mayarj/Ecommerceclientappdesign/pricing"
)

const dateLayout = "2006-01-02"

// NewID returns an order reference such as ORD-20260205143000-1a2b3c4d.
func NewID(now time.Time) string {
	return "ORD-" + now.Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// Validate checks the checkout form and returns the parsed payment method.
func Validate(address, method string) (models.PaymentMethod, error) {
	if strings.TrimSpace(address) == "" {
		return "", &ValidationError{Field: "address", Key: "selectLocation", Msg: "address is required"}
	}
	pm, ok := models.ParsePaymentMethod(method)
	if !ok {
		return "", &ValidationError{Field: "paymentMethod", Key: "paymentMethod", Msg: "unknown payment method " + method}
	}
	return pm, nil
}

// Build creates a pending order from items. The order owns a deep copy of the
// items, so later cart changes never reach it.
func Build(items []models.CartItem, address, method string, fees pricing.DeliveryFees, now time.Time) (models.Order, error) {
	pm, err := Validate(address, method)
	if err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	snapshot := make([]models.CartItem, len(items))
	for i, item := range items {
		snapshot[i] = item.Clone()
	}

	return models.Order{
		ID:             NewID(now),
		Date:           now.Format(dateLayout),
		CreatedAt:      now,
		Status:         models.OrderStatusPending,
		Items:          snapshot,
		TotalUSD:       pricing.OrderTotal(snapshot, pricing.USD, fees),
		TotalSYP:       pricing.OrderTotal(snapshot, pricing.SYP, fees),
		DeliveryFee:    fees.SYP,
		DeliveryFeeUSD: fees.USD,
		Address:        strings.TrimSpace(address),
		PaymentMethod:  pm,
	}, nil
}
