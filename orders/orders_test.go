package orders

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/mayarj/Ecommerceclientappdesign/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d{14}-[0-9a-f]{8}$`)

func headphones() models.Product {
	return models.Product{
		ID:           "3",
		Name:         "Wireless Headphones",
		Category:     models.CategoryElectronic,
		PriceUSD:     decimal.RequireFromString("89.99"),
		PriceSYP:     decimal.NewFromInt(2250000),
		Discount:     15,
		Images:       []string{"default"},
		Colors:       []string{"Black"},
		QuantityType: models.QuantityUnit,
		ImageVariations: map[string][]string{
			"Black": {"black"},
		},
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	items := []models.CartItem{models.NewCartItem(headphones(), 2, "Black", "")}

	order, err := Build(items, "  12 Al-Hamra Street, Damascus ", "cash", pricing.DefaultDeliveryFees(), now)
	require.NoError(t, err)

	assert.Regexp(t, orderIDPattern, order.ID)
	assert.Contains(t, order.ID, "20260314092653")
	assert.Equal(t, "2026-03-14", order.Date)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentCash, order.PaymentMethod)
	assert.Equal(t, "12 Al-Hamra Street, Damascus", order.Address)
	assert.True(t, decimal.RequireFromString("154.983").Equal(order.TotalUSD), "got %s", order.TotalUSD)
	assert.True(t, decimal.NewFromInt(3875000).Equal(order.TotalSYP), "got %s", order.TotalSYP)
	assert.True(t, decimal.NewFromInt(50000).Equal(order.DeliveryFee))
	assert.True(t, decimal.NewFromInt(2).Equal(order.DeliveryFeeUSD))
}

func TestBuildSnapshotsItems(t *testing.T) {
	items := []models.CartItem{models.NewCartItem(headphones(), 1, "Black", "")}

	order, err := Build(items, "Damascus", "syriatelCash", pricing.DefaultDeliveryFees(), time.Now())
	require.NoError(t, err)

	items[0].Quantity = 7
	items[0].Images[0] = "changed"
	items[0].Colors[0] = "Pink"

	assert.Equal(t, 1.0, order.Items[0].Quantity)
	assert.Equal(t, "black", order.Items[0].Images[0])
	assert.Equal(t, "Black", order.Items[0].Colors[0])
}

func TestBuildValidation(t *testing.T) {
	items := []models.CartItem{models.NewCartItem(headphones(), 1, "", "")}
	fees := pricing.DefaultDeliveryFees()

	tests := []struct {
		name    string
		items   []models.CartItem
		address string
		method  string
		field   string
	}{
		{"blank address", items, "   ", "cash", "address"},
		{"empty address", items, "", "cash", "address"},
		{"unknown method", items, "Damascus", "bitcoin", "paymentMethod"},
		{"address checked before empty cart", nil, "", "cash", "address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.items, tt.address, tt.method, fees, time.Now())

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.NotEmpty(t, verr.Key)
		})
	}

	_, err := Build(nil, "Damascus", "cash", fees, time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestNewIDIsUnique(t *testing.T) {
	now := time.Now()
	assert.NotEqual(t, NewID(now), NewID(now))
}

func TestHistory(t *testing.T) {
	var h History
	h.Prepend(models.Order{ID: "a"})
	h.Prepend(models.Order{ID: "b"})

	list := h.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, 2, h.Len())

	got, err := h.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	_, err = h.Get("zzz")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestHistoryListReturnsCopies(t *testing.T) {
	var h History
	h.Prepend(models.Order{ID: "a", Items: []models.CartItem{models.NewCartItem(headphones(), 1, "", "")}})

	list := h.List()
	list[0].Items[0].Quantity = 40
	list[0].ID = "changed"

	got, err := h.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Items[0].Quantity)
}

func TestDemo(t *testing.T) {
	catalog := []models.Product{
		{ID: "1", PriceUSD: decimal.RequireFromString("5.99"), PriceSYP: decimal.NewFromInt(150000), Discount: 20, QuantityType: models.QuantityWeight},
		{ID: "2", PriceUSD: decimal.RequireFromString("19.99"), PriceSYP: decimal.NewFromInt(500000), QuantityType: models.QuantityUnit},
		headphones(),
	}

	demo := Demo(catalog, pricing.DefaultDeliveryFees())

	require.Len(t, demo, 2)
	assert.Equal(t, "ORD-001", demo[0].ID)
	assert.Equal(t, models.OrderStatusProcessing, demo[0].Status)
	assert.Equal(t, []string{"black"}, demo[0].Items[1].Images)
	assert.Equal(t, "ORD-002", demo[1].ID)
	assert.Equal(t, models.PaymentSyriatelCash, demo[1].PaymentMethod)
	// 3 x 19.99 + 2
	assert.True(t, decimal.RequireFromString("61.97").Equal(demo[1].TotalUSD), "got %s", demo[1].TotalUSD)
}

func TestDemoSkipsOrdersWithMissingProducts(t *testing.T) {
	demo := Demo([]models.Product{headphones()}, pricing.DefaultDeliveryFees())
	assert.Empty(t, demo)
}
