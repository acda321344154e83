// Package pricing derives effective prices and cart totals in both storefront
// currencies. USD and SYP are independent quotes: every figure is computed
// from its own base price and never converted from the other currency.
package pricing

import (
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/shopspring/decimal"
)

type Currency string

const (
	USD Currency = "USD"
	SYP Currency = "SYP"
)

var hundred = decimal.NewFromInt(100)

// DeliveryFees is the flat delivery charge per currency.
type DeliveryFees struct {
	USD decimal.Decimal
	SYP decimal.Decimal
}

// DefaultDeliveryFees are the checkout fees of the storefront.
func DefaultDeliveryFees() DeliveryFees {
	return DeliveryFees{
		USD: decimal.NewFromInt(2),
		SYP: decimal.NewFromInt(50000),
	}
}

func (f DeliveryFees) For(c Currency) decimal.Decimal {
	if c == SYP {
		return f.SYP
	}
	return f.USD
}

func basePrice(p models.Product, c Currency) decimal.Decimal {
	if c == SYP {
		return p.PriceSYP
	}
	return p.PriceUSD
}

// EffectivePrice is the unit price after the product's discount.
func EffectivePrice(p models.Product, c Currency) decimal.Decimal {
	price := basePrice(p, c)
	if !p.HasDiscount() {
		return price
	}
	return price.Mul(decimal.NewFromInt(int64(100 - p.Discount))).Div(hundred)
}

func LineTotal(item models.CartItem, c Currency) decimal.Decimal {
	return EffectivePrice(item.Product, c).Mul(decimal.NewFromFloat(item.Quantity))
}

// Subtotal sums the line totals; an empty cart is zero.
func Subtotal(items []models.CartItem, c Currency) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item, c))
	}
	return total
}

// OrderTotal is the subtotal plus the flat delivery fee.
func OrderTotal(items []models.CartItem, c Currency, fees DeliveryFees) decimal.Decimal {
	return Subtotal(items, c).Add(fees.For(c))
}

// Amounts is the checkout breakdown in one currency.
type Amounts struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
}

// Summary is what the cart and checkout pages display.
type Summary struct {
	USD       Amounts `json:"usd"`
	SYP       Amounts `json:"syp"`
	ItemCount int     `json:"itemCount"`
}

func Summarize(items []models.CartItem, fees DeliveryFees) Summary {
	amounts := func(c Currency) Amounts {
		sub := Subtotal(items, c)
		return Amounts{
			Subtotal:    sub,
			DeliveryFee: fees.For(c),
			Total:       sub.Add(fees.For(c)),
		}
	}
	return Summary{
		USD:       amounts(USD),
		SYP:       amounts(SYP),
		ItemCount: len(items),
	}
}
