package models

import (
	"math"
	"slices"
)

const (
	MinUnitQuantity   = 1.0
	MinWeightQuantity = 0.1
)

// CartItem is a product snapshot plus the shopper's choices for one cart line.
type CartItem struct {
	Product
	// CartItemID is empty only for lines that predate identity tagging.
	CartItemID    string  `json:"cartItemId,omitempty"`
	Quantity      float64 `json:"quantity"`
	SelectedColor string  `json:"selectedColor,omitempty"`
	SelectedSize  string  `json:"selectedSize,omitempty"`
	// Images shadows Product.Images with the set shown for SelectedColor;
	// Product.Images keeps the catalog default for fallback.
	Images []string `json:"images"`
}

// NewCartItem builds a line candidate for p with the images of color.
func NewCartItem(p Product, quantity float64, color, size string) CartItem {
	return CartItem{
		Product:       p.Clone(),
		Quantity:      quantity,
		SelectedColor: color,
		SelectedSize:  size,
		Images:        p.ImagesFor(color),
	}
}

func (i CartItem) Tagged() bool {
	return i.CartItemID != ""
}

// SameVariant reports whether both lines hold the same product, color and size.
func (i CartItem) SameVariant(o CartItem) bool {
	return i.ID == o.ID && i.SelectedColor == o.SelectedColor && i.SelectedSize == o.SelectedSize
}

// NormalizeQuantity clamps q to the smallest valid amount for the product's
// quantity type. Unit-typed products only take whole numbers; weights are kept
// as entered.
func (p Product) NormalizeQuantity(q float64) float64 {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		q = 0
	}
	if p.IsWeightBased() {
		if q < MinWeightQuantity {
			return MinWeightQuantity
		}
		return q
	}
	q = math.Floor(q)
	if q < MinUnitQuantity {
		return MinUnitQuantity
	}
	return q
}

func (i CartItem) Clone() CartItem {
	c := i
	c.Product = i.Product.Clone()
	c.Images = slices.Clone(i.Images)
	return c
}

// CartItemPatch lists the fields a shopper may change on an existing line.
// Nil fields are left untouched.
type CartItemPatch struct {
	Quantity      *float64 `json:"quantity"`
	SelectedColor *string  `json:"selectedColor"`
	SelectedSize  *string  `json:"selectedSize"`
	Images        []string `json:"images"`
}

func (p CartItemPatch) Empty() bool {
	return p.Quantity == nil && p.SelectedColor == nil && p.SelectedSize == nil && p.Images == nil
}
