package models

import (
	"errors"
	"slices"

	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/shopspring/decimal"
)

type QuantityType string
type WeightUnit string

const (
	QuantityUnit   QuantityType = "unit"
	QuantityWeight QuantityType = "weight"

	WeightKilogram WeightUnit = "kg"
	WeightGram     WeightUnit = "g"
	WeightLiter    WeightUnit = "liter"
)

var (
	ErrInvalidColor = errors.New("selected color is not offered for this product")
	ErrInvalidSize  = errors.New("selected size is not offered for this product")
)

type Product struct {
	ID              string              `gorm:"primaryKey" json:"id"`
	Position        int                 `gorm:"index" json:"-"` // catalog display order
	Name            string              `gorm:"not null" json:"name"`
	NameAr          string              `json:"nameAr"`
	Description     string              `json:"description"`
	DescriptionAr   string              `json:"descriptionAr"`
	Category        Category            `gorm:"index;not null" json:"category"`
	PriceUSD        decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"priceUSD"`
	PriceSYP        decimal.Decimal     `gorm:"type:decimal(16,2);not null" json:"priceSYP"`
	Discount        int                 `json:"discount,omitempty"` // percent, 0 means none
	Images          []string            `gorm:"serializer:json" json:"images"`
	Colors          []string            `gorm:"serializer:json" json:"colors,omitempty"`
	Sizes           []string            `gorm:"serializer:json" json:"sizes,omitempty"`
	ImageVariations map[string][]string `gorm:"serializer:json" json:"imageVariations,omitempty"`
	QuantityType    QuantityType        `gorm:"not null;default:'unit'" json:"quantityType"`
	WeightUnit      WeightUnit          `json:"weightUnit,omitempty"`
	Rating          float64             `json:"rating"`
	Reviews         int                 `json:"reviews"`
	InStock         bool                `json:"inStock"`
}

func (p Product) IsWeightBased() bool {
	return p.QuantityType == QuantityWeight
}

func (p Product) HasDiscount() bool {
	return p.Discount > 0
}

func (p Product) HasColor(color string) bool {
	return slices.Contains(p.Colors, color)
}

func (p Product) HasSize(size string) bool {
	return slices.Contains(p.Sizes, size)
}

// ImagesFor returns the image set shown when color is selected. Only colors
// the product actually offers can carry an override; every other case,
// including an offered color without override images, uses the default set.
func (p Product) ImagesFor(color string) []string {
	if color != "" && p.HasColor(color) {
		if imgs, ok := p.ImageVariations[color]; ok && len(imgs) > 0 {
			return slices.Clone(imgs)
		}
	}
	return slices.Clone(p.Images)
}

// ValidateSelection checks that a color/size choice belongs to the product.
// Empty selections are always allowed.
func (p Product) ValidateSelection(color, size string) error {
	if color != "" && !p.HasColor(color) {
		return ErrInvalidColor
	}
	if size != "" && !p.HasSize(size) {
		return ErrInvalidSize
	}
	return nil
}

func (p Product) LocalizedName(l i18n.Locale) string {
	if l == i18n.Arabic && p.NameAr != "" {
		return p.NameAr
	}
	return p.Name
}

func (p Product) LocalizedDescription(l i18n.Locale) string {
	if l == i18n.Arabic && p.DescriptionAr != "" {
		return p.DescriptionAr
	}
	return p.Description
}

// Clone returns a copy that shares no slices or maps with p.
func (p Product) Clone() Product {
	c := p
	c.Images = slices.Clone(p.Images)
	c.Colors = slices.Clone(p.Colors)
	c.Sizes = slices.Clone(p.Sizes)
	if p.ImageVariations != nil {
		c.ImageVariations = make(map[string][]string, len(p.ImageVariations))
		for color, imgs := range p.ImageVariations {
			c.ImageVariations[color] = slices.Clone(imgs)
		}
	}
	return c
}
