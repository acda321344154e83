package models

import "github.com/mayarj/Ecommerceclientappdesign/i18n"

type Category string

const (
	CategoryFood       Category = "food"
	CategoryCloth      Category = "cloth"
	CategoryElectronic Category = "electronic"

	// CategoryAll is the home page filter that matches every product.
	CategoryAll Category = "all"
)

// Categories lists the catalog categories in display order.
var Categories = []Category{CategoryFood, CategoryCloth, CategoryElectronic}

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryCloth, CategoryElectronic:
		return true
	}
	return false
}

func (c Category) Label(l i18n.Locale) string {
	if c == CategoryAll || c == "" {
		return i18n.T(l, "allCategories")
	}
	return i18n.T(l, string(c))
}

type CategorySummary struct {
	ID     Category `json:"id"`
	EName  string   `json:"ename"`
	ARName string   `json:"arname"`
	Label  string   `json:"label"`
	Count  int      `json:"count"`
}
