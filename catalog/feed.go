package catalog

import (
	"fmt"

	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/models"
)

// PromoEvery is how many products the home feed shows between promotions.
const PromoEvery = 8

type FeedKind string

const (
	FeedProduct FeedKind = "product"
	FeedPromo   FeedKind = "promo"
)

type Promo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type FeedEntry struct {
	Kind    FeedKind        `json:"kind"`
	Product *models.Product `json:"product,omitempty"`
	Promo   *Promo          `json:"promo,omitempty"`
}

// Feed lays products out for the home page with a promotion slot after every
// PromoEvery products. No promotion trails the last product.
func Feed(products []models.Product, l i18n.Locale) []FeedEntry {
	out := make([]FeedEntry, 0, len(products)+len(products)/PromoEvery)
	for i := range products {
		p := products[i]
		out = append(out, FeedEntry{Kind: FeedProduct, Product: &p})
		if (i+1)%PromoEvery == 0 && i+1 < len(products) {
			out = append(out, FeedEntry{
				Kind: FeedPromo,
				Promo: &Promo{
					ID:       fmt.Sprintf("promo-%d", i+1-PromoEvery),
					Title:    i18n.T(l, "specialOffer"),
					Subtitle: i18n.T(l, "limitedTime"),
				},
			})
		}
	}
	return out
}
