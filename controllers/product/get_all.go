package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/catalog"
	"github.com/mayarj/Ecommerceclientappdesign/controllers/views"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
	"github.com/mayarj/Ecommerceclientappdesign/models"
)

// GET /products?category=&search=
func GetProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := middleware.CurrentLocale(c)

		category, ok := categoryParam(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category", "field": "category"})
			return
		}

		products, err := store.Search(c.Request.Context(), category, c.Query("search"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": views.NewProducts(products, locale),
			"count":    len(products),
			"locale":   locale,
			"dir":      locale.Dir(),
		})
	}
}

// GET /products/feed?category=
func GetFeed(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := middleware.CurrentLocale(c)

		category, ok := categoryParam(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category", "field": "category"})
			return
		}

		products, err := store.List(c.Request.Context(), category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		feed := catalog.Feed(products, locale)
		entries := make([]gin.H, 0, len(feed))
		for _, entry := range feed {
			item := gin.H{"kind": entry.Kind}
			if entry.Product != nil {
				item["product"] = views.NewProduct(*entry.Product, locale, "")
			}
			if entry.Promo != nil {
				item["promo"] = entry.Promo
			}
			entries = append(entries, item)
		}

		c.JSON(http.StatusOK, gin.H{
			"category": category.Label(locale),
			"feed":     entries,
			"locale":   locale,
			"dir":      locale.Dir(),
		})
	}
}

func categoryParam(c *gin.Context) (models.Category, bool) {
	category := models.Category(c.DefaultQuery("category", string(models.CategoryAll)))
	if category == "" || category == models.CategoryAll {
		return models.CategoryAll, true
	}
	return category, category.Valid()
}
