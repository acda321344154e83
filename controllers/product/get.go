package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/catalog"
	"github.com/mayarj/Ecommerceclientappdesign/controllers/views"
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
)

// GetProductByID returns a single product. The optional color query picks
// the image set, falling back to the default images.
// URL param: /products/:id
func GetProductByID(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := middleware.CurrentLocale(c)

		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required", "field": "id"})
			return
		}

		product, err := store.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(locale, "notFound"), "field": "id"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product": views.NewProduct(product, locale, c.Query("color")),
			"locale":  locale,
			"dir":     locale.Dir(),
		})
	}
}

// GetProductImages returns only the image set for the selected color, for
// swapping pictures when the shopper picks a color.
// URL param: /products/:id/images?color=
func GetProductImages(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := middleware.CurrentLocale(c)
		color := c.Query("color")

		images, err := store.ImagesFor(c.Request.Context(), c.Param("id"), color)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(locale, "notFound"), "field": "id"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product images"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "color": color, "images": images})
	}
}
