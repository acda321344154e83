package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/catalog"
	"github.com/mayarj/Ecommerceclientappdesign/controllers/views"
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/mayarj/Ecommerceclientappdesign/session"
)

type CartItemInput struct {
	ProductID     string   `json:"product_id" binding:"required"`
	Quantity      *float64 `json:"quantity"`
	SelectedColor string   `json:"selected_color"`
	SelectedSize  string   `json:"selected_size"`
	CartItemID    string   `json:"cart_item_id"`
	Images        []string `json:"images"`
}

type ImportCartInput struct {
	Items []CartItemInput `json:"items" binding:"required,dive"`
}

type PatchCartItemInput struct {
	Quantity      *float64 `json:"quantity"`
	SelectedColor *string  `json:"selected_color"`
	SelectedSize  *string  `json:"selected_size"`
	Images        []string `json:"images"`
}

func currentSession(c *gin.Context) (*session.Session, i18n.Locale, bool) {
	locale := middleware.CurrentLocale(c)
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(locale, "unauthorized")})
		return nil, locale, false
	}
	return s, locale, true
}

func renderCart(c *gin.Context, status int, s *session.Session, locale i18n.Locale) {
	items, summary := s.CartSummary()
	c.JSON(status, views.NewCart(items, summary, locale))
}

// selectionError answers a color or size the product does not offer.
func selectionError(c *gin.Context, locale i18n.Locale, err error) {
	field, key := "selected_color", "color"
	if errors.Is(err, models.ErrInvalidSize) {
		field, key = "selected_size", "size"
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(locale, key) + ": " + err.Error(), "field": field})
}

// candidate builds a cart line from the catalog copy of the product, so the
// client never dictates prices.
func candidate(c *gin.Context, store *catalog.Store, locale i18n.Locale, input CartItemInput) (models.CartItem, bool) {
	product, err := store.Get(c.Request.Context(), input.ProductID)
	if err != nil {
		status, msg := http.StatusInternalServerError, i18n.T(locale, "error")
		if errors.Is(err, catalog.ErrProductNotFound) {
			status, msg = http.StatusNotFound, i18n.T(locale, "notFound")
		}
		c.JSON(status, gin.H{"error": msg, "field": "product_id"})
		return models.CartItem{}, false
	}
	if err := product.ValidateSelection(input.SelectedColor, input.SelectedSize); err != nil {
		selectionError(c, locale, err)
		return models.CartItem{}, false
	}

	quantity := 1.0
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	item := models.NewCartItem(product, quantity, input.SelectedColor, input.SelectedSize)
	item.CartItemID = input.CartItemID
	if input.Images != nil {
		item.Images = input.Images
	}
	return item, true
}

// GET /user/cart
func GetUserCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, locale, ok := currentSession(c)
		if !ok {
			return
		}
		renderCart(c, http.StatusOK, s, locale)
	}
}

// POST /user/cart
func AddCartItem(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, locale, ok := currentSession(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		// images are derived from the selected color on add
		input.Images = nil

		item, ok := candidate(c, store, locale, input)
		if !ok {
			return
		}

		line := s.AddItem(item)
		items, summary := s.CartSummary()
		c.JSON(http.StatusCreated, gin.H{
			"item": views.NewCartLine(line, locale),
			"cart": views.NewCart(items, summary, locale),
		})
	}
}

// POST /user/cart/import
//
// Loads lines held by the client, such as a cart saved before item ids
// existed. Lines keep their ids, or lack of them.
func ImportCart(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, locale, ok := currentSession(c)
		if !ok {
			return
		}

		var input ImportCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		lines := make([]models.CartItem, 0, len(input.Items))
		for _, in := range input.Items {
			item, ok := candidate(c, store, locale, in)
			if !ok {
				return
			}
			lines = append(lines, item)
		}

		s.ImportCart(lines)
		renderCart(c, http.StatusOK, s, locale)
	}
}

// PATCH /user/cart/:cart_item_id
func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, locale, ok := currentSession(c)
		if !ok {
			return
		}
		id := c.Param("cart_item_id")

		var input PatchCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		patch := models.CartItemPatch{
			Quantity:      input.Quantity,
			SelectedColor: input.SelectedColor,
			SelectedSize:  input.SelectedSize,
			Images:        input.Images,
		}
		if patch.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}

		line, found := s.CartItem(id)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(locale, "notFound"), "field": "cart_item_id"})
			return
		}
		color, size := line.SelectedColor, line.SelectedSize
		if patch.SelectedColor != nil {
			color = *patch.SelectedColor
		}
		if patch.SelectedSize != nil {
			size = *patch.SelectedSize
		}
		if err := line.ValidateSelection(color, size); err != nil {
			selectionError(c, locale, err)
			return
		}

		updated, ok := s.UpdateItem(id, patch)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(locale, "notFound"), "field": "cart_item_id"})
			return
		}

		items, summary := s.CartSummary()
		c.JSON(http.StatusOK, gin.H{
			"item": views.NewCartLine(updated, locale),
			"cart": views.NewCart(items, summary, locale),
		})
	}
}

// DELETE /user/cart/:cart_item_id
func DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, locale, ok := currentSession(c)
		if !ok {
			return
		}

		if !s.RemoveItem(c.Param("cart_item_id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(locale, "notFound"), "field": "cart_item_id"})
			return
		}
		renderCart(c, http.StatusOK, s, locale)
	}
}

// DELETE /user/cart
func ClearUserCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, locale, ok := currentSession(c)
		if !ok {
			return
		}
		s.ClearCart()
		renderCart(c, http.StatusOK, s, locale)
	}
}
