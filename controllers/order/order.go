package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/address"
	"github.com/mayarj/Ecommerceclientappdesign/controllers/views"
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
	"github.com/mayarj/Ecommerceclientappdesign/orders"
	"github.com/mayarj/Ecommerceclientappdesign/session"
	"github.com/sirupsen/logrus"
)

// -------- Request Structs --------
type PlaceOrderRequest struct {
	Address       string   `json:"address"`
	PaymentMethod string   `json:"payment_method"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
}

// -------- Helpers --------

func currentSession(c *gin.Context) (*session.Session, i18n.Locale, bool) {
	locale := middleware.CurrentLocale(c)
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(locale, "unauthorized")})
		return nil, locale, false
	}
	return s, locale, true
}

// checkoutAddress is the typed address, or the address resolved from the
// picked map point when nothing was typed.
func checkoutAddress(req PlaceOrderRequest) string {
	if strings.TrimSpace(req.Address) == "" && req.Lat != nil && req.Lng != nil {
		return address.Resolve(*req.Lat, *req.Lng).Formatted
	}
	return req.Address
}

// -------- Handlers --------

// POST /user/orders
func PlaceOrderHandler(logger *logrus.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithField("component", "checkout")

	return func(c *gin.Context) {
		s, locale, ok := currentSession(c)
		if !ok {
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := s.PlaceOrder(checkoutAddress(req), req.PaymentMethod)
		if err != nil {
			var verr *orders.ValidationError
			switch {
			case errors.As(err, &verr):
				c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(locale, verr.Key), "field": verr.Field})
			case errors.Is(err, orders.ErrEmptyCart):
				c.JSON(http.StatusConflict, gin.H{"error": i18n.T(locale, "emptyCart")})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(locale, "error")})
			}
			return
		}

		log.WithFields(logrus.Fields{
			"session_id": s.ID,
			"order_id":   order.ID,
			"items":      len(order.Items),
			"total_usd":  order.TotalUSD.String(),
			"payment":    order.PaymentMethod,
		}).Info("order placed")

		c.JSON(http.StatusCreated, gin.H{
			"order":   views.NewOrder(order, locale),
			"message": i18n.T(locale, "success"),
		})
	}
}

// GET /user/orders
func GetUserOrdersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, locale, ok := currentSession(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orders": views.NewOrders(s.Orders(), locale),
			"locale": locale,
			"dir":    locale.Dir(),
		})
	}
}

// GET /user/orders/:order_id
func GetOrderByIDHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, locale, ok := currentSession(c)
		if !ok {
			return
		}

		order, err := s.Order(c.Param("order_id"))
		if err != nil {
			if errors.Is(err, orders.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(locale, "notFound"), "field": "order_id"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, views.NewOrder(order, locale))
	}
}
