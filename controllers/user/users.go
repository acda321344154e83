package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/address"
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
	"github.com/mayarj/Ecommerceclientappdesign/session"
)

type UpdateUserInput struct {
	Name    *string  `json:"name"`
	Email   *string  `json:"email"`
	Address *string  `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

type UpdateLanguageInput struct {
	Language string `json:"language"`
}

// GET /user
func GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.CurrentSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(middleware.CurrentLocale(c), "unauthorized")})
			return
		}

		locale := middleware.CurrentLocale(c)
		var profile any
		if user, signedIn := s.User(); signedIn {
			profile = user
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":  s.ID,
			"user":      profile,
			"locale":    locale,
			"dir":       locale.Dir(),
			"cartCount": len(s.Cart()),
		})
	}
}

// PUT /user
func UpdateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := middleware.CurrentLocale(c)
		s, ok := middleware.CurrentSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(locale, "unauthorized")})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		update := session.ProfileUpdate{Name: input.Name, Email: input.Email, Address: input.Address}
		// a picked map point stands in for a typed address
		if update.Address == nil && input.Lat != nil && input.Lng != nil {
			resolved := address.Resolve(*input.Lat, *input.Lng).Formatted
			update.Address = &resolved
		}

		user, err := s.UpdateProfile(update)
		if err != nil {
			if errors.Is(err, session.ErrNotSignedIn) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(locale, "unauthorized")})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(locale, "error")})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "message": i18n.T(locale, "success")})
	}
}

// PUT /user/language
//
// An empty body toggles between English and Arabic.
func UpdateLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.CurrentSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(middleware.CurrentLocale(c), "unauthorized")})
			return
		}

		var input UpdateLanguageInput
		_ = c.ShouldBindJSON(&input)

		var locale i18n.Locale
		if input.Language == "" {
			locale = s.ToggleLocale()
		} else {
			parsed, supported := i18n.Parse(input.Language)
			if !supported {
				c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(s.Locale(), "error"), "field": "language"})
				return
			}
			s.SetLocale(parsed)
			locale = parsed
		}

		c.JSON(http.StatusOK, gin.H{"locale": locale, "dir": locale.Dir()})
	}
}

// GET /admin/sessions
func GetAllSessions(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"sessions": sessions.List(),
			"count":    sessions.Len(),
		})
	}
}
