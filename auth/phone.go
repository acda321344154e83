package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
	"github.com/mayarj/Ecommerceclientappdesign/session"
)

type SendCodeInput struct {
	CountryCode string `json:"country_code"`
	PhoneNumber string `json:"phone_number"`
}

type VerifyInput struct {
	Code string `json:"code"`
}

// POST /auth/phone/send-code
//
// Starts the mocked phone sign-in on the caller's session, opening a new
// session when the request carries no valid token. No SMS is sent.
func SendCode(sessions *session.Manager, tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := middleware.CurrentLocale(c)

		var input SendCodeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(locale, "phoneNumber"), "field": "phone_number"})
			return
		}

		s, ok := middleware.CurrentSession(c)
		if !ok {
			s = sessions.Create()
			s.SetLocale(locale)
		}

		phone, err := s.RequestCode(input.CountryCode, input.PhoneNumber)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(locale, "phoneNumber"), "field": "phone_number"})
			return
		}

		token, expiresAt, err := tokens.Issue(s.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(locale, "error")})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   s.ID,
			"token":      token,
			"expires_at": expiresAt,
			"phone":      phone,
			"message":    i18n.T(locale, "enterCode"),
		})
	}
}

// POST /auth/phone/verify
func VerifyCode() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := middleware.CurrentLocale(c)

		s, ok := middleware.CurrentSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(locale, "unauthorized")})
			return
		}

		var input VerifyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(locale, "enterCode"), "field": "code"})
			return
		}

		user, err := s.Verify(input.Code)
		switch {
		case errors.Is(err, session.ErrCodeRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(locale, "enterCode"), "field": "code"})
			return
		case errors.Is(err, session.ErrNoPendingCode):
			c.JSON(http.StatusConflict, gin.H{"error": i18n.T(locale, "phoneNumber"), "field": "phone_number"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(locale, "error")})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":    user,
			"message": i18n.T(locale, "success"),
		})
	}
}
