package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
	"github.com/mayarj/Ecommerceclientappdesign/session"
)

// POST /auth/guest
func CreateGuestSession(sessions *session.Manager, tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Create()
		s.SetLocale(middleware.RequestLocale(c))

		token, expiresAt, err := tokens.Issue(s.ID)
		if err != nil {
			sessions.Delete(s.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(s.Locale(), "error")})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"guest_id":   s.ID,
			"token":      token,
			"expires_at": expiresAt,
			"locale":     s.Locale(),
			"dir":        s.Locale().Dir(),
		})
	}
}
