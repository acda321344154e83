package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/session"
)

const (
	sessionKey   = "session"
	sessionIDKey = "session_id"
)

// TokenParser extracts the session id from a bearer token.
type TokenParser interface {
	Parse(token string) (string, error)
}

// ValidateToken rejects requests without a live session and stores the
// session in the context for the handlers.
func ValidateToken(tokens TokenParser, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(RequestLocale(c), "unauthorized")})
			c.Abort()
			return
		}

		s, ok := resolveSession(tokens, sessions, tokenString)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(RequestLocale(c), "unauthorized")})
			c.Abort()
			return
		}

		c.Set(sessionKey, s)
		c.Set(sessionIDKey, s.ID)
		c.Next()
	}
}

// OptionalSession attaches the session when the request carries a valid
// token and lets the request through either way.
func OptionalSession(tokens TokenParser, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if s, ok := resolveSession(tokens, sessions, tokenString); ok {
				c.Set(sessionKey, s)
				c.Set(sessionIDKey, s.ID)
			}
		}
		c.Next()
	}
}

func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

func resolveSession(tokens TokenParser, sessions *session.Manager, tokenString string) (*session.Session, bool) {
	id, err := tokens.Parse(tokenString)
	if err != nil {
		return nil, false
	}
	s, err := sessions.Get(id)
	if err != nil {
		return nil, false
	}
	return s, true
}

// bearerToken reads the Authorization header, with or without the Bearer
// prefix. Browsers cannot set headers on websocket upgrades, so the token
// query parameter is accepted too.
func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header != "" {
		if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
			return strings.TrimSpace(header[7:])
		}
		return header
	}
	return c.Query("token")
}
