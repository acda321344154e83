package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
)

// RequestLocale is the locale the request asks for: the lang query
// parameter when it names a supported language, otherwise Accept-Language.
func RequestLocale(c *gin.Context) i18n.Locale {
	if l, ok := i18n.Parse(c.Query("lang")); ok {
		return l
	}
	return i18n.Match(c.GetHeader("Accept-Language"))
}

// CurrentLocale picks the display language: an explicit lang parameter
// wins, then the session's stored language, then Accept-Language.
func CurrentLocale(c *gin.Context) i18n.Locale {
	if l, ok := i18n.Parse(c.Query("lang")); ok {
		return l
	}
	if s, ok := CurrentSession(c); ok {
		return s.Locale()
	}
	return i18n.Match(c.GetHeader("Accept-Language"))
}
