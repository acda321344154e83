package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/auth"
	"github.com/mayarj/Ecommerceclientappdesign/catalog"
	"github.com/mayarj/Ecommerceclientappdesign/session"
	"github.com/sirupsen/logrus"
)

// Dependencies are the long-lived services the handlers are built from.
type Dependencies struct {
	Store       *catalog.Store
	Sessions    *session.Manager
	Tokens      *auth.Tokens
	AdminAPIKey string
	Logger      *logrus.Logger
}

// SetupRoutes is the single entry‐point that wires up Auth, Public, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": deps.Sessions.Len()})
	})

	// 1️⃣ Auth routes (guest and mocked phone sign-in)
	SetupAuthRoutes(r, deps)

	// 2️⃣ Catalog and address lookup (no middleware)
	SetupPublicRoutes(r, deps)

	// 3️⃣ Session routes (token‐protected), orders included
	SetupUserRoutes(r, deps)

	// 4️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, deps)
}
