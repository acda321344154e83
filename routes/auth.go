package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/auth"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Dependencies) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession(deps.Sessions, deps.Tokens))

		// phone sign-in reuses the caller's session when a token is sent
		phone := authGroup.Group("/phone")
		phone.Use(middleware.OptionalSession(deps.Tokens, deps.Sessions))
		{
			phone.POST("/send-code", auth.SendCode(deps.Sessions, deps.Tokens))
			phone.POST("/verify", auth.VerifyCode())
		}
	}
}
