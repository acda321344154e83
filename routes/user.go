package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/mayarj/Ecommerceclientappdesign/controllers/cart"
	userControllers "github.com/mayarj/Ecommerceclientappdesign/controllers/user"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires a session token.
func SetupUserRoutes(r *gin.Engine, deps Dependencies) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(deps.Tokens, deps.Sessions))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("", userControllers.GetUser())                 // GET /user
		userGroup.PUT("", userControllers.UpdateUser())              // PUT /user
		userGroup.PUT("/language", userControllers.UpdateLanguage()) // PUT /user/language

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart())                     // GET /user/cart
			cartGroup.POST("", cartControllers.AddCartItem(deps.Store))          // POST /user/cart
			cartGroup.POST("/import", cartControllers.ImportCart(deps.Store))    // POST /user/cart/import
			cartGroup.PATCH("/:cart_item_id", cartControllers.UpdateCartItem())  // PATCH /user/cart/:cart_item_id
			cartGroup.DELETE("/:cart_item_id", cartControllers.DeleteCartItem()) // DELETE /user/cart/:cart_item_id
			cartGroup.DELETE("", cartControllers.ClearUserCart())                // DELETE /user/cart
		}

		// ──────────────── Orders ────────────────
		SetupOrderRoutes(userGroup, deps)
	}
}
