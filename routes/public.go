package routes

import (
	"github.com/gin-gonic/gin"
	addressControllers "github.com/mayarj/Ecommerceclientappdesign/controllers/address"
	productcontroller "github.com/mayarj/Ecommerceclientappdesign/controllers/product"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
)

// SetupPublicRoutes registers the catalog browsing endpoints. A token is
// optional and only used to pick the shopper's language.
func SetupPublicRoutes(r *gin.Engine, deps Dependencies) {
	public := r.Group("/")
	public.Use(middleware.OptionalSession(deps.Tokens, deps.Sessions))
	{
		// ──────────────── Browse Products ────────────────
		public.GET("/products", productcontroller.GetProducts(deps.Store))                 // GET /products?category=&search=
		public.GET("/products/feed", productcontroller.GetFeed(deps.Store))                // GET /products/feed
		public.GET("/products/:id", productcontroller.GetProductByID(deps.Store))          // GET /products/:id?color=
		public.GET("/products/:id/images", productcontroller.GetProductImages(deps.Store)) // GET /products/:id/images?color=

		// ──────────────── Categories ────────────────
		public.GET("/categories", productcontroller.GetAllCategories(deps.Store)) // GET /categories

		// ──────────────── Map Picker ────────────────
		public.GET("/address/resolve", addressControllers.ResolveAddress()) // GET /address/resolve?lat=&lng=
	}
}
