package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/mayarj/Ecommerceclientappdesign/controllers/product"
	userControllers "github.com/mayarj/Ecommerceclientappdesign/controllers/user"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, deps Dependencies) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(deps.AdminAPIKey))
	{
		// ─────────── Catalog ───────────
		adminGroup.GET("/products/export-excel", productcontroller.ExportProductsToExcel(deps.Store))
		adminGroup.POST("/products/import-excel", productcontroller.ImportProductsFromExcel(deps.Store))

		// ─────────── Sessions ───────────
		adminGroup.GET("/sessions", userControllers.GetAllSessions(deps.Sessions))
	}
}
