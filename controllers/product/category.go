package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/catalog"
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
	"github.com/mayarj/Ecommerceclientappdesign/models"
)

// GetAllCategories returns the catalog categories with product counts. The
// "all" filter heads the list the way the home page shows it.
func GetAllCategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := middleware.CurrentLocale(c)

		categories, err := store.Categories(c.Request.Context(), locale)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		total := 0
		for _, cat := range categories {
			total += cat.Count
		}
		all := models.CategorySummary{
			ID:     models.CategoryAll,
			EName:  models.CategoryAll.Label(i18n.English),
			ARName: models.CategoryAll.Label(i18n.Arabic),
			Label:  models.CategoryAll.Label(locale),
			Count:  total,
		}

		c.JSON(http.StatusOK, gin.H{
			"categories": append([]models.CategorySummary{all}, categories...),
			"locale":     locale,
			"dir":        locale.Dir(),
		})
	}
}
