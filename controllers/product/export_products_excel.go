package productcontroller

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/catalog"
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/tealeg/xlsx"
)

// Column layout shared by export and import.
var exportHeaders = []string{
	"ID", "Position", "Name", "NameAr", "Description", "DescriptionAr", "Category",
	"PriceUSD", "PriceSYP", "Discount", "QuantityType", "WeightUnit",
	"Colors", "Sizes", "Images", "ImageVariations", "Rating", "Reviews", "InStock",
}

// GET /admin/products/export-excel
func ExportProductsToExcel(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.List(c.Request.Context(), models.CategoryAll)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file, err := productsWorkbook(products)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.Error(err)
			return
		}
	}
}

func productsWorkbook(products []models.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}

	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Position)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.NameAr)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.DescriptionAr)
		row.AddCell().SetValue(string(p.Category))
		// prices as text keep their exact decimal digits
		row.AddCell().SetValue(p.PriceUSD.String())
		row.AddCell().SetValue(p.PriceSYP.String())
		row.AddCell().SetValue(p.Discount)
		row.AddCell().SetValue(string(p.QuantityType))
		row.AddCell().SetValue(string(p.WeightUnit))
		row.AddCell().SetValue(strings.Join(p.Colors, ","))
		row.AddCell().SetValue(strings.Join(p.Sizes, ","))
		row.AddCell().SetValue(strings.Join(p.Images, ","))
		row.AddCell().SetValue(formatVariations(p.ImageVariations))
		row.AddCell().SetValue(p.Rating)
		row.AddCell().SetValue(p.Reviews)
		row.AddCell().SetValue(p.InStock)
	}
	return file, nil
}

// formatVariations writes "Black=a,b;White=c" with colors sorted.
func formatVariations(v map[string][]string) string {
	colors := make([]string, 0, len(v))
	for color := range v {
		colors = append(colors, color)
	}
	sort.Strings(colors)

	parts := make([]string, 0, len(colors))
	for _, color := range colors {
		parts = append(parts, color+"="+strings.Join(v[color], ","))
	}
	return strings.Join(parts, ";")
}
