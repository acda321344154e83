package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mayarj/Ecommerceclientappdesign/catalog"
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

// POST /admin/products/import-excel
//
// Upserts products from a workbook laid out like the export. Rows without an
// id, a name, a known category or valid prices are skipped.
func ImportProductsFromExcel(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		products, skippedCount := productsFromSheet(xlFile.Sheets[0])
		if err := store.Seed(c.Request.Context(), products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":        "Import completed",
			"imported_count": len(products),
			"skipped_count":  skippedCount,
		})
	}
}

func productsFromSheet(sheet *xlsx.Sheet) ([]models.Product, int) {
	var products []models.Product
	skippedCount := 0

	for i := 1; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		get := func(index int) string {
			if index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}

		p, ok := productFromRow(get)
		if !ok {
			skippedCount++
			continue
		}
		products = append(products, p)
	}
	return products, skippedCount
}

func productFromRow(get func(int) string) (models.Product, bool) {
	priceUSD, err1 := decimal.NewFromString(get(7))
	priceSYP, err2 := decimal.NewFromString(get(8))
	category := models.Category(get(6))
	if get(0) == "" || get(2) == "" || err1 != nil || err2 != nil || !category.Valid() {
		return models.Product{}, false
	}

	position, _ := strconv.Atoi(get(1))
	discount, _ := strconv.Atoi(get(9))
	rating, _ := strconv.ParseFloat(get(16), 64)
	reviews, _ := strconv.Atoi(get(17))
	inStock, _ := strconv.ParseBool(get(18))

	quantityType := models.QuantityType(get(10))
	if quantityType != models.QuantityWeight {
		quantityType = models.QuantityUnit
	}

	return models.Product{
		ID:              get(0),
		Position:        position,
		Name:            get(2),
		NameAr:          get(3),
		Description:     get(4),
		DescriptionAr:   get(5),
		Category:        category,
		PriceUSD:        priceUSD,
		PriceSYP:        priceSYP,
		Discount:        min(max(discount, 0), 100),
		QuantityType:    quantityType,
		WeightUnit:      models.WeightUnit(get(11)),
		Colors:          splitCell(get(12)),
		Sizes:           splitCell(get(13)),
		Images:          splitCell(get(14)),
		ImageVariations: parseVariations(get(15)),
		Rating:          rating,
		Reviews:         reviews,
		InStock:         inStock,
	}, true
}

func splitCell(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseVariations(s string) map[string][]string {
	var out map[string][]string
	for _, entry := range strings.Split(s, ";") {
		color, images, found := strings.Cut(entry, "=")
		color = strings.TrimSpace(color)
		if !found || color == "" {
			continue
		}
		if out == nil {
			out = map[string][]string{}
		}
		out[color] = splitCell(images)
	}
	return out
}
