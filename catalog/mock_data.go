package catalog

import (
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/shopspring/decimal"
)

const unsplash = "https://images.unsplash.com/"

func img(id string) string {
	return unsplash + id + "?w=800"
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// MockProducts returns the built-in demo catalog in display order.
func MockProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Position:      1,
			Name:          "Fresh Organic Apples",
			NameAr:        "تفاح عضوي طازج",
			Description:   "Fresh organic apples from local farms. Crisp, sweet, and nutritious.",
			DescriptionAr: "تفاح عضوي طازج من المزارع المحلية. مقرمش، حلو، ومغذي.",
			Category:      models.CategoryFood,
			PriceUSD:      price("5.99"),
			PriceSYP:      price("150000"),
			Discount:      20,
			Images: []string{
				img("photo-1560806887-1e4cd0b6cbd6"),
				img("photo-1669999207738-fcdb7103a6f3"),
				img("photo-1615648610328-5783f7869ae0"),
			},
			Rating:       4.5,
			Reviews:      128,
			InStock:      true,
			QuantityType: models.QuantityWeight,
			WeightUnit:   models.WeightKilogram,
			ImageVariations: map[string][]string{
				"Black": {img("photo-1560806887-1e4cd0b6cbd6")},
				"Red":   {img("photo-1560806887-1e4cd0b6cbd6")},
			},
		},
		{
			ID:            "2",
			Position:      2,
			Name:          "Cotton T-Shirt",
			NameAr:        "تي شيرت قطني",
			Description:   "Premium quality cotton t-shirt. Available in multiple colors and sizes.",
			DescriptionAr: "تي شيرت قطني بجودة عالية. متوفر بعدة ألوان ومقاسات.",
			Category:      models.CategoryCloth,
			PriceUSD:      price("19.99"),
			PriceSYP:      price("500000"),
			Images: []string{
				img("photo-1521572163474-6864f9cf17ab"),
				img("photo-1571455786673-9d9d6c194f90"),
				img("photo-1677709678785-bbe8227262cf"),
			},
			Colors:       []string{"Black", "White", "Blue", "Red"},
			Sizes:        []string{"S", "M", "L", "XL"},
			Rating:       4.8,
			Reviews:      256,
			InStock:      true,
			QuantityType: models.QuantityUnit,
			ImageVariations: map[string][]string{
				"Black": {img("photo-1571455786673-9d9d6c194f90"), img("photo-1571455786673-9d9d6c194f90")},
				"White": {img("photo-1521572163474-6864f9cf17ab"), img("photo-1521572163474-6864f9cf17ab")},
				"Blue":  {img("photo-1677709678785-bbe8227262cf"), img("photo-1677709678785-bbe8227262cf")},
				"Red":   {img("photo-1521572163474-6864f9cf17ab"), img("photo-1521572163474-6864f9cf17ab")},
			},
		},
		{
			ID:            "3",
			Position:      3,
			Name:          "Wireless Headphones",
			NameAr:        "سماعات لاسلكية",
			Description:   "High-quality wireless headphones with noise cancellation and long battery life.",
			DescriptionAr: "سماعات لاسلكية عالية الجودة مع إلغاء الضوضاء وعمر بطارية طويل.",
			Category:      models.CategoryElectronic,
			PriceUSD:      price("89.99"),
			PriceSYP:      price("2250000"),
			Discount:      15,
			Images: []string{
				img("photo-1505740420928-5e560c06d30e"),
				img("photo-1679533662345-b321cf2d8792"),
				img("photo-1658927420074-85930da203ec"),
				img("photo-1553774661-0651f14b2da4"),
			},
			Colors:       []string{"Black", "Silver", "White"},
			Rating:       4.7,
			Reviews:      512,
			InStock:      true,
			QuantityType: models.QuantityUnit,
			ImageVariations: map[string][]string{
				"Black":  {img("photo-1505740420928-5e560c06d30e"), img("photo-1679533662345-b321cf2d8792")},
				"Silver": {img("photo-1505740420928-5e560c06d30e"), img("photo-1658927420074-85930da203ec")},
				"White":  {img("photo-1505740420928-5e560c06d30e"), img("photo-1553774661-0651f14b2da4")},
			},
		},
		{
			ID:            "4",
			Position:      4,
			Name:          "Olive Oil",
			NameAr:        "زيت زيتون",
			Description:   "Extra virgin olive oil, cold-pressed from the finest olives.",
			DescriptionAr: "زيت زيتون بكر ممتاز، معصور على البارد من أجود الزيتون.",
			Category:      models.CategoryFood,
			PriceUSD:      price("12.99"),
			PriceSYP:      price("325000"),
			Images:        []string{img("photo-1474979266404-7eaacbcd87c5")},
			Rating:        4.9,
			Reviews:       89,
			InStock:       true,
			QuantityType:  models.QuantityWeight,
			WeightUnit:    models.WeightLiter,
			ImageVariations: map[string][]string{
				"Black": {img("photo-1474979266404-7eaacbcd87c5")},
				"Red":   {img("photo-1474979266404-7eaacbcd87c5")},
			},
		},
		{
			ID:            "5",
			Position:      5,
			Name:          "Denim Jeans",
			NameAr:        "بنطلون جينز",
			Description:   "Classic blue denim jeans with a modern fit. Durable and comfortable.",
			DescriptionAr: "بنطلون جينز أزرق كلاسيكي بتصميم عصري. متين ومريح.",
			Category:      models.CategoryCloth,
			PriceUSD:      price("49.99"),
			PriceSYP:      price("1250000"),
			Discount:      30,
			Images:        []string{img("photo-1542272604-787c3835535d")},
			Sizes:         []string{"28", "30", "32", "34", "36"},
			Colors:        []string{"Blue", "Black"},
			Rating:        4.6,
			Reviews:       341,
			InStock:       true,
			QuantityType:  models.QuantityUnit,
			ImageVariations: map[string][]string{
				"Blue":  {img("photo-1542272604-787c3835535d")},
				"Black": {img("photo-1542272604-787c3835535d")},
			},
		},
		{
			ID:            "6",
			Position:      6,
			Name:          "Smart Watch",
			NameAr:        "ساعة ذكية",
			Description:   "Feature-rich smartwatch with fitness tracking, notifications, and more.",
			DescriptionAr: "ساعة ذكية غنية بالميزات مع تتبع اللياقة البدنية والإشعارات والمزيد.",
			Category:      models.CategoryElectronic,
			PriceUSD:      price("199.99"),
			PriceSYP:      price("5000000"),
			Images:        []string{img("photo-1523275335684-37898b6baf30")},
			Colors:        []string{"Black", "Silver", "Gold"},
			Rating:        4.4,
			Reviews:       678,
			InStock:       true,
			QuantityType:  models.QuantityUnit,
			ImageVariations: map[string][]string{
				"Black":  {img("photo-1523275335684-37898b6baf30")},
				"Silver": {img("photo-1523275335684-37898b6baf30")},
				"Gold":   {img("photo-1523275335684-37898b6baf30")},
			},
		},
		{
			ID:            "7",
			Position:      7,
			Name:          "Premium Coffee Beans",
			NameAr:        "حبوب قهوة فاخرة",
			Description:   "Arabica coffee beans, carefully roasted to perfection.",
			DescriptionAr: "حبوب قهوة عربية محمصة بعناية فائقة.",
			Category:      models.CategoryFood,
			PriceUSD:      price("15.99"),
			PriceSYP:      price("400000"),
			Discount:      10,
			Images:        []string{img("photo-1559056199-641a0ac8b55e")},
			Rating:        4.8,
			Reviews:       234,
			InStock:       true,
			QuantityType:  models.QuantityWeight,
			WeightUnit:    models.WeightKilogram,
			ImageVariations: map[string][]string{
				"Black": {img("photo-1559056199-641a0ac8b55e")},
				"Red":   {img("photo-1559056199-641a0ac8b55e")},
			},
		},
		{
			ID:            "8",
			Position:      8,
			Name:          "Winter Jacket",
			NameAr:        "جاكيت شتوي",
			Description:   "Warm and stylish winter jacket. Water-resistant and windproof.",
			DescriptionAr: "جاكيت شتوي دافئ وأنيق. مقاوم للماء والرياح.",
			Category:      models.CategoryCloth,
			PriceUSD:      price("79.99"),
			PriceSYP:      price("2000000"),
			Images:        []string{img("photo-1551028719-00167b16eac5")},
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Black", "Navy", "Gray"},
			Rating:        4.7,
			Reviews:       156,
			InStock:       true,
			QuantityType:  models.QuantityUnit,
			ImageVariations: map[string][]string{
				"Black": {img("photo-1551028719-00167b16eac5")},
				"Navy":  {img("photo-1551028719-00167b16eac5")},
				"Gray":  {img("photo-1551028719-00167b16eac5")},
			},
		},
		{
			ID:            "9",
			Position:      9,
			Name:          "Bluetooth Speaker",
			NameAr:        "سماعة بلوتوث",
			Description:   "Portable Bluetooth speaker with powerful sound and long battery life.",
			DescriptionAr: "سماعة بلوتوث محمولة بصوت قوي وعمر بطارية طويل.",
			Category:      models.CategoryElectronic,
			PriceUSD:      price("39.99"),
			PriceSYP:      price("1000000"),
			Discount:      25,
			Images:        []string{img("photo-1608043152269-423dbba4e7e1")},
			Colors:        []string{"Black", "Red", "Blue"},
			Rating:        4.5,
			Reviews:       423,
			InStock:       true,
			QuantityType:  models.QuantityUnit,
			ImageVariations: map[string][]string{
				"Black": {img("photo-1608043152269-423dbba4e7e1")},
				"Red":   {img("photo-1608043152269-423dbba4e7e1")},
				"Blue":  {img("photo-1608043152269-423dbba4e7e1")},
			},
		},
		{
			ID:            "10",
			Position:      10,
			Name:          "Honey Jar",
			NameAr:        "عسل طبيعي",
			Description:   "Pure natural honey from wildflowers. No additives or preservatives.",
			DescriptionAr: "عسل طبيعي نقي من الزهور البرية. بدون إضافات أو مواد حافظة.",
			Category:      models.CategoryFood,
			PriceUSD:      price("18.99"),
			PriceSYP:      price("475000"),
			Images:        []string{img("photo-1587049352846-4a222e784e38")},
			Rating:        4.9,
			Reviews:       167,
			InStock:       true,
			QuantityType:  models.QuantityWeight,
			WeightUnit:    models.WeightKilogram,
			ImageVariations: map[string][]string{
				"Black": {img("photo-1587049352846-4a222e784e38")},
				"Red":   {img("photo-1587049352846-4a222e784e38")},
			},
		},
		{
			ID:            "11",
			Position:      11,
			Name:          "Sports Shoes",
			NameAr:        "حذاء رياضي",
			Description:   "Comfortable sports shoes perfect for running and training.",
			DescriptionAr: "حذاء رياضي مريح مثالي للجري والتدريب.",
			Category:      models.CategoryCloth,
			PriceUSD:      price("69.99"),
			PriceSYP:      price("1750000"),
			Discount:      20,
			Images:        []string{img("photo-1542291026-7eec264c27ff")},
			Sizes:         []string{"38", "39", "40", "41", "42", "43", "44"},
			Colors:        []string{"Black", "White", "Red", "Blue"},
			Rating:        4.6,
			Reviews:       892,
			InStock:       true,
			QuantityType:  models.QuantityUnit,
			ImageVariations: map[string][]string{
				"Black": {img("photo-1542291026-7eec264c27ff")},
				"White": {img("photo-1542291026-7eec264c27ff")},
				"Red":   {img("photo-1542291026-7eec264c27ff")},
				"Blue":  {img("photo-1542291026-7eec264c27ff")},
			},
		},
		{
			ID:            "12",
			Position:      12,
			Name:          "Laptop Stand",
			NameAr:        "حامل لابتوب",
			Description:   "Adjustable aluminum laptop stand for better ergonomics.",
			DescriptionAr: "حامل لابتوب ألمنيوم قابل للتعديل لوضعية أفضل.",
			Category:      models.CategoryElectronic,
			PriceUSD:      price("29.99"),
			PriceSYP:      price("750000"),
			Images:        []string{img("photo-1527864550417-7fd91fc51a46")},
			Colors:        []string{"Silver", "Space Gray"},
			Rating:        4.3,
			Reviews:       234,
			InStock:       true,
			QuantityType:  models.QuantityUnit,
			ImageVariations: map[string][]string{
				"Silver":     {img("photo-1527864550417-7fd91fc51a46")},
				"Space Gray": {img("photo-1527864550417-7fd91fc51a46")},
			},
		},
	}
}
