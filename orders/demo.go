package orders

import (
	"time"

	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/mayarj/Ecommerceclientappdesign/pricing"
)

type demoLine struct {
	productID string
	quantity  float64
	color     string
	size      string
}

type demoOrder struct {
	id      string
	date    string
	status  models.OrderStatus
	address string
	method  models.PaymentMethod
	lines   []demoLine
}

var demoOrders = []demoOrder{
	{
		id:      "ORD-001",
		date:    "2026-02-05",
		status:  models.OrderStatusProcessing,
		address: "Damascus, Syria",
		method:  models.PaymentCash,
		lines: []demoLine{
			{productID: "1", quantity: 2},
			{productID: "3", quantity: 1, color: "Black"},
		},
	},
	{
		id:      "ORD-002",
		date:    "2026-02-01",
		status:  models.OrderStatusDelivered,
		address: "Aleppo, Syria",
		method:  models.PaymentSyriatelCash,
		lines: []demoLine{
			{productID: "2", quantity: 3, color: "Blue", size: "M"},
		},
	},
}

// Demo builds the sample order history shown to new visitors, newest first,
// priced from catalog. An order whose products are missing is left out.
func Demo(catalog []models.Product, fees pricing.DeliveryFees) []models.Order {
	byID := make(map[string]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	var out []models.Order
	for _, d := range demoOrders {
		items, ok := demoItems(d.lines, byID)
		if !ok {
			continue
		}
		created, _ := time.Parse(dateLayout, d.date)
		out = append(out, models.Order{
			ID:             d.id,
			Date:           d.date,
			CreatedAt:      created,
			Status:         d.status,
			Items:          items,
			TotalUSD:       pricing.OrderTotal(items, pricing.USD, fees),
			TotalSYP:       pricing.OrderTotal(items, pricing.SYP, fees),
			DeliveryFee:    fees.SYP,
			DeliveryFeeUSD: fees.USD,
			Address:        d.address,
			PaymentMethod:  d.method,
		})
	}
	return out
}

func demoItems(lines []demoLine, byID map[string]models.Product) ([]models.CartItem, bool) {
	items := make([]models.CartItem, 0, len(lines))
	for _, l := range lines {
		p, ok := byID[l.productID]
		if !ok {
			return nil, false
		}
		item := models.NewCartItem(p, l.quantity, l.color, l.size)
		item.Quantity = item.NormalizeQuantity(item.Quantity)
		items = append(items, item)
	}
	return items, true
}
