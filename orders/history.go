package orders

import "github.com/mayarj/Ecommerceclientappdesign/models"

// History is a most-recent-first list of orders. Like the cart it is owned
// by a session, which serializes access.
type History struct {
	orders []models.Order
}

func (h *History) Prepend(o models.Order) {
	h.orders = append([]models.Order{o.Clone()}, h.orders...)
}

// List returns deep copies, newest first.
func (h *History) List() []models.Order {
	out := make([]models.Order, len(h.orders))
	for i, o := range h.orders {
		out[i] = o.Clone()
	}
	return out
}

func (h *History) Get(id string) (models.Order, error) {
	for _, o := range h.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (h *History) Len() int {
	return len(h.orders)
}
