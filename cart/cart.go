// Package cart holds the line items of one shopper's cart and owns the
// identity-merge rules for adding, updating and removing them.
//
// A Cart is not safe for concurrent use; the owning session serializes access.
package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mayarj/Ecommerceclientappdesign/models"
)

type IDFunc func(item models.CartItem) string

type Cart struct {
	items []models.CartItem
	newID IDFunc
}

type Option func(*Cart)

// WithIDFunc replaces the cart item id generator; tests use it for stable ids.
func WithIDFunc(fn IDFunc) Option {
	return func(c *Cart) {
		c.newID = fn
	}
}

func New(opts ...Option) *Cart {
	c := &Cart{newID: GenerateItemID}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateItemID builds a line id from the product, its variant selection,
// the current time and a random suffix.
func GenerateItemID(item models.CartItem) string {
	color := item.SelectedColor
	if color == "" {
		color = "no-color"
	}
	size := item.SelectedSize
	if size == "" {
		size = "no-size"
	}
	return fmt.Sprintf("%s-%s-%s-%d-%s", item.ID, color, size, time.Now().UnixNano(), uuid.NewString()[:8])
}

// AddItem puts a candidate line into the cart:
//  1. a candidate carrying the id of an existing line for the same product,
//     color and size adds to that line;
//  2. otherwise an untagged line with the same product, color and size is
//     tagged with a fresh id and absorbs the candidate's quantity;
//  3. otherwise a tagged line with the same variant absorbs it, keeping its id;
//  4. otherwise the candidate is appended under a fresh id.
//
// A cart therefore never holds two lines for one variant through AddItem,
// and a tagged line keeps the id it was given. An id naming a line of another
// variant is stale and is ignored. The returned copy is the line that now holds
// the candidate.
func (c *Cart) AddItem(candidate models.CartItem) models.CartItem {
	candidate = candidate.Clone()
	candidate.Quantity = candidate.NormalizeQuantity(candidate.Quantity)
	if candidate.Images == nil {
		candidate.Images = candidate.ImagesFor(candidate.SelectedColor)
	}

	if candidate.Tagged() {
		if idx := c.indexByID(candidate.CartItemID); idx >= 0 && c.items[idx].SameVariant(candidate) {
			return c.merge(idx, candidate.Quantity)
		}
	}

	for idx, line := range c.items {
		if !line.Tagged() && line.SameVariant(candidate) {
			c.items[idx].CartItemID = c.newID(line)
			return c.merge(idx, candidate.Quantity)
		}
	}

	for idx, line := range c.items {
		if line.Tagged() && line.SameVariant(candidate) {
			return c.merge(idx, candidate.Quantity)
		}
	}

	candidate.CartItemID = c.newID(candidate)
	c.items = append(c.items, candidate)
	return candidate.Clone()
}

func (c *Cart) merge(idx int, quantity float64) models.CartItem {
	line := &c.items[idx]
	line.Quantity = line.NormalizeQuantity(line.Quantity + quantity)
	return line.Clone()
}

// UpdateItem applies patch to the line addressed by id. Tagged lines match on
// their cart item id, untagged legacy lines on their product id. A color
// change also swaps the line's images unless the patch names images itself.
// When the new color or size is already held by another line, that line's
// quantity is folded into the patched one and the other line is dropped.
// It reports false, changing nothing, when no line matches.
func (c *Cart) UpdateItem(id string, patch models.CartItemPatch) (models.CartItem, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return models.CartItem{}, false
	}
	line := &c.items[idx]

	if patch.Quantity != nil {
		line.Quantity = line.NormalizeQuantity(*patch.Quantity)
	}
	if patch.SelectedSize != nil {
		line.SelectedSize = *patch.SelectedSize
	}
	if patch.SelectedColor != nil {
		line.SelectedColor = *patch.SelectedColor
		line.Images = line.ImagesFor(line.SelectedColor)
	}
	if patch.Images != nil {
		line.Images = append([]string(nil), patch.Images...)
	}
	if patch.SelectedColor == nil && patch.SelectedSize == nil {
		return line.Clone(), true
	}

	for other := range c.items {
		if other != idx && c.items[other].SameVariant(*line) {
			line.Quantity = line.NormalizeQuantity(line.Quantity + c.items[other].Quantity)
			if !line.Tagged() {
				line.CartItemID = c.items[other].CartItemID
			}
			updated := line.Clone()
			c.items = append(c.items[:other], c.items[other+1:]...)
			return updated, true
		}
	}
	return line.Clone(), true
}

// RemoveItem deletes the line addressed by id, matched like UpdateItem.
func (c *Cart) RemoveItem(id string) bool {
	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.items = nil
}

// Import appends lines exactly as given, keeping missing ids missing. This is
// how lines stored before identity tagging enter a cart.
func (c *Cart) Import(lines []models.CartItem) {
	for _, line := range lines {
		line = line.Clone()
		line.Quantity = line.NormalizeQuantity(line.Quantity)
		if line.Images == nil {
			line.Images = line.ImagesFor(line.SelectedColor)
		}
		c.items = append(c.items, line)
	}
}

// Items returns a deep copy of the lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	for i, line := range c.items {
		out[i] = line.Clone()
	}
	return out
}

func (c *Cart) Get(id string) (models.CartItem, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return models.CartItem{}, false
	}
	return c.items[idx].Clone(), true
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) indexByID(id string) int {
	for i, line := range c.items {
		if line.Tagged() && line.CartItemID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) indexOf(id string) int {
	if id == "" {
		return -1
	}
	if idx := c.indexByID(id); idx >= 0 {
		return idx
	}
	for i, line := range c.items {
		if !line.Tagged() && line.ID == id {
			return i
		}
	}
	return -1
}
