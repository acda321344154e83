package cart

import (
	"fmt"
	"testing"

	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tshirt() models.Product {
	return models.Product{
		ID:           "2",
		Name:         "Cotton T-Shirt",
		Category:     models.CategoryCloth,
		PriceUSD:     decimal.RequireFromString("19.99"),
		PriceSYP:     decimal.NewFromInt(500000),
		Images:       []string{"default-1", "default-2"},
		Colors:       []string{"Black", "White", "Red"},
		Sizes:        []string{"S", "M", "L"},
		QuantityType: models.QuantityUnit,
		ImageVariations: map[string][]string{
			"Black": {"black-1"},
			"White": {"white-1", "white-2"},
		},
	}
}

func apples() models.Product {
	return models.Product{
		ID:           "1",
		Name:         "Fresh Organic Apples",
		Category:     models.CategoryFood,
		PriceUSD:     decimal.RequireFromString("5.99"),
		PriceSYP:     decimal.NewFromInt(150000),
		Discount:     20,
		Images:       []string{"apple-1"},
		QuantityType: models.QuantityWeight,
		WeightUnit:   models.WeightKilogram,
	}
}

func sequentialIDs() Option {
	n := 0
	return WithIDFunc(func(item models.CartItem) string {
		n++
		return fmt.Sprintf("line-%d", n)
	})
}

func ptr[T any](v T) *T {
	return &v
}

func TestAddItemMergesUntaggedIdenticalVariants(t *testing.T) {
	c := New(sequentialIDs())
	c.Import([]models.CartItem{models.NewCartItem(tshirt(), 2, "Black", "M")})

	line := c.AddItem(models.NewCartItem(tshirt(), 3, "Black", "M"))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 5.0, line.Quantity)
	assert.Equal(t, "line-1", line.CartItemID)
	assert.Equal(t, c.Items()[0], line)
}

func TestAddItemFreshCandidatesMergeIntoOneLine(t *testing.T) {
	c := New()
	first := c.AddItem(models.NewCartItem(tshirt(), 1, "White", "S"))
	second := c.AddItem(models.NewCartItem(tshirt(), 2, "White", "S"))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, first.CartItemID, second.CartItemID, "a tagged line keeps its id")
	assert.Equal(t, 3.0, second.Quantity)
}

func TestAddItemSumsQuantitiesOfUntaggedDuplicates(t *testing.T) {
	c := New(sequentialIDs())
	c.Import([]models.CartItem{models.NewCartItem(apples(), 1.5, "", "")})
	c.AddItem(models.NewCartItem(apples(), 0.5, "", ""))

	items := c.Items()
	require.Len(t, items, 1)
	assert.InDelta(t, 2.0, items[0].Quantity, 1e-9)
	assert.True(t, items[0].Tagged())
}

func TestAddItemByCartItemID(t *testing.T) {
	c := New(sequentialIDs())
	added := c.AddItem(models.NewCartItem(tshirt(), 1, "Red", "L"))

	again := models.NewCartItem(tshirt(), 2, "Red", "L")
	again.CartItemID = added.CartItemID
	merged := c.AddItem(again)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, added.CartItemID, merged.CartItemID)
	assert.Equal(t, 3.0, merged.Quantity)
}

func TestAddItemUnknownCartItemIDGetsFreshID(t *testing.T) {
	c := New(sequentialIDs())
	candidate := models.NewCartItem(tshirt(), 1, "Red", "L")
	candidate.CartItemID = "stale"

	line := c.AddItem(candidate)

	assert.Equal(t, "line-1", line.CartItemID)
	assert.Equal(t, 1, c.Len())
}

func TestAddItemUnknownCartItemIDFallsBackToVariant(t *testing.T) {
	c := New(sequentialIDs())
	added := c.AddItem(models.NewCartItem(tshirt(), 1, "Red", "L"))

	candidate := models.NewCartItem(tshirt(), 1, "Red", "L")
	candidate.CartItemID = "stale"
	line := c.AddItem(candidate)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, added.CartItemID, line.CartItemID)
	assert.Equal(t, 2.0, line.Quantity)
}

func TestAddItemIgnoresIDOfAnotherProduct(t *testing.T) {
	c := New(sequentialIDs())
	shirt := c.AddItem(models.NewCartItem(tshirt(), 1, "Black", "M"))

	candidate := models.NewCartItem(apples(), 2.5, "", "")
	candidate.CartItemID = shirt.CartItemID
	line := c.AddItem(candidate)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1.0, items[0].Quantity, "the shirt line must stay untouched")
	assert.Equal(t, "1", line.ID)
	assert.Equal(t, 2.5, line.Quantity)
	assert.Equal(t, "line-2", line.CartItemID)
}

func TestAddItemIgnoresIDOfAnotherVariant(t *testing.T) {
	c := New(sequentialIDs())
	black := c.AddItem(models.NewCartItem(tshirt(), 1, "Black", "M"))
	white := c.AddItem(models.NewCartItem(tshirt(), 1, "White", "M"))

	candidate := models.NewCartItem(tshirt(), 2, "White", "M")
	candidate.CartItemID = black.CartItemID
	line := c.AddItem(candidate)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1.0, items[0].Quantity)
	assert.Equal(t, white.CartItemID, line.CartItemID)
	assert.Equal(t, 3.0, line.Quantity)
}

func TestAddItemSeparatesVariants(t *testing.T) {
	c := New()
	c.Import([]models.CartItem{models.NewCartItem(tshirt(), 1, "Black", "M")})
	c.AddItem(models.NewCartItem(tshirt(), 1, "White", "M"))

	items := c.Items()
	require.Len(t, items, 2)
	assert.False(t, items[0].Tagged(), "the black line must stay untouched")
	assert.Equal(t, "White", items[1].SelectedColor)
	assert.Equal(t, []string{"white-1", "white-2"}, items[1].Images)
}

func TestAddItemPrefersUntaggedLine(t *testing.T) {
	c := New()
	c.AddItem(models.NewCartItem(tshirt(), 1, "Black", "M"))
	c.Import([]models.CartItem{models.NewCartItem(tshirt(), 1, "Black", "M")})

	c.AddItem(models.NewCartItem(tshirt(), 4, "Black", "M"))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1.0, items[0].Quantity)
	assert.Equal(t, 5.0, items[1].Quantity)
	assert.True(t, items[1].Tagged())
	assert.NotEqual(t, items[0].CartItemID, items[1].CartItemID)
}

func TestAddItemClampsQuantity(t *testing.T) {
	c := New()
	unit := c.AddItem(models.NewCartItem(tshirt(), 0, "", ""))
	weight := c.AddItem(models.NewCartItem(apples(), -3, "", ""))

	assert.Equal(t, 1.0, unit.Quantity)
	assert.Equal(t, 0.1, weight.Quantity)
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	c := New()
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		line := c.AddItem(models.NewCartItem(tshirt(), 1, "Black", fmt.Sprintf("size-%d", i)))
		require.False(t, seen[line.CartItemID], "duplicate id %s", line.CartItemID)
		seen[line.CartItemID] = true
	}
	assert.Contains(t, GenerateItemID(models.NewCartItem(apples(), 1, "", "")), "1-no-color-no-size-")
}

func TestUpdateItemQuantityFloor(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		set     float64
		want    float64
	}{
		{"unit zero", tshirt(), 0, 1},
		{"unit negative", tshirt(), -4, 1},
		{"unit fractional rounds down", tshirt(), 2.7, 2},
		{"weight zero", apples(), 0, 0.1},
		{"weight negative", apples(), -1, 0.1},
		{"weight fractional kept", apples(), 1.3, 1.3},
		{"weight finer than the picker step kept", apples(), 0.25, 0.25},
		{"weight just below the floor", apples(), 0.05, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			line := c.AddItem(models.NewCartItem(tt.product, 2, "", ""))

			updated, ok := c.UpdateItem(line.CartItemID, models.CartItemPatch{Quantity: ptr(tt.set)})

			require.True(t, ok)
			assert.InDelta(t, tt.want, updated.Quantity, 1e-9)
		})
	}
}

func TestUpdateItemColorSwapsImages(t *testing.T) {
	c := New()
	line := c.AddItem(models.NewCartItem(tshirt(), 1, "Black", "M"))
	assert.Equal(t, []string{"black-1"}, line.Images)

	updated, ok := c.UpdateItem(line.CartItemID, models.CartItemPatch{SelectedColor: ptr("White")})
	require.True(t, ok)
	assert.Equal(t, []string{"white-1", "white-2"}, updated.Images)

	// Red is offered but has no override, so the default set comes back
	updated, _ = c.UpdateItem(line.CartItemID, models.CartItemPatch{SelectedColor: ptr("Red")})
	assert.Equal(t, []string{"default-1", "default-2"}, updated.Images)
}

func TestUpdateItemSizeAndExplicitImages(t *testing.T) {
	c := New()
	line := c.AddItem(models.NewCartItem(tshirt(), 1, "Black", "M"))

	updated, ok := c.UpdateItem(line.CartItemID, models.CartItemPatch{
		SelectedSize: ptr("L"),
		Images:       []string{"custom"},
	})

	require.True(t, ok)
	assert.Equal(t, "L", updated.SelectedSize)
	assert.Equal(t, "Black", updated.SelectedColor)
	assert.Equal(t, []string{"custom"}, updated.Images)
}

func TestUpdateItemIntoHeldVariantMergesLines(t *testing.T) {
	c := New(sequentialIDs())
	black := c.AddItem(models.NewCartItem(tshirt(), 2, "Black", "M"))
	white := c.AddItem(models.NewCartItem(tshirt(), 3, "White", "M"))

	updated, ok := c.UpdateItem(white.CartItemID, models.CartItemPatch{SelectedColor: ptr("Black")})

	require.True(t, ok)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, white.CartItemID, updated.CartItemID, "the addressed line survives")
	assert.Equal(t, 5.0, updated.Quantity)
	assert.Equal(t, updated, items[0])

	_, ok = c.Get(black.CartItemID)
	assert.False(t, ok)
}

func TestUpdateItemLegacyLineTakesMergedID(t *testing.T) {
	c := New(sequentialIDs())
	tagged := c.AddItem(models.NewCartItem(tshirt(), 1, "Black", "L"))
	c.Import([]models.CartItem{models.NewCartItem(tshirt(), 1, "Black", "M")})

	updated, ok := c.UpdateItem("2", models.CartItemPatch{SelectedSize: ptr("L")})

	require.True(t, ok)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, tagged.CartItemID, updated.CartItemID)
	assert.Equal(t, 2.0, updated.Quantity)
}

func TestUpdateItemLegacyLineByProductID(t *testing.T) {
	c := New()
	c.Import([]models.CartItem{models.NewCartItem(apples(), 1, "", "")})

	updated, ok := c.UpdateItem("1", models.CartItemPatch{Quantity: ptr(2.5)})

	require.True(t, ok)
	assert.Equal(t, 2.5, updated.Quantity)
	assert.False(t, updated.Tagged())
}

func TestUpdateItemTaggedLineNotAddressableByProductID(t *testing.T) {
	c := New()
	c.AddItem(models.NewCartItem(apples(), 1, "", ""))

	_, ok := c.UpdateItem("1", models.CartItemPatch{Quantity: ptr(3.0)})

	assert.False(t, ok)
	assert.Equal(t, 1.0, c.Items()[0].Quantity)
}

func TestUpdateAndRemoveMissingAreNoOps(t *testing.T) {
	c := New()
	c.AddItem(models.NewCartItem(tshirt(), 1, "", ""))
	before := c.Items()

	_, ok := c.UpdateItem("nope", models.CartItemPatch{Quantity: ptr(9.0)})
	assert.False(t, ok)
	assert.False(t, c.RemoveItem("nope"))
	assert.False(t, c.RemoveItem(""))
	assert.Equal(t, before, c.Items())
}

func TestRemoveItem(t *testing.T) {
	c := New()
	keep := c.AddItem(models.NewCartItem(tshirt(), 1, "Black", "S"))
	drop := c.AddItem(models.NewCartItem(tshirt(), 1, "White", "S"))
	c.Import([]models.CartItem{models.NewCartItem(apples(), 1, "", "")})

	assert.True(t, c.RemoveItem(drop.CartItemID))
	assert.True(t, c.RemoveItem("1"))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, keep.CartItemID, items[0].CartItemID)
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(models.NewCartItem(tshirt(), 1, "", ""))
	c.Clear()

	assert.Zero(t, c.Len())
	assert.Empty(t, c.Items())
}

func TestItemsReturnsCopies(t *testing.T) {
	c := New()
	line := c.AddItem(models.NewCartItem(tshirt(), 1, "Black", "M"))

	items := c.Items()
	items[0].Quantity = 99
	items[0].Images[0] = "mutated"
	items[0].Colors[0] = "Purple"

	got, ok := c.Get(line.CartItemID)
	require.True(t, ok)
	assert.Equal(t, 1.0, got.Quantity)
	assert.Equal(t, "black-1", got.Images[0])
	assert.Equal(t, "Black", got.Colors[0])
}
