package catalog

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) (*Store, *test.Hook) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	store := NewStore(db, log)
	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Seed(ctx, MockProducts()))
	return store, hook
}

func TestSeedIsIdempotent(t *testing.T) {
	store, hook := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, MockProducts()))

	all, err := store.List(ctx, models.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, 12)

	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, "catalog", hook.LastEntry().Data["component"])
}

func TestListKeepsDisplayOrder(t *testing.T) {
	store, _ := newTestStore(t)

	all, err := store.List(context.Background(), "")
	require.NoError(t, err)

	ids := make([]string, 0, len(all))
	for _, p := range all {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}, ids)
}

func TestListByCategory(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		category models.Category
		want     []string
	}{
		{models.CategoryFood, []string{"1", "4", "7", "10"}},
		{models.CategoryCloth, []string{"2", "5", "8", "11"}},
		{models.CategoryElectronic, []string{"3", "6", "9", "12"}},
		{"toys", nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			products, err := store.List(ctx, tt.category)
			require.NoError(t, err)

			var ids []string
			for _, p := range products {
				assert.Equal(t, tt.category, p.Category)
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSearch(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		category models.Category
		term     string
		want     []string
	}{
		{"english name any case", "", "WATCH", []string{"6"}},
		{"description", models.CategoryAll, "battery", []string{"3", "9"}},
		{"arabic name", "", "عسل", []string{"10"}},
		{"narrowed by category", models.CategoryCloth, "black", nil},
		{"blank term lists category", models.CategoryFood, "  ", []string{"1", "4", "7", "10"}},
		{"percent matches literally", "", "%", nil},
		{"underscore matches literally", "", "_", nil},
		{"backslash matches literally", "", `\`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := store.Search(ctx, tt.category, tt.term)
			require.NoError(t, err)

			var ids []string
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestGetRoundTripsProductFields(t *testing.T) {
	store, _ := newTestStore(t)

	p, err := store.Get(context.Background(), "2")
	require.NoError(t, err)

	assert.Equal(t, "Cotton T-Shirt", p.Name)
	assert.Equal(t, "تي شيرت قطني", p.NameAr)
	assert.True(t, price("19.99").Equal(p.PriceUSD), "got %s", p.PriceUSD)
	assert.True(t, price("500000").Equal(p.PriceSYP), "got %s", p.PriceSYP)
	assert.Equal(t, []string{"Black", "White", "Blue", "Red"}, p.Colors)
	assert.Equal(t, []string{"S", "M", "L", "XL"}, p.Sizes)
	assert.Len(t, p.ImageVariations, 4)
	assert.Equal(t, models.QuantityUnit, p.QuantityType)
	assert.True(t, p.InStock)
}

func TestGetMissingProduct(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestImagesFor(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	headphones, err := store.Get(ctx, "3")
	require.NoError(t, err)

	silver, err := store.ImagesFor(ctx, "3", "Silver")
	require.NoError(t, err)
	assert.Equal(t, headphones.ImageVariations["Silver"], silver)

	// the apples list overrides for colors they do not offer
	apples, err := store.ImagesFor(ctx, "1", "Black")
	require.NoError(t, err)
	assert.Len(t, apples, 3)

	_, err = store.ImagesFor(ctx, "missing", "")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCategories(t *testing.T) {
	store, _ := newTestStore(t)

	cats, err := store.Categories(context.Background(), i18n.Arabic)
	require.NoError(t, err)
	require.Len(t, cats, 3)

	for _, c := range cats {
		assert.Equal(t, 4, c.Count, c.ID)
		assert.NotEmpty(t, c.EName)
		assert.NotEmpty(t, c.ARName)
		assert.Equal(t, c.ARName, c.Label)
	}
	assert.Equal(t, models.CategoryFood, cats[0].ID)
}
