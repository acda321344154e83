// Package catalog serves the read-only product catalog. Products are seeded
// once at startup and only read afterwards.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProductNotFound = errors.New("product not found")

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Store struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewStore(db *gorm.DB, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{
		db:     db,
		logger: logger.WithField("component", "catalog"),
	}
}

// Migrate creates or updates the products table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("migrate products: %w", err)
	}
	return nil
}

// Seed upserts products by id, so running it on every start is safe.
func (s *Store) Seed(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&products).Error
	if err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	s.logger.WithField("count", len(products)).Info("catalog seeded")
	return nil
}

// List returns the products of category in display order. An empty category
// or "all" returns every product.
func (s *Store) List(ctx context.Context, category models.Category) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})
	if category != "" && category != models.CategoryAll {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Order("position ASC").Order("id ASC").Find(&products).Error; err != nil {
		s.logger.WithError(err).WithField("category", category).Error("list products failed")
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Search is List narrowed to products whose name or description, in either
// language, contains term. A blank term behaves like List.
func (s *Store) Search(ctx context.Context, category models.Category, term string) ([]models.Product, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.List(ctx, category)
	}

	like := "%" + likeEscaper.Replace(term) + "%"
	query := s.db.WithContext(ctx).Model(&models.Product{}).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR name_ar LIKE ? ESCAPE '\' OR description_ar LIKE ? ESCAPE '\'`, like, like, like, like)
	if category != "" && category != models.CategoryAll {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Order("position ASC").Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

func (s *Store) Get(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return product, nil
}

// ImagesFor returns the image set of product id for the selected color.
func (s *Store) ImagesFor(ctx context.Context, id, color string) ([]string, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return product.ImagesFor(color), nil
}

// Categories summarizes the catalog categories with labels in both
// languages, l picking the display label, and the number of products in each.
func (s *Store) Categories(ctx context.Context, l i18n.Locale) ([]models.CategorySummary, error) {
	var rows []struct {
		Category models.Category
		Count    int
	}
	err := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("category, count(*) AS count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	counts := make(map[models.Category]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}

	out := make([]models.CategorySummary, 0, len(models.Categories))
	for _, c := range models.Categories {
		out = append(out, models.CategorySummary{
			ID:     c,
			EName:  c.Label(i18n.English),
			ARName: c.Label(i18n.Arabic),
			Label:  c.Label(l),
			Count:  counts[c],
		})
	}
	return out, nil
}
