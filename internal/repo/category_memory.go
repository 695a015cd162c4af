package repo

import (
	"sort"

	"github.com/kozlekmarchewkowy/warehouse-manager/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of CategoryRepository.
type InMemoryCategoryRepository struct {
	categories []models.Category
	nextID     int
	products   *InMemoryProductRepository
}

// NewInMemoryCategoryRepository creates a new instance of InMemoryCategoryRepository.
func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: []models.Category{},
		nextID:     1,
	}
}

// SetProductRepository links the product repository used for the
// referential check on Delete.
func (r *InMemoryCategoryRepository) SetProductRepository(products *InMemoryProductRepository) {
	r.products = products
}

// Create adds a new category to the repository.
func (r *InMemoryCategoryRepository) Create(category models.Category) (models.Category, error) {
	category.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, category)
	return category, nil
}

// GetAll retrieves all categories ordered by name.
func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	categories := make([]models.Category, len(r.categories))
	copy(categories, r.categories)
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// GetByID retrieves a category by its ID.
func (r *InMemoryCategoryRepository) GetByID(id int) (models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

// Delete removes a category, refusing while products still reference it.
func (r *InMemoryCategoryRepository) Delete(id int) error {
	for i, c := range r.categories {
		if c.ID != id {
			continue
		}
		if r.products != nil && r.products.countByCategory(id) > 0 {
			return ErrCategoryInUse
		}
		r.categories = append(r.categories[:i], r.categories[i+1:]...)
		return nil
	}
	return ErrCategoryNotFound
}

// Clear removes all categories without any referential check. Tests use it to
// simulate out-of-band deletion.
func (r *InMemoryCategoryRepository) Clear() {
	r.categories = []models.Category{}
}
