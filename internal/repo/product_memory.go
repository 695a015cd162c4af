package repo

import (
	"sort"

	"github.com/kozlekmarchewkowy/warehouse-manager/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products   []models.Product
	nextID     int
	categories *InMemoryCategoryRepository
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// SetCategoryRepository links the category repository used to resolve
// category names and to enforce the reference check on Create.
func (r *InMemoryProductRepository) SetCategoryRepository(categories *InMemoryCategoryRepository) {
	r.categories = categories
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	if r.categories != nil {
		if _, err := r.categories.GetByID(product.CategoryID); err != nil {
			return models.Product{}, ErrCategoryMissing
		}
	}
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetAllFlattened retrieves all products newest-first with category names
// resolved, substituting the missing-category label for dangling references.
func (r *InMemoryProductRepository) GetAllFlattened() ([]models.FlatProduct, error) {
	flattened := make([]models.FlatProduct, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		p := r.products[i]
		label := models.MissingCategoryLabel
		if r.categories != nil {
			if c, err := r.categories.GetByID(p.CategoryID); err == nil {
				label = c.Name
			}
		}
		flattened = append(flattened, models.FlatProduct{
			ID:            p.ID,
			Name:          p.Name,
			CategoryLabel: label,
			Quantity:      p.Quantity,
			Price:         p.Price,
		})
	}
	return flattened, nil
}

// GetAllByName retrieves all products ordered by name.
func (r *InMemoryProductRepository) GetAllByName() ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// DeleteMany removes every product whose id is in ids, skipping unknown ids.
func (r *InMemoryProductRepository) DeleteMany(ids []int) (int, error) {
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	kept := r.products[:0]
	deleted := 0
	for _, p := range r.products {
		if wanted[p.ID] {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	r.products = kept
	return deleted, nil
}

// DeleteAll removes every product.
func (r *InMemoryProductRepository) DeleteAll() (int, error) {
	deleted := len(r.products)
	r.products = []models.Product{}
	return deleted, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}

func (r *InMemoryProductRepository) countByCategory(categoryID int) int {
	count := 0
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count
}
