package repo

import (
	"errors"

	"github.com/kozlekmarchewkowy/warehouse-manager/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAllFlattened() ([]models.FlatProduct, error)
	GetAllByName() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Delete(id int) error
	DeleteMany(ids []int) (int, error)
	DeleteAll() (int, error)
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrCategoryMissing is returned when creating a product whose category_id
// does not reference an existing category.
var ErrCategoryMissing = errors.New("referenced category does not exist")
