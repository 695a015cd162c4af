package repo

import (
	"errors"

	"github.com/kozlekmarchewkowy/warehouse-manager/internal/models"
)

// CategoryRepository defines the interface for category data operations.
// There is no update operation; categories are created and deleted only.
type CategoryRepository interface {
	Create(category models.Category) (models.Category, error)
	GetAll() ([]models.Category, error)
	Delete(id int) error
}

// ErrCategoryNotFound is returned when a category is not found in the repository.
var ErrCategoryNotFound = errors.New("category not found")

// ErrCategoryInUse is returned when deleting a category that products still
// reference.
var ErrCategoryInUse = errors.New("category is referenced by products")
