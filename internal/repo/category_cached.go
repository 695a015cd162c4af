package repo

import (
	"encoding/json"
	"log"
	"time"

	"github.com/kozlekmarchewkowy/warehouse-manager/internal/cache"
	"github.com/kozlekmarchewkowy/warehouse-manager/internal/models"
)

const categoryListKey = "categories:all"

// CachedCategoryRepository is a read-through cache over a CategoryRepository.
// GetAll results are kept until the TTL elapses or a category mutation
// invalidates them. Product data is never cached.
type CachedCategoryRepository struct {
	inner CategoryRepository
	store cache.Store
	ttl   time.Duration
}

func NewCachedCategoryRepository(inner CategoryRepository, store cache.Store, ttl time.Duration) *CachedCategoryRepository {
	return &CachedCategoryRepository{inner: inner, store: store, ttl: ttl}
}

func (r *CachedCategoryRepository) Create(category models.Category) (models.Category, error) {
	created, err := r.inner.Create(category)
	if err != nil {
		return models.Category{}, err
	}
	r.invalidate()
	return created, nil
}

func (r *CachedCategoryRepository) GetAll() ([]models.Category, error) {
	if data, ok, err := r.store.Get(categoryListKey); err == nil && ok {
		var categories []models.Category
		if err := json.Unmarshal(data, &categories); err == nil {
			return categories, nil
		}
	}

	categories, err := r.inner.GetAll()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(categories); err == nil {
		if err := r.store.Set(categoryListKey, data, r.ttl); err != nil {
			log.Printf("category cache set failed: %v", err)
		}
	}
	return categories, nil
}

func (r *CachedCategoryRepository) Delete(id int) error {
	if err := r.inner.Delete(id); err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *CachedCategoryRepository) invalidate() {
	if err := r.store.Invalidate(categoryListKey); err != nil {
		log.Printf("category cache invalidation failed: %v", err)
	}
}
