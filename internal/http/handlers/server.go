package handlers

import (
	repo "github.com/kozlekmarchewkowy/warehouse-manager/internal/repo"
)

var (
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
)

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}
