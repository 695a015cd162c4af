package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	models "github.com/kozlekmarchewkowy/warehouse-manager/internal/models"
	repo "github.com/kozlekmarchewkowy/warehouse-manager/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product assigned to an existing category
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "Category does not exist"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product := models.Product{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Price:      req.Price,
		CategoryID: req.CategoryId,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryMissing) {
			http.Error(w, "could not create product: category does not exist", http.StatusConflict)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	resp := ProductResponse{
		Id:         created.ID,
		Name:       created.Name,
		Quantity:   created.Quantity,
		Price:      created.Price,
		CategoryId: created.CategoryID,
	}
	if err := writeJSON(w, http.StatusCreated, resp); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetProductsHandler godoc
// @Summary List all products with category names
// @Description Returns the flattened listing, newest first; products whose category was deleted keep a placeholder label
// @Tags products
// @Produce json
// @Success 200 {array} FlatProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAllFlattened()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]FlatProductResponse, len(products))
	for i, p := range products {
		response[i] = FlatProductResponse{
			Id:       p.ID,
			Name:     p.Name,
			Category: p.CategoryLabel,
			Quantity: p.Quantity,
			Price:    p.Price,
		}
	}
	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetProductNamesHandler godoc
// @Summary List product names
// @Description Lightweight id/name listing ordered by name, for deletion selectors
// @Tags products
// @Produce json
// @Success 200 {array} ProductNameResponse
// @Failure 500 {string} string "Internal error"
// @Router /products/names [get]
func GetProductNamesHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAllByName()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductNameResponse, len(products))
	for i, p := range products {
		response[i] = ProductNameResponse{Id: p.ID, Name: p.Name}
	}
	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	resp := ProductResponse{
		Id:         product.ID,
		Name:       product.Name,
		Quantity:   product.Quantity,
		Price:      product.Price,
		CategoryId: product.CategoryID,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BulkDeleteProductsHandler godoc
// @Summary Delete a set of products
// @Description Removes every listed id present in the store; unknown ids are skipped
// @Tags products
// @Accept json
// @Produce json
// @Param ids body BulkDeleteRequest true "Product ids to delete"
// @Success 200 {object} DeleteResult
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /products/bulk-delete [post]
func BulkDeleteProductsHandler(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	deleted, err := productRepo.DeleteMany(req.Ids)
	if err != nil {
		http.Error(w, "could not delete products", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, DeleteResult{Deleted: deleted}); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteAllProductsHandler godoc
// @Summary Delete every product
// @Description Irreversibly clears the product table; categories are untouched
// @Tags products
// @Produce json
// @Success 200 {object} DeleteResult
// @Failure 500 {string} string "Internal error"
// @Router /products [delete]
func DeleteAllProductsHandler(w http.ResponseWriter, r *http.Request) {
	deleted, err := productRepo.DeleteAll()
	if err != nil {
		http.Error(w, "could not delete products", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, DeleteResult{Deleted: deleted}); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
