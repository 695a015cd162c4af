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

// CreateCategoryHandler godoc
// @Summary Create a new category
// @Description Adds a category that products can be assigned to
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category to add"
// @Success 201 {object} CategoryResponse
// @Failure 400 {array} ValidationError
// @Router /categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCategory(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	created, err := categoryRepo.Create(category)
	if err != nil {
		http.Error(w, "could not create category", http.StatusInternalServerError)
		return
	}

	resp := CategoryResponse{
		Id:          created.ID,
		Name:        created.Name,
		Description: created.Description,
	}
	if err := writeJSON(w, http.StatusCreated, resp); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetCategoriesHandler godoc
// @Summary List all categories
// @Description Returns all categories ordered by name; served from a short-lived cache
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 500 {string} string "Internal error"
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			Id:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		}
	}
	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteCategoryHandler godoc
// @Summary Delete a category
// @Description Fails while any product still references the category
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Category still referenced"
// @Failure 500 {string} string "Internal error"
// @Router /categories/{id} [delete]
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	if err := categoryRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrCategoryInUse) {
			http.Error(w, "cannot delete category: remove or reassign its products first", http.StatusConflict)
			return
		}
		http.Error(w, "could not delete category", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
