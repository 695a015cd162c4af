package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"

	handler "github.com/kozlekmarchewkowy/warehouse-manager/internal/http/handlers"
	"github.com/kozlekmarchewkowy/warehouse-manager/internal/repo"
)

var (
	categoryRepo *repo.InMemoryCategoryRepository
	productRepo  *repo.InMemoryProductRepository
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	categoryRepo = repo.NewInMemoryCategoryRepository()
	productRepo = repo.NewInMemoryProductRepository()
	categoryRepo.SetProductRepository(productRepo)
	productRepo.SetCategoryRepository(categoryRepo)

	handler.SetCategoryRepo(categoryRepo)
	handler.SetProductRepo(productRepo)
}

func clearAll() {
	productRepo.Clear()
	categoryRepo.Clear()
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCategory(r http.Handler, c handler.CategoryRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/categories", c)
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/products", p)
}

// mustCreateCategory creates a category through the API and returns its id.
func mustCreateCategory(r http.Handler, name string) int {
	w := createCategory(r, handler.CategoryRequest{Name: name})
	if w.Code != http.StatusCreated {
		panic("category creation failed in test setup")
	}
	var resp handler.CategoryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(err)
	}
	return resp.Id
}

// mustCreateProduct creates a product through the API and returns its id.
func mustCreateProduct(r http.Handler, p handler.ProductRequest) int {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic("product creation failed in test setup")
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(err)
	}
	return resp.Id
}
