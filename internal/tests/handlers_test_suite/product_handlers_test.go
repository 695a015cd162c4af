package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/kozlekmarchewkowy/warehouse-manager/internal/http"
	handler "github.com/kozlekmarchewkowy/warehouse-manager/internal/http/handlers"
	"github.com/kozlekmarchewkowy/warehouse-manager/internal/models"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	catID := mustCreateCategory(r, "Tools")
	w := createProduct(r, handler.ProductRequest{Name: "Hammer", Quantity: 5, Price: 9.99, CategoryId: catID})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Hammer" {
		t.Errorf("expected name 'Hammer', got %v", resp.Name)
	}
	if resp.Quantity != 5 {
		t.Errorf("expected quantity 5, got %v", resp.Quantity)
	}
	if resp.Price != 9.99 {
		t.Errorf("expected price 9.99, got %v", resp.Price)
	}
	if resp.CategoryId != catID {
		t.Errorf("expected category id %d, got %d", catID, resp.CategoryId)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	catID := mustCreateCategory(r, "Tools")

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name",
			payload:        handler.ProductRequest{Name: "", Quantity: 1, Price: 1.0, CategoryId: catID},
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Negative quantity",
			payload:        handler.ProductRequest{Name: "Saw", Quantity: -1, Price: 1.0, CategoryId: catID},
			expectedErrors: []string{"Quantity"},
		},
		{
			name:           "Negative price",
			payload:        handler.ProductRequest{Name: "Saw", Quantity: 1, Price: -0.01, CategoryId: catID},
			expectedErrors: []string{"Price"},
		},
		{
			name:           "No category selected",
			payload:        handler.ProductRequest{Name: "Saw", Quantity: 1, Price: 1.0},
			expectedErrors: []string{"CategoryId"},
		},
		{
			name:           "Everything wrong at once",
			payload:        handler.ProductRequest{Name: " ", Quantity: -2, Price: -1.0},
			expectedErrors: []string{"Name", "Quantity", "Price", "CategoryId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	badJSON := `{"name": "Hammer" "price": 10}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestCreateProductHandler_UnknownCategory(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Hammer", Quantity: 5, Price: 9.99, CategoryId: 999})

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "category does not exist") {
		t.Errorf("expected a missing-category message, got %q", w.Body.String())
	}
}

func TestGetProductsHandler_NewestFirstWithCategoryName(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	catID := mustCreateCategory(r, "Tools")
	hammerID := mustCreateProduct(r, handler.ProductRequest{Name: "Hammer", Quantity: 5, Price: 9.99, CategoryId: catID})
	sawID := mustCreateProduct(r, handler.ProductRequest{Name: "Saw", Quantity: 2, Price: 19.50, CategoryId: catID})

	w := doRequest(r, http.MethodGet, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.FlatProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp))
	}
	if resp[0].Id != sawID || resp[1].Id != hammerID {
		t.Errorf("expected newest-first order %d,%d, got %d,%d", sawID, hammerID, resp[0].Id, resp[1].Id)
	}
	for _, p := range resp {
		if p.Category != "Tools" {
			t.Errorf("expected category label 'Tools', got %q", p.Category)
		}
	}
}

func TestGetProductsHandler_MissingCategorySentinel(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	catID := mustCreateCategory(r, "Tools")
	mustCreateProduct(r, handler.ProductRequest{Name: "Hammer", Quantity: 5, Price: 9.99, CategoryId: catID})

	// Simulate the category vanishing out of band, bypassing the
	// referential check.
	categoryRepo.Clear()

	w := doRequest(r, http.MethodGet, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.FlatProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected the orphaned product to still be listed, got %d rows", len(resp))
	}
	if resp[0].Category != models.MissingCategoryLabel {
		t.Errorf("expected sentinel label %q, got %q", models.MissingCategoryLabel, resp[0].Category)
	}
}

func TestGetProductNamesHandler_OrderedByName(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	catID := mustCreateCategory(r, "Tools")
	mustCreateProduct(r, handler.ProductRequest{Name: "Wrench", Quantity: 1, Price: 5, CategoryId: catID})
	mustCreateProduct(r, handler.ProductRequest{Name: "Anvil", Quantity: 1, Price: 50, CategoryId: catID})

	w := doRequest(r, http.MethodGet, "/products/names", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.ProductNameResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(resp))
	}
	if resp[0].Name != "Anvil" || resp[1].Name != "Wrench" {
		t.Errorf("expected name-ascending order, got %q then %q", resp[0].Name, resp[1].Name)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	catID := mustCreateCategory(r, "Tools")
	id := mustCreateProduct(r, handler.ProductRequest{Name: "Hammer", Quantity: 5, Price: 9.99, CategoryId: catID})

	w := doRequest(r, http.MethodDelete, "/products/"+itoa(id), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doRequest(r, http.MethodDelete, "/products/"+itoa(id), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestBulkDeleteProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	catID := mustCreateCategory(r, "Tools")
	hammerID := mustCreateProduct(r, handler.ProductRequest{Name: "Hammer", Quantity: 5, Price: 9.99, CategoryId: catID})
	sawID := mustCreateProduct(r, handler.ProductRequest{Name: "Saw", Quantity: 2, Price: 19.50, CategoryId: catID})
	wrenchID := mustCreateProduct(r, handler.ProductRequest{Name: "Wrench", Quantity: 1, Price: 5, CategoryId: catID})

	// One unknown id in the set is tolerated.
	w := doRequest(r, http.MethodPost, "/products/bulk-delete", handler.BulkDeleteRequest{Ids: []int{hammerID, wrenchID, 999}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.DeleteResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.Deleted != 2 {
		t.Errorf("expected 2 deletions, got %d", result.Deleted)
	}

	var remaining []handler.FlatProductResponse
	wl := doRequest(r, http.MethodGet, "/products", nil)
	if err := json.NewDecoder(wl.Body).Decode(&remaining); err != nil {
		t.Fatalf("error decoding listing: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Id != sawID {
		t.Errorf("expected only product %d to remain, got %+v", sawID, remaining)
	}
}

func TestBulkDeleteProductsHandler_EmptySet(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/products/bulk-delete", handler.BulkDeleteRequest{Ids: []int{}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.DeleteResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.Deleted != 0 {
		t.Errorf("expected 0 deletions, got %d", result.Deleted)
	}
}

func TestDeleteAllProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	catID := mustCreateCategory(r, "Tools")
	mustCreateProduct(r, handler.ProductRequest{Name: "Hammer", Quantity: 5, Price: 9.99, CategoryId: catID})
	mustCreateProduct(r, handler.ProductRequest{Name: "Saw", Quantity: 2, Price: 19.50, CategoryId: catID})

	w := doRequest(r, http.MethodDelete, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var result handler.DeleteResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.Deleted != 2 {
		t.Errorf("expected 2 deletions, got %d", result.Deleted)
	}

	// Products gone, categories untouched.
	var products []handler.FlatProductResponse
	wp := doRequest(r, http.MethodGet, "/products", nil)
	if err := json.NewDecoder(wp.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding listing: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected an empty product listing, got %d rows", len(products))
	}

	var categories []handler.CategoryResponse
	wc := doRequest(r, http.MethodGet, "/categories", nil)
	if err := json.NewDecoder(wc.Body).Decode(&categories); err != nil {
		t.Fatalf("error decoding categories: %v", err)
	}
	if len(categories) != 1 {
		t.Errorf("expected categories to survive, got %d", len(categories))
	}

	// A second run is a no-op, not an error.
	w = doRequest(r, http.MethodDelete, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK on repeat, got %d", w.Code)
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.Deleted != 0 {
		t.Errorf("expected 0 deletions on repeat, got %d", result.Deleted)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	catID := mustCreateCategory(r, "Tools")
	id := mustCreateProduct(r, handler.ProductRequest{Name: "Hammer", Quantity: 5, Price: 9.99, CategoryId: catID})

	w := doRequest(r, http.MethodGet, "/products/"+itoa(id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Id != id || resp.Name != "Hammer" {
		t.Errorf("unexpected product: %+v", resp)
	}

	w = doRequest(r, http.MethodGet, "/products/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
}
