package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/kozlekmarchewkowy/warehouse-manager/docs"
	"github.com/kozlekmarchewkowy/warehouse-manager/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Post("/categories", handlers.CreateCategoryHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)

	r.Post("/products", handlers.CreateProductHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/names", handlers.GetProductNamesHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Delete("/products/{id}", handlers.DeleteProductHandler)
	r.Post("/products/bulk-delete", handlers.BulkDeleteProductsHandler)
	r.Delete("/products", handlers.DeleteAllProductsHandler)

	r.Get("/stats/summary", handlers.GetStatsSummaryHandler)
	r.Get("/stats/categories", handlers.GetCategoryStatsHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
