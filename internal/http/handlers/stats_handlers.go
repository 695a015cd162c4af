package handlers

import (
	"log"
	"net/http"

	"github.com/kozlekmarchewkowy/warehouse-manager/internal/stats"
)

// GetStatsSummaryHandler godoc
// @Summary Warehouse summary statistics
// @Description Product count, total stocked units and total stock value
// @Tags stats
// @Produce json
// @Success 200 {object} stats.Summary
// @Failure 500 {string} string "Internal error"
// @Router /stats/summary [get]
func GetStatsSummaryHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAllFlattened()
	if err != nil {
		http.Error(w, "failed to fetch stats", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats.Summarize(products)); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetCategoryStatsHandler godoc
// @Summary Product count per category
// @Description Histogram of products grouped by category label, largest first
// @Tags stats
// @Produce json
// @Success 200 {array} stats.CategoryCount
// @Failure 500 {string} string "Internal error"
// @Router /stats/categories [get]
func GetCategoryStatsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAllFlattened()
	if err != nil {
		http.Error(w, "failed to fetch stats", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats.CategoryHistogram(products)); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
