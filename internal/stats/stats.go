// Package stats derives the dashboard aggregates from the flattened product
// listing.
package stats

import (
	"sort"

	"github.com/kozlekmarchewkowy/warehouse-manager/internal/models"
)

// Summary holds the headline warehouse metrics.
type Summary struct {
	ProductCount int     `json:"product_count"`
	TotalUnits   int     `json:"total_units"`
	TotalValue   float64 `json:"total_value"`
}

// CategoryCount is one bar of the per-category histogram.
type CategoryCount struct {
	CategoryLabel string `json:"category"`
	Count         int    `json:"count"`
}

// Summarize computes the product count, total stocked units and total stock
// value (quantity x price). An empty listing yields the zero Summary.
func Summarize(products []models.FlatProduct) Summary {
	var s Summary
	s.ProductCount = len(products)
	for _, p := range products {
		s.TotalUnits += p.Quantity
		s.TotalValue += float64(p.Quantity) * p.Price
	}
	return s
}

// CategoryHistogram groups the flattened listing by category label. Bars are
// ordered by descending count, ascending label on ties.
func CategoryHistogram(products []models.FlatProduct) []CategoryCount {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.CategoryLabel]++
	}

	histogram := make([]CategoryCount, 0, len(counts))
	for label, count := range counts {
		histogram = append(histogram, CategoryCount{CategoryLabel: label, Count: count})
	}
	sort.Slice(histogram, func(i, j int) bool {
		if histogram[i].Count != histogram[j].Count {
			return histogram[i].Count > histogram[j].Count
		}
		return histogram[i].CategoryLabel < histogram[j].CategoryLabel
	})
	return histogram
}
