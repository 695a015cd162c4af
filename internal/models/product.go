package models

// Product represents a stocked item belonging to exactly one category.
// Products are immutable after creation; the only lifecycle transition is
// deletion.
type Product struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	CategoryID int     `json:"category_id"`
}

// MissingCategoryLabel is shown in place of a category name when a product's
// category row no longer exists (deleted out of band).
const MissingCategoryLabel = "missing (deleted?)"

// FlatProduct is a product annotated with its category's display name instead
// of the raw reference.
type FlatProduct struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	CategoryLabel string  `json:"category"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
}
