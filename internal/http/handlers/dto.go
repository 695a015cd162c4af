package handlers

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ProductRequest struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	CategoryId int     `json:"category_id"`
}

type ProductResponse struct {
	Id         int     `json:"id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	CategoryId int     `json:"category_id"`
}

// FlatProductResponse is a product row with its category name resolved.
type FlatProductResponse struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ProductNameResponse is the lightweight row used by deletion selectors.
type ProductNameResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type BulkDeleteRequest struct {
	Ids []int `json:"ids"`
}

type DeleteResult struct {
	Deleted int `json:"deleted"`
}
