package queries

// GetProductQuery represents a query to get a single product
type GetProductQuery struct {
	ProductID string
	Category  string
}

// GetProductResult is the stored record, numbers as decimals.
type GetProductResult struct {
	Item map[string]any
}
