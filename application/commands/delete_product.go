package commands

// DeleteProductCommand removes a record by product ID.
type DeleteProductCommand struct {
	ProductID string
}

// DeleteProductResult holds the attributes the record had before deletion.
type DeleteProductResult struct {
	Deleted map[string]any
}
