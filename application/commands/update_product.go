package commands

import (
	"products-backend/domain/product"
)

// UpdateProductCommand applies the mutable attributes found in Payload to the
// record at Key.
type UpdateProductCommand struct {
	Key     product.Key
	Payload map[string]any
}

// UpdateProductResult holds the post-update values of the updated attributes.
type UpdateProductResult struct {
	UpdatedAttributes map[string]any
}
