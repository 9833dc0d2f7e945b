package commands

// CreateProductCommand writes a full product record from a decoded payload.
type CreateProductCommand struct {
	Payload map[string]any

	// Caller identity from the authorizer claims. Informational only.
	UserID string
	Email  string
}

// CreateProductResult is returned after a successful create.
type CreateProductResult struct {
	ProductID string
	Category  string
}
