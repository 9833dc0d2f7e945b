package ports

import (
	"context"

	"products-backend/domain/events"
	"products-backend/domain/product"
)

// ProductRepository defines the interface for product persistence.
// Attribute maps returned hold numbers as decimal.Decimal.
type ProductRepository interface {
	// Put writes the full record, replacing any record with the same key.
	Put(ctx context.Context, p *product.Product) error

	// Get returns the record for key, or nil when it does not exist.
	Get(ctx context.Context, key product.Key) (map[string]any, error)

	// Update applies set to the record at key and returns the new values of
	// the updated attributes only.
	Update(ctx context.Context, key product.Key, set product.UpdateSet) (map[string]any, error)

	// Delete removes the record at key and returns its prior attributes, or
	// nil when nothing was deleted.
	Delete(ctx context.Context, key product.Key) (map[string]any, error)
}

// EventBus publishes domain events
type EventBus interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}
