package events

import (
	"time"

	"products-backend/domain/product"

	"github.com/google/uuid"
)

// SourceProducts is the EventBridge source for product events.
const SourceProducts = "products.api"

// Event types
const (
	TypeProductCreated = "product.created"
	TypeProductUpdated = "product.updated"
	TypeProductDeleted = "product.deleted"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetEventID() string
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetEventID() string      { return e.EventID }
func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

func newBase(eventType string, key product.Key, timestamp time.Time) BaseEvent {
	return BaseEvent{
		EventID:     uuid.NewString(),
		AggregateID: key.ProductID,
		EventType:   eventType,
		Timestamp:   timestamp,
	}
}

// ProductCreated is raised when a record is written by a create.
type ProductCreated struct {
	BaseEvent
	ProductID string `json:"product_id"`
	Category  string `json:"category"`
	UserID    string `json:"user_id,omitempty"`
}

// NewProductCreated creates a ProductCreated event
func NewProductCreated(key product.Key, userID string, timestamp time.Time) ProductCreated {
	return ProductCreated{
		BaseEvent: newBase(TypeProductCreated, key, timestamp),
		ProductID: key.ProductID,
		Category:  key.Category,
		UserID:    userID,
	}
}

// ProductUpdated is raised after a partial update.
type ProductUpdated struct {
	BaseEvent
	ProductID         string   `json:"product_id"`
	Category          string   `json:"category"`
	UpdatedAttributes []string `json:"updated_attributes"`
}

// NewProductUpdated creates a ProductUpdated event
func NewProductUpdated(key product.Key, attributes []string, timestamp time.Time) ProductUpdated {
	return ProductUpdated{
		BaseEvent:         newBase(TypeProductUpdated, key, timestamp),
		ProductID:         key.ProductID,
		Category:          key.Category,
		UpdatedAttributes: attributes,
	}
}

// ProductDeleted is raised when a record was removed.
type ProductDeleted struct {
	BaseEvent
	ProductID string `json:"product_id"`
}

// NewProductDeleted creates a ProductDeleted event
func NewProductDeleted(key product.Key, timestamp time.Time) ProductDeleted {
	return ProductDeleted{
		BaseEvent: newBase(TypeProductDeleted, key, timestamp),
		ProductID: key.ProductID,
	}
}
