// Package memory provides an in-process product store for local runs and
// tests. It follows the DynamoDB table semantics the handlers rely on.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"products-backend/application/ports"
	"products-backend/domain/product"
	apperrors "products-backend/pkg/errors"
	"products-backend/pkg/numeric"
)

// errKeySchema mirrors the store's rejection of a key that addresses more
// than one record.
var errKeySchema = errors.New("the provided key element does not match the schema")

// ProductRepository keeps records in a map keyed by productId and category.
type ProductRepository struct {
	mu    sync.RWMutex
	items map[product.Key]map[string]any
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates an empty in-memory repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		items: make(map[product.Key]map[string]any),
	}
}

// Put stores a copy of the record, replacing any record with the same key.
func (r *ProductRepository) Put(ctx context.Context, p *product.Product) error {
	item := toStored(p.Item()).(map[string]any)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.Key()] = item
	return nil
}

// Get returns a copy of the record, or nil.
func (r *ProductRepository) Get(ctx context.Context, key product.Key) (map[string]any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[key]
	if !ok {
		return nil, nil
	}
	return copyValue(item).(map[string]any), nil
}

// Update sets the attributes of the update set, creating the record when it
// does not exist, and returns the new values.
func (r *ProductRepository) Update(ctx context.Context, key product.Key, set product.UpdateSet) (map[string]any, error) {
	updated := toStored(set.Attributes()).(map[string]any)

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[key]
	if !ok {
		item = toStored(key.Attributes()).(map[string]any)
		r.items[key] = item
	}
	for k, v := range updated {
		item[k] = v
	}

	return copyValue(updated).(map[string]any), nil
}

// Delete removes the record and returns its prior attributes. A key without a
// category addresses the single record under that productId.
func (r *ProductRepository) Delete(ctx context.Context, key product.Key) (map[string]any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := key
	if key.Category == "" {
		matches := r.partition(key.ProductID)
		switch len(matches) {
		case 0:
			return nil, nil
		case 1:
			target = matches[0]
		default:
			return nil, apperrors.NewDatabaseError("DeleteItem", errKeySchema)
		}
	}

	item, ok := r.items[target]
	if !ok {
		return nil, nil
	}
	delete(r.items, target)

	return item, nil
}

// Len returns the number of stored records.
func (r *ProductRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *ProductRepository) partition(productID string) []product.Key {
	var keys []product.Key
	for k := range r.items {
		if k.ProductID == productID {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Category < keys[j].Category })
	return keys
}

// toStored deep-copies v with every number converted to a decimal, matching
// what the DynamoDB repository reads back.
func toStored(v any) any {
	switch val := v.(type) {
	case json.Number, float64, float32, int, int32, int64:
		d, err := numeric.ToDecimal(val)
		if err != nil {
			return v
		}
		return d
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = toStored(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toStored(item)
		}
		return out
	default:
		return v
	}
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = copyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
