package persistence

import (
	"context"

	"products-backend/application/ports"
	"products-backend/domain/product"
	"products-backend/pkg/observability"
)

// TracingRepository records a subsegment per store operation.
type TracingRepository struct {
	inner  ports.ProductRepository
	tracer *observability.Tracer
}

var _ ports.ProductRepository = (*TracingRepository)(nil)

// NewTracingRepository wraps inner with tracing.
func NewTracingRepository(inner ports.ProductRepository, tracer *observability.Tracer) *TracingRepository {
	return &TracingRepository{inner: inner, tracer: tracer}
}

func (r *TracingRepository) Put(ctx context.Context, p *product.Product) error {
	return r.tracer.TraceFunction(ctx, "PutItem", func(ctx context.Context) error {
		r.annotate(ctx, p.Key())
		return r.inner.Put(ctx, p)
	})
}

func (r *TracingRepository) Get(ctx context.Context, key product.Key) (map[string]any, error) {
	var out map[string]any
	err := r.tracer.TraceFunction(ctx, "GetItem", func(ctx context.Context) error {
		r.annotate(ctx, key)
		var err error
		out, err = r.inner.Get(ctx, key)
		return err
	})
	return out, err
}

func (r *TracingRepository) Update(ctx context.Context, key product.Key, set product.UpdateSet) (map[string]any, error) {
	var out map[string]any
	err := r.tracer.TraceFunction(ctx, "UpdateItem", func(ctx context.Context) error {
		r.annotate(ctx, key)
		r.tracer.AddMetadata(ctx, "updateExpression", set.Expression())
		var err error
		out, err = r.inner.Update(ctx, key, set)
		return err
	})
	return out, err
}

func (r *TracingRepository) Delete(ctx context.Context, key product.Key) (map[string]any, error) {
	var out map[string]any
	err := r.tracer.TraceFunction(ctx, "DeleteItem", func(ctx context.Context) error {
		r.annotate(ctx, key)
		var err error
		out, err = r.inner.Delete(ctx, key)
		return err
	})
	return out, err
}

func (r *TracingRepository) annotate(ctx context.Context, key product.Key) {
	r.tracer.AddAnnotation(ctx, "productId", key.ProductID)
	if key.Category != "" {
		r.tracer.AddAnnotation(ctx, "category", key.Category)
	}
}
