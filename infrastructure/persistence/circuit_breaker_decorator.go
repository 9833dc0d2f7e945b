// Package persistence provides cross-cutting decorators for the product
// repository.
package persistence

import (
	"context"
	"errors"

	"products-backend/application/ports"
	"products-backend/domain/product"
	"products-backend/infrastructure/config"
	apperrors "products-backend/pkg/errors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// CircuitBreakerRepository rejects store calls while the breaker is open.
// Only store failures count against the breaker.
type CircuitBreakerRepository struct {
	inner  ports.ProductRepository
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

var _ ports.ProductRepository = (*CircuitBreakerRepository)(nil)

// NewCircuitBreakerRepository wraps inner with a breaker built from cfg.
func NewCircuitBreakerRepository(inner ports.ProductRepository, cfg config.CircuitBreakerConfig, logger *zap.Logger) *CircuitBreakerRepository {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "product-store",
		Timeout: cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !apperrors.IsDatabase(err)
		},
	})

	return &CircuitBreakerRepository{
		inner:  inner,
		cb:     cb,
		logger: logger,
	}
}

// State returns the current breaker state.
func (r *CircuitBreakerRepository) State() gobreaker.State {
	return r.cb.State()
}

func (r *CircuitBreakerRepository) Put(ctx context.Context, p *product.Product) error {
	_, err := r.execute("PutItem", func() (any, error) {
		return nil, r.inner.Put(ctx, p)
	})
	return err
}

func (r *CircuitBreakerRepository) Get(ctx context.Context, key product.Key) (map[string]any, error) {
	return r.executeMap("GetItem", func() (any, error) {
		return r.inner.Get(ctx, key)
	})
}

func (r *CircuitBreakerRepository) Update(ctx context.Context, key product.Key, set product.UpdateSet) (map[string]any, error) {
	return r.executeMap("UpdateItem", func() (any, error) {
		return r.inner.Update(ctx, key, set)
	})
}

func (r *CircuitBreakerRepository) Delete(ctx context.Context, key product.Key) (map[string]any, error) {
	return r.executeMap("DeleteItem", func() (any, error) {
		return r.inner.Delete(ctx, key)
	})
}

func (r *CircuitBreakerRepository) executeMap(operation string, fn func() (any, error)) (map[string]any, error) {
	result, err := r.execute(operation, fn)
	if err != nil {
		return nil, err
	}
	attrs, _ := result.(map[string]any)
	return attrs, nil
}

func (r *CircuitBreakerRepository) execute(operation string, fn func() (any, error)) (any, error) {
	result, err := r.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		r.logger.Warn("Circuit breaker rejected store call",
			zap.String("operation", operation),
			zap.Error(err),
		)
		return nil, apperrors.NewDatabaseError(operation, err)
	}
	return result, err
}
