package persistence

import (
	"products-backend/application/ports"
	"products-backend/infrastructure/config"
	"products-backend/pkg/observability"

	"go.uber.org/zap"
)

// DecorateProductRepository applies the configured decorators.
// Order: Base -> Circuit Breaker -> Tracing
func DecorateProductRepository(
	base ports.ProductRepository,
	cfg *config.Config,
	tracer *observability.Tracer,
	logger *zap.Logger,
) ports.ProductRepository {
	decorated := base

	if cfg.CircuitBreaker.Enabled {
		decorated = NewCircuitBreakerRepository(decorated, cfg.CircuitBreaker, logger)
	}

	if tracer.Enabled() {
		decorated = NewTracingRepository(decorated, tracer)
	}

	return decorated
}
