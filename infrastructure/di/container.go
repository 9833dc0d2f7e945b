package di

import (
	"products-backend/application/ports"
	"products-backend/infrastructure/config"
	"products-backend/interfaces/gateway"
	"products-backend/interfaces/http/rest"
	"products-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies. It is built once per
// process and shared by every invocation.
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Repository ports.ProductRepository
	EventBus   ports.EventBus
	Tracer     *observability.Tracer
	Metrics    *observability.Metrics
	Collector  *observability.Collector
	Handlers   *gateway.Handlers
	Router     *rest.Router
}

// Shutdown flushes buffered logs.
func (c *Container) Shutdown() {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
