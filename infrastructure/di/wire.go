//go:build wireinject
// +build wireinject

package di

import (
	"context"

	cmdhandlers "products-backend/application/commands/handlers"
	queryhandlers "products-backend/application/queries/handlers"
	"products-backend/infrastructure/config"
	"products-backend/interfaces/gateway"
	"products-backend/interfaces/http/rest"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideTracer,
	ProvideProductRepository,
	ProvideEventBus,
	ProvideMetrics,
	ProvideCollector,
	cmdhandlers.NewCreateProductHandler,
	cmdhandlers.NewUpdateProductHandler,
	cmdhandlers.NewDeleteProductHandler,
	queryhandlers.NewGetProductHandler,
	gateway.NewHandlers,
	rest.NewRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
