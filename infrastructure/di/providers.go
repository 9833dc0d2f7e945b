package di

import (
	"context"
	"fmt"

	"products-backend/application/ports"
	"products-backend/infrastructure/config"
	"products-backend/infrastructure/messaging/eventbridge"
	"products-backend/infrastructure/persistence"
	"products-backend/infrastructure/persistence/dynamodb"
	"products-backend/infrastructure/persistence/memory"
	"products-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.uber.org/zap"
)

const (
	serviceName      = "products-api"
	metricsNamespace = "ProductsAPI"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		zapCfg.Level = level
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", serviceName)), nil
}

// ProvideAWSConfig creates AWS configuration. With tracing enabled every SDK
// call is recorded by X-Ray.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}

	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}

	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config) *awsdynamodb.Client {
	return dynamodb.NewClient(awsCfg, cfg.DynamoDBEndpoint)
}

// ProvideTracer creates the tracer used by the repository decorators
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(serviceName, cfg.EnableTracing)
}

// ProvideProductRepository creates the product repository for the configured
// store backend
func ProvideProductRepository(
	cfg *config.Config,
	client *awsdynamodb.Client,
	tracer *observability.Tracer,
	logger *zap.Logger,
) ports.ProductRepository {
	if cfg.StoreBackend == config.StoreMemory {
		logger.Warn("Using in-memory product store; records are lost on exit")
		return memory.NewProductRepository()
	}

	base := dynamodb.NewProductRepository(client, cfg.TableName, logger)
	return persistence.DecorateProductRepository(base, cfg, tracer, logger)
}

// ProvideEventBus creates an event bus. Without an event bus name events are
// dropped.
func ProvideEventBus(cfg *config.Config, awsCfg aws.Config, logger *zap.Logger) ports.EventBus {
	if cfg.EventBusName == "" {
		return eventbridge.NoopEventBus{}
	}
	return eventbridge.NewEventBridgePublisher(
		awseventbridge.NewFromConfig(awsCfg),
		cfg.EventBusName,
		logger,
	)
}

// ProvideMetrics creates the CloudWatch metrics recorder
func ProvideMetrics(cfg *config.Config, awsCfg aws.Config, logger *zap.Logger) *observability.Metrics {
	if !cfg.EnableMetrics {
		return observability.NewMetrics(metricsNamespace, nil, logger)
	}
	return observability.NewMetrics(metricsNamespace, awscloudwatch.NewFromConfig(awsCfg), logger)
}

// ProvideCollector creates the Prometheus collector for the HTTP surface
func ProvideCollector(cfg *config.Config) *observability.Collector {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewCollector("products")
}
