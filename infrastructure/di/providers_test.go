package di

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"products-backend/domain/product"
	"products-backend/infrastructure/config"
	"products-backend/infrastructure/messaging/eventbridge"
	"products-backend/infrastructure/persistence"
	"products-backend/infrastructure/persistence/memory"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:  "development",
		AWSRegion:    "us-east-1",
		TableName:    "ProductsTable",
		StoreBackend: config.StoreDynamoDB,
		LogLevel:     "warn",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:      true,
			Timeout:      30 * time.Second,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
	}
}

func TestProvideLogger(t *testing.T) {
	logger, err := ProvideLogger(testConfig())
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	cfg := testConfig()
	cfg.LogLevel = "loud"
	_, err = ProvideLogger(cfg)
	assert.Error(t, err)
}

func TestProvideProductRepository(t *testing.T) {
	cfg := testConfig()
	awsCfg := aws.Config{Region: "us-east-1"}
	client := ProvideDynamoDBClient(awsCfg, cfg)

	repo := ProvideProductRepository(cfg, client, ProvideTracer(cfg), zap.NewNop())
	_, ok := repo.(*persistence.CircuitBreakerRepository)
	assert.True(t, ok)

	cfg.StoreBackend = config.StoreMemory
	repo = ProvideProductRepository(cfg, client, ProvideTracer(cfg), zap.NewNop())
	_, ok = repo.(*memory.ProductRepository)
	assert.True(t, ok)
}

func TestProvideEventBus(t *testing.T) {
	cfg := testConfig()
	awsCfg := aws.Config{Region: "us-east-1"}

	assert.IsType(t, eventbridge.NoopEventBus{}, ProvideEventBus(cfg, awsCfg, zap.NewNop()))

	cfg.EventBusName = "products"
	assert.IsType(t, &eventbridge.EventBridgePublisher{}, ProvideEventBus(cfg, awsCfg, zap.NewNop()))
}

func TestProvideCollector(t *testing.T) {
	cfg := testConfig()
	assert.Nil(t, ProvideCollector(cfg))

	cfg.EnableMetrics = true
	assert.NotNil(t, ProvideCollector(cfg))
}

func TestInitializeContainer_MemoryStore(t *testing.T) {
	// Arrange
	cfg := testConfig()
	cfg.StoreBackend = config.StoreMemory
	ctx := context.Background()

	// Act
	container, err := InitializeContainer(ctx, cfg)

	// Assert
	require.NoError(t, err)
	defer container.Shutdown()

	assert.IsType(t, &memory.ProductRepository{}, container.Repository)
	assert.IsType(t, eventbridge.NoopEventBus{}, container.EventBus)
	assert.Nil(t, container.Collector)
	require.NotNil(t, container.Router)

	event := json.RawMessage(`{"body":"{\"productId\":\"p-1\",\"category\":\"c\",\"productName\":\"n\",\"productPrice\":3}"}`)
	resp, err := container.Handlers.CreateEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	item, err := container.Repository.Get(ctx, product.Key{ProductID: "p-1", Category: "c"})
	require.NoError(t, err)
	assert.Equal(t, "n", item["productName"])
}
