package config_test

import (
	"testing"
	"time"

	"products-backend/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig tests basic configuration loading from environment variables.
func TestLoadConfig(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("TABLE_NAME", "test-table")
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("CIRCUIT_BREAKER_FAILURE_RATIO", "50")
	t.Setenv("CIRCUIT_BREAKER_TIMEOUT_SECONDS", "5")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "test-table", cfg.TableName)
	assert.Equal(t, config.StoreMemory, cfg.StoreBackend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 0.5, cfg.CircuitBreaker.FailureRatio)
	assert.Equal(t, 5*time.Second, cfg.CircuitBreaker.Timeout)
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "TABLE_NAME", "STORE_BACKEND", "AWS_REGION", "EVENT_BUS_NAME", "AWS_LAMBDA_FUNCTION_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsLambda())
	assert.Equal(t, "ProductsTable", cfg.TableName)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, config.StoreDynamoDB, cfg.StoreBackend)
	assert.Empty(t, cfg.EventBusName)
	assert.True(t, cfg.CircuitBreaker.Enabled)
	assert.Equal(t, uint32(10), cfg.CircuitBreaker.MinRequests)
	assert.Equal(t, 0.6, cfg.CircuitBreaker.FailureRatio)
}

// TestConfigValidation tests configuration validation.
func TestConfigValidation(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			TableName:    "products",
			StoreBackend: config.StoreDynamoDB,
			CircuitBreaker: config.CircuitBreakerConfig{
				Enabled:      true,
				Timeout:      30 * time.Second,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "valid config", mutate: func(c *config.Config) {}},
		{name: "missing table", mutate: func(c *config.Config) { c.TableName = "" }, wantErr: "TABLE_NAME"},
		{name: "unknown backend", mutate: func(c *config.Config) { c.StoreBackend = "postgres" }, wantErr: "STORE_BACKEND"},
		{name: "zero timeout", mutate: func(c *config.Config) { c.CircuitBreaker.Timeout = 0 }, wantErr: "TIMEOUT"},
		{name: "ratio too large", mutate: func(c *config.Config) { c.CircuitBreaker.FailureRatio = 1.5 }, wantErr: "FAILURE_RATIO"},
		{
			name: "breaker settings ignored when disabled",
			mutate: func(c *config.Config) {
				c.CircuitBreaker.Enabled = false
				c.CircuitBreaker.FailureRatio = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
