package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends
const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion        string
	TableName        string
	DynamoDBEndpoint string
	StoreBackend     string
	EventBusName     string

	// Lambda configuration
	LambdaFunctionName string

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableTracing bool
	EnableCORS    bool

	CORSAllowedOrigins []string

	CircuitBreaker CircuitBreakerConfig
}

// CircuitBreakerConfig configures the breaker around the product store.
type CircuitBreakerConfig struct {
	Enabled      bool
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:    getEnv("SERVER_ADDRESS", ":8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		TableName:        getEnv("TABLE_NAME", "ProductsTable"),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		StoreBackend:     strings.ToLower(getEnv("STORE_BACKEND", StoreDynamoDB)),
		EventBusName:     getEnv("EVENT_BUS_NAME", ""),

		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		CircuitBreaker: CircuitBreakerConfig{
			Enabled:      getEnvBool("CIRCUIT_BREAKER_ENABLED", true),
			Timeout:      time.Duration(getEnvInt("CIRCUIT_BREAKER_TIMEOUT_SECONDS", 30)) * time.Second,
			MinRequests:  uint32(max(getEnvInt("CIRCUIT_BREAKER_MIN_REQUESTS", 10), 0)),
			FailureRatio: float64(getEnvInt("CIRCUIT_BREAKER_FAILURE_RATIO", 60)) / 100,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.TableName == "" {
		return fmt.Errorf("TABLE_NAME is required")
	}

	switch c.StoreBackend {
	case StoreDynamoDB, StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.CircuitBreaker.Enabled {
		if c.CircuitBreaker.Timeout <= 0 {
			return fmt.Errorf("CIRCUIT_BREAKER_TIMEOUT_SECONDS must be positive")
		}
		if c.CircuitBreaker.FailureRatio <= 0 || c.CircuitBreaker.FailureRatio > 1 {
			return fmt.Errorf("CIRCUIT_BREAKER_FAILURE_RATIO must be between 1 and 100")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsLambda reports whether the process runs inside the Lambda runtime.
func (c *Config) IsLambda() bool {
	return c.LambdaFunctionName != ""
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
