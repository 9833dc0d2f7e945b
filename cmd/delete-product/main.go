package main

import (
	"context"
	"log"

	"products-backend/infrastructure/config"
	"products-backend/infrastructure/di"

	"github.com/aws/aws-lambda-go/lambda"
)

// container is built once per cold start and reused by every invocation
var container *di.Container

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

func main() {
	defer container.Shutdown()
	lambda.Start(container.Handlers.DeleteEvent)
}
