package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"products-backend/application/commands"
	cmdhandlers "products-backend/application/commands/handlers"
	"products-backend/application/queries"
	queryhandlers "products-backend/application/queries/handlers"
	"products-backend/domain/product"
	"products-backend/pkg/numeric"
	"products-backend/pkg/observability"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// Success messages.
const (
	MsgCreated = "Product created successfully!"
	MsgUpdated = "Product updated successfully!"
)

// Operation names used in logs and metrics.
const (
	OpCreate = "CreateProduct"
	OpGet    = "GetProduct"
	OpUpdate = "UpdateProduct"
	OpDelete = "DeleteProduct"
)

// Handlers serves the four product operations for envelopes and raw proxy
// events.
type Handlers struct {
	create  *cmdhandlers.CreateProductHandler
	get     *queryhandlers.GetProductHandler
	update  *cmdhandlers.UpdateProductHandler
	delete  *cmdhandlers.DeleteProductHandler
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewHandlers creates the gateway handlers
func NewHandlers(
	create *cmdhandlers.CreateProductHandler,
	get *queryhandlers.GetProductHandler,
	update *cmdhandlers.UpdateProductHandler,
	del *cmdhandlers.DeleteProductHandler,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		create:  create,
		get:     get,
		update:  update,
		delete:  del,
		metrics: metrics,
		logger:  logger,
	}
}

// Create stores a new product record.
func (h *Handlers) Create(ctx context.Context, env *Envelope) events.APIGatewayProxyResponse {
	return h.invoke(ctx, OpCreate, env, func() events.APIGatewayProxyResponse {
		data, err := env.ProductData()
		if err != nil {
			return Error(err)
		}

		claims := env.Claims()
		result, err := h.create.Handle(ctx, commands.CreateProductCommand{
			Payload: data,
			UserID:  claims.Subject,
			Email:   claims.Email,
		})
		if err != nil {
			return Error(err)
		}

		return JSON(http.StatusOK, map[string]any{
			"message":   MsgCreated,
			"productId": result.ProductID,
			"category":  result.Category,
		})
	})
}

// Get returns one product record by composite key.
func (h *Handlers) Get(ctx context.Context, env *Envelope) events.APIGatewayProxyResponse {
	return h.invoke(ctx, OpGet, env, func() events.APIGatewayProxyResponse {
		productID, _ := env.PathParameter(product.AttrProductID)
		category, _ := env.PathParameter(product.AttrCategory)

		result, err := h.get.Handle(ctx, queries.GetProductQuery{
			ProductID: productID,
			Category:  category,
		})
		if err != nil {
			return Error(err)
		}

		return JSON(http.StatusOK, numeric.NormalizeMap(result.Item))
	})
}

// Update applies a partial update. Body problems are reported before path
// problems.
func (h *Handlers) Update(ctx context.Context, env *Envelope) events.APIGatewayProxyResponse {
	return h.invoke(ctx, OpUpdate, env, func() events.APIGatewayProxyResponse {
		body, err := env.Body()
		if err != nil {
			return Error(err)
		}

		productID, _ := env.PathParameter(product.AttrProductID)
		category, _ := env.PathParameter(product.AttrCategory)

		result, err := h.update.Handle(ctx, commands.UpdateProductCommand{
			Key:     product.Key{ProductID: productID, Category: category},
			Payload: body,
		})
		if err != nil {
			return Error(err)
		}

		return JSON(http.StatusOK, map[string]any{
			"message":           MsgUpdated,
			"updatedAttributes": numeric.NormalizeMap(result.UpdatedAttributes),
		})
	})
}

// Delete removes a product record by product ID.
func (h *Handlers) Delete(ctx context.Context, env *Envelope) events.APIGatewayProxyResponse {
	return h.invoke(ctx, OpDelete, env, func() events.APIGatewayProxyResponse {
		productID, _ := env.PathParameter(product.AttrProductID)

		if _, err := h.delete.Handle(ctx, commands.DeleteProductCommand{ProductID: productID}); err != nil {
			return Error(err)
		}

		return JSON(http.StatusOK, fmt.Sprintf("Product %s deleted successfully.", productID))
	})
}

// CreateEvent is the Lambda entry point for Create.
func (h *Handlers) CreateEvent(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	return h.fromEvent(ctx, event, h.Create), nil
}

// GetEvent is the Lambda entry point for Get.
func (h *Handlers) GetEvent(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	return h.fromEvent(ctx, event, h.Get), nil
}

// UpdateEvent is the Lambda entry point for Update.
func (h *Handlers) UpdateEvent(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	return h.fromEvent(ctx, event, h.Update), nil
}

// DeleteEvent is the Lambda entry point for Delete.
func (h *Handlers) DeleteEvent(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	return h.fromEvent(ctx, event, h.Delete), nil
}

func (h *Handlers) fromEvent(
	ctx context.Context,
	event json.RawMessage,
	handle func(context.Context, *Envelope) events.APIGatewayProxyResponse,
) events.APIGatewayProxyResponse {
	env, err := DecodeEvent(event)
	if err != nil {
		h.logger.Warn("Failed to decode event", zap.Error(err))
		return Error(err)
	}
	return handle(ctx, env)
}

func (h *Handlers) invoke(
	ctx context.Context,
	operation string,
	env *Envelope,
	fn func() events.APIGatewayProxyResponse,
) (resp events.APIGatewayProxyResponse) {
	start := time.Now()

	h.logger.Info("Received event",
		zap.String("operation", operation),
		zap.String("request_id", env.RequestID()),
		zap.Any("path_parameters", env.pathParameters),
		zap.Int("body_kind", int(env.BodyKind())),
	)

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Handler panicked",
				zap.String("operation", operation),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			resp = Error(fmt.Errorf("%v", r))
		}

		latency := time.Since(start)
		h.metrics.RecordInvocation(ctx, operation, resp.StatusCode, latency)

		fields := []zap.Field{
			zap.String("operation", operation),
			zap.String("request_id", env.RequestID()),
			zap.Int("status_code", resp.StatusCode),
			zap.Duration("latency", latency),
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			h.logger.Error("Request failed", append(fields, zap.String("body", resp.Body))...)
		} else {
			h.logger.Info("Request completed", fields...)
		}
	}()

	return fn()
}
