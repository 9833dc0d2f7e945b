package handlers

import (
	"context"
	"time"

	"products-backend/application"
	"products-backend/application/commands"
	"products-backend/application/ports"
	"products-backend/domain/events"
	"products-backend/domain/product"
	apperrors "products-backend/pkg/errors"

	"go.uber.org/zap"
)

// CreateProductHandler handles product create commands
type CreateProductHandler struct {
	repo     ports.ProductRepository
	eventBus ports.EventBus
	logger   *zap.Logger
	now      func() time.Time
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(
	repo ports.ProductRepository,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *CreateProductHandler {
	return &CreateProductHandler{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

// Handle executes the create product command. The record overwrites any
// existing record with the same key.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd commands.CreateProductCommand) (*commands.CreateProductResult, error) {
	if len(cmd.Payload) == 0 {
		return nil, apperrors.NewValidationError(application.MsgNoData)
	}

	p, err := product.FromPayload(cmd.Payload)
	if err == nil {
		err = p.Validate()
	}
	if err != nil {
		h.logger.Warn("Rejected product create", zap.Error(err))
		return nil, application.InputError(err)
	}

	key := p.Key()
	if cmd.UserID != "" || cmd.Email != "" {
		h.logger.Info("Authenticated caller",
			zap.String("userID", cmd.UserID),
			zap.String("email", cmd.Email),
		)
	}

	h.logger.Debug("Putting product",
		zap.String("productId", key.ProductID),
		zap.String("category", key.Category),
		zap.Int("attributeCount", len(p.Attributes)+4),
	)

	if err := h.repo.Put(ctx, p); err != nil {
		h.logger.Error("Failed to put product",
			zap.Error(err),
			zap.String("productId", key.ProductID),
		)
		return nil, apperrors.Wrap(err, "failed to put product")
	}

	if err := h.eventBus.Publish(ctx, events.NewProductCreated(key, cmd.UserID, h.now())); err != nil {
		h.logger.Warn("Failed to publish event", zap.Error(err))
	}

	h.logger.Info("Product created",
		zap.String("productId", key.ProductID),
		zap.String("category", key.Category),
	)

	return &commands.CreateProductResult{
		ProductID: key.ProductID,
		Category:  key.Category,
	}, nil
}
