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

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	repo     ports.ProductRepository
	eventBus ports.EventBus
	logger   *zap.Logger
	now      func() time.Time
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(
	repo ports.ProductRepository,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *DeleteProductHandler {
	return &DeleteProductHandler{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

// Handle executes the delete product command. The record is addressed by
// product ID alone.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd commands.DeleteProductCommand) (*commands.DeleteProductResult, error) {
	if cmd.ProductID == "" {
		return nil, apperrors.NewValidationError(application.MsgMissingProductID)
	}

	key := product.Key{ProductID: cmd.ProductID}

	old, err := h.repo.Delete(ctx, key)
	if err != nil {
		h.logger.Error("Failed to delete product",
			zap.Error(err),
			zap.String("productId", cmd.ProductID),
		)
		return nil, apperrors.Wrap(err, "failed to delete product")
	}

	if len(old) == 0 {
		return nil, apperrors.NewNotFoundError(application.DeletedNotFoundMessage(cmd.ProductID))
	}

	if err := h.eventBus.Publish(ctx, events.NewProductDeleted(key, h.now())); err != nil {
		h.logger.Warn("Failed to publish event", zap.Error(err))
	}

	h.logger.Info("Product deleted", zap.String("productId", cmd.ProductID))

	return &commands.DeleteProductResult{Deleted: old}, nil
}
