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

// UpdateProductHandler handles partial product updates
type UpdateProductHandler struct {
	repo     ports.ProductRepository
	eventBus ports.EventBus
	logger   *zap.Logger
	now      func() time.Time
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(
	repo ports.ProductRepository,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *UpdateProductHandler {
	return &UpdateProductHandler{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

// Handle executes the update product command. Only attributes present in the
// payload are written; the result carries their new values.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd commands.UpdateProductCommand) (*commands.UpdateProductResult, error) {
	if cmd.Key.ProductID == "" || cmd.Key.Category == "" {
		return nil, apperrors.NewValidationError(application.MsgMissingKey)
	}

	changes, err := product.ChangesFromPayload(cmd.Payload)
	if err != nil {
		return nil, application.InputError(err)
	}

	set, err := product.BuildUpdateSet(changes)
	if err != nil {
		h.logger.Warn("No valid update fields provided",
			zap.String("productId", cmd.Key.ProductID),
		)
		return nil, application.InputError(err)
	}

	h.logger.Debug("Updating product",
		zap.String("productId", cmd.Key.ProductID),
		zap.String("category", cmd.Key.Category),
		zap.String("updateExpression", set.Expression()),
		zap.Any("attributeNames", set.Names()),
	)

	updated, err := h.repo.Update(ctx, cmd.Key, set)
	if err != nil {
		h.logger.Error("Failed to update product",
			zap.Error(err),
			zap.String("productId", cmd.Key.ProductID),
		)
		return nil, apperrors.Wrap(err, "failed to update product")
	}
	if updated == nil {
		updated = map[string]any{}
	}

	names := make([]string, 0, len(set.Assignments))
	for _, a := range set.Assignments {
		names = append(names, a.Attribute)
	}
	if err := h.eventBus.Publish(ctx, events.NewProductUpdated(cmd.Key, names, h.now())); err != nil {
		h.logger.Warn("Failed to publish event", zap.Error(err))
	}

	h.logger.Info("Product updated",
		zap.String("productId", cmd.Key.ProductID),
		zap.String("category", cmd.Key.Category),
		zap.Strings("attributes", names),
	)

	return &commands.UpdateProductResult{UpdatedAttributes: updated}, nil
}
