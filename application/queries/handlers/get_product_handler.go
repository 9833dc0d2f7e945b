package handlers

import (
	"context"

	"products-backend/application"
	"products-backend/application/ports"
	"products-backend/application/queries"
	"products-backend/domain/product"
	apperrors "products-backend/pkg/errors"

	"go.uber.org/zap"
)

// GetProductHandler handles single product lookups
type GetProductHandler struct {
	repo   ports.ProductRepository
	logger *zap.Logger
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo ports.ProductRepository, logger *zap.Logger) *GetProductHandler {
	return &GetProductHandler{
		repo:   repo,
		logger: logger,
	}
}

// Handle performs a point lookup by composite key
func (h *GetProductHandler) Handle(ctx context.Context, query queries.GetProductQuery) (*queries.GetProductResult, error) {
	if query.ProductID == "" || query.Category == "" {
		return nil, apperrors.NewValidationError(application.MsgMissingKey)
	}

	key := product.Key{ProductID: query.ProductID, Category: query.Category}

	item, err := h.repo.Get(ctx, key)
	if err != nil {
		h.logger.Error("Failed to get product",
			zap.Error(err),
			zap.String("productId", key.ProductID),
			zap.String("category", key.Category),
		)
		return nil, apperrors.Wrap(err, "failed to get product")
	}

	if len(item) == 0 {
		h.logger.Info("Product not found",
			zap.String("productId", key.ProductID),
			zap.String("category", key.Category),
		)
		return nil, apperrors.NewNotFoundError(application.NotFoundMessage(key))
	}

	return &queries.GetProductResult{Item: item}, nil
}
