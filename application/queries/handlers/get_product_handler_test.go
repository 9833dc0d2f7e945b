package handlers

import (
	"context"
	"errors"
	"testing"

	"products-backend/application/ports/mocks"
	"products-backend/application/queries"
	"products-backend/domain/product"
	apperrors "products-backend/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetProductHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockProductRepository)
	item := map[string]any{
		"productId":    "p-1",
		"category":     "books",
		"productPrice": decimal.RequireFromString("19"),
	}
	repo.On("Get", ctx, product.Key{ProductID: "p-1", Category: "books"}).Return(item, nil)

	handler := NewGetProductHandler(repo, zap.NewNop())

	// Act
	result, err := handler.Handle(ctx, queries.GetProductQuery{ProductID: "p-1", Category: "books"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, item, result.Item)
	repo.AssertExpectations(t)
}

func TestGetProductHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockProductRepository)
	repo.On("Get", ctx, mock.Anything).Return(nil, nil)

	handler := NewGetProductHandler(repo, zap.NewNop())

	_, err := handler.Handle(ctx, queries.GetProductQuery{ProductID: "p-9", Category: "toys"})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Product with ID p-9 and category toys not found.", apperrors.GetAppError(err).Message)
}

func TestGetProductHandler_Handle_MissingKey(t *testing.T) {
	tests := []queries.GetProductQuery{
		{ProductID: "p-1"},
		{Category: "books"},
		{},
	}

	for _, q := range tests {
		repo := new(mocks.MockProductRepository)
		handler := NewGetProductHandler(repo, zap.NewNop())

		_, err := handler.Handle(context.Background(), q)

		require.Error(t, err)
		assert.Equal(t, "Missing productId or category in path parameters.", apperrors.GetAppError(err).Message)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	}
}

func TestGetProductHandler_Handle_StoreError(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockProductRepository)
	repo.On("Get", ctx, mock.Anything).Return(nil, apperrors.NewDatabaseError("GetItem", errors.New("throttled")))

	handler := NewGetProductHandler(repo, zap.NewNop())

	_, err := handler.Handle(ctx, queries.GetProductQuery{ProductID: "p-1", Category: "books"})

	require.Error(t, err)
	assert.True(t, apperrors.IsDatabase(err))
	assert.Equal(t, "throttled", apperrors.GetAppError(err).Message)
}
