package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantType   ErrorType
		wantStatus int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"database", NewDatabaseError("GetItem", fmt.Errorf("boom")), ErrorTypeDatabase, http.StatusInternalServerError},
		{"internal", NewInternalError("oops"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

func TestTypeChecksFollowWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("Product with ID p1 not found or already deleted."))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.Equal(t, "Product with ID p1 not found or already deleted.", GetAppError(wrapped).Message)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	validation := NewValidationError("No update fields provided.")
	assert.Same(t, validation, Wrap(validation, "context"))

	plain := fmt.Errorf("plain")
	wrapped := Wrap(plain, "failed to render")
	assert.True(t, IsType(wrapped, ErrorTypeInternal))
	assert.ErrorIs(t, wrapped, plain)
}

func TestStoreMessage(t *testing.T) {
	apiErr := &smithy.GenericAPIError{
		Code:    "ProvisionedThroughputExceededException",
		Message: "The level of configured provisioned throughput for the table was exceeded.",
	}

	t.Run("api error message", func(t *testing.T) {
		err := fmt.Errorf("operation error DynamoDB: PutItem: %w", apiErr)
		assert.Equal(t, apiErr.Message, StoreMessage(err))
		assert.Equal(t, "ProvisionedThroughputExceededException", StoreErrorCode(err))
	})

	t.Run("api error without message", func(t *testing.T) {
		err := &smithy.GenericAPIError{Code: "ValidationException"}
		assert.Equal(t, "ValidationException", StoreMessage(err))
	})

	t.Run("open circuit", func(t *testing.T) {
		assert.Contains(t, StoreMessage(gobreaker.ErrOpenState), "store unavailable")
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, "dial tcp: timeout", StoreMessage(fmt.Errorf("dial tcp: timeout")))
		assert.Equal(t, "Unknown", StoreErrorCode(fmt.Errorf("dial tcp: timeout")))
	})

	t.Run("database error carries store message", func(t *testing.T) {
		dbErr := NewDatabaseError("UpdateItem", apiErr)
		assert.Equal(t, apiErr.Message, dbErr.Message)
		assert.ErrorIs(t, dbErr, apiErr)
	})
}
