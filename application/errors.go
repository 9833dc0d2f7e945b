// Package application holds the caller-facing messages shared by the command
// and query handlers.
package application

import (
	"errors"
	"fmt"
	"strings"

	"products-backend/domain/product"
	apperrors "products-backend/pkg/errors"
)

// Caller-facing messages.
const (
	MsgNoData           = "No data provided in the request."
	MsgMissingKey       = "Missing productId or category in path parameters."
	MsgMissingProductID = "Missing productId in path."
	MsgNoUpdateFields   = "No update fields provided."
)

// NotFoundMessage names the composite key that was not found.
func NotFoundMessage(key product.Key) string {
	return fmt.Sprintf("Product with ID %s and category %s not found.", key.ProductID, key.Category)
}

// DeletedNotFoundMessage is reported when a delete finds nothing to remove.
func DeletedNotFoundMessage(productID string) string {
	return fmt.Sprintf("Product with ID %s not found or already deleted.", productID)
}

// InputError converts domain validation failures into validation AppErrors.
// Other errors are returned unchanged.
func InputError(err error) error {
	if err == nil {
		return nil
	}

	var missing *product.MissingFieldsError
	if errors.As(err, &missing) {
		return apperrors.NewValidationError("Missing required fields: " + strings.Join(missing.Fields, ", ")).WithCause(err)
	}

	var invalid *product.InvalidFieldError
	if errors.As(err, &invalid) {
		return apperrors.NewValidationErrorf("Invalid value for %s.", invalid.Field).WithCause(err)
	}

	if errors.Is(err, product.ErrNoChanges) {
		return apperrors.NewValidationError(MsgNoUpdateFields).WithCause(err)
	}

	return err
}
