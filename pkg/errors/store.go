package errors

import (
	"errors"

	"github.com/aws/smithy-go"
	"github.com/sony/gobreaker"
)

// StoreMessage returns the message the store reported for err. DynamoDB API
// errors carry their own message; anything else falls back to the error text.
func StoreMessage(err error) string {
	if err == nil {
		return ""
	}

	var ae smithy.APIError
	if errors.As(err, &ae) {
		if msg := ae.ErrorMessage(); msg != "" {
			return msg
		}
		return ae.ErrorCode()
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "store unavailable: " + err.Error()
	}

	return err.Error()
}

// StoreErrorCode returns the DynamoDB error code, or "Unknown".
func StoreErrorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}
	return "Unknown"
}
