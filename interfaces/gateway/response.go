package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "products-backend/pkg/errors"

	"github.com/aws/aws-lambda-go/events"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// JSON renders body as a proxy response with the given status.
func JSON(status int, body any) events.APIGatewayProxyResponse {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return Error(fmt.Errorf("encode response: %w", err))
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    copyHeaders(),
		Body:       string(bytes.TrimRight(buf.Bytes(), "\n")),
	}
}

// Error renders err as a proxy response. The body is a JSON string naming
// the failure.
func Error(err error) events.APIGatewayProxyResponse {
	status, message := ErrorMessage(err)
	return JSON(status, message)
}

// ErrorMessage maps an error to its status code and caller-facing message.
func ErrorMessage(err error) (int, string) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		return http.StatusInternalServerError, "Internal server error: " + err.Error()
	}

	switch appErr.Type {
	case apperrors.ErrorTypeValidation, apperrors.ErrorTypeNotFound:
		return appErr.HTTPStatus, appErr.Message
	case apperrors.ErrorTypeDatabase:
		return http.StatusInternalServerError, "Database error: " + appErr.Message
	default:
		detail := appErr.Message
		if appErr.Cause != nil {
			detail = appErr.Cause.Error()
		}
		return http.StatusInternalServerError, "Internal server error: " + detail
	}
}

func copyHeaders() map[string]string {
	h := make(map[string]string, len(jsonHeaders))
	for k, v := range jsonHeaders {
		h[k] = v
	}
	return h
}
