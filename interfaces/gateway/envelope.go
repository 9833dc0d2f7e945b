// Package gateway adapts API Gateway proxy events to the product command and
// query handlers and renders their results as proxy responses.
package gateway

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	apperrors "products-backend/pkg/errors"
)

// Caller-facing body errors.
const (
	MsgBodyMissing       = "Request body is missing."
	MsgInvalidJSON       = "Invalid JSON format in request body."
	MsgInvalidBodyFormat = "Invalid request body format."
	MsgNoData            = "No data provided in the request."
)

// BodyKind classifies the body field of an event.
type BodyKind int

const (
	BodyAbsent BodyKind = iota
	BodyString
	BodyObject
	// BodyOther covers null and any non-string, non-object value.
	BodyOther
)

// Claims are the authorizer claims attached to a request. They are logged
// only and never used for authorization.
type Claims struct {
	Subject string
	Email   string
}

// Envelope is a decoded request: path parameters, claims and the body in
// whatever shape the caller sent it.
type Envelope struct {
	raw            map[string]any
	pathParameters map[string]string
	claims         Claims
	requestID      string

	bodyKind   BodyKind
	bodyString string
	bodyObject map[string]any
}

// DecodeEvent decodes a raw API Gateway proxy event. Numbers are kept as
// json.Number so no precision is lost before they reach the store.
func DecodeEvent(data []byte) (*Envelope, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, apperrors.NewValidationError(MsgInvalidJSON).WithCause(err)
	}
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, apperrors.NewValidationError(MsgInvalidBodyFormat)
	}

	env := &Envelope{
		raw:            raw,
		pathParameters: stringMap(raw["pathParameters"]),
	}

	if rc, ok := raw["requestContext"].(map[string]any); ok {
		env.requestID, _ = rc["requestId"].(string)
		if authorizer, ok := rc["authorizer"].(map[string]any); ok {
			if claims, ok := authorizer["claims"].(map[string]any); ok {
				env.claims.Subject, _ = claims["sub"].(string)
				env.claims.Email, _ = claims["email"].(string)
			}
		}
	}

	body, present := raw["body"]
	switch b := body.(type) {
	case string:
		env.bodyKind = BodyString
		env.bodyString = b
		if encoded, _ := raw["isBase64Encoded"].(bool); encoded {
			decoded, err := base64.StdEncoding.DecodeString(b)
			if err != nil {
				return nil, apperrors.NewValidationError(MsgInvalidJSON).WithCause(err)
			}
			env.bodyString = string(decoded)
		}
	case map[string]any:
		env.bodyKind = BodyObject
		env.bodyObject = b
	default:
		if present {
			env.bodyKind = BodyOther
		}
	}

	return env, nil
}

// NewEnvelope builds an envelope for a request that did not arrive as a
// proxy event. A nil body is treated as absent.
func NewEnvelope(pathParameters map[string]string, body *string, claims Claims, requestID string) *Envelope {
	env := &Envelope{
		raw:            map[string]any{},
		pathParameters: pathParameters,
		claims:         claims,
		requestID:      requestID,
	}
	if body != nil {
		env.bodyKind = BodyString
		env.bodyString = *body
	}
	return env
}

// PathParameter returns a path parameter and whether it was present.
func (e *Envelope) PathParameter(name string) (string, bool) {
	v, ok := e.pathParameters[name]
	return v, ok
}

// Claims returns the authorizer claims, if any.
func (e *Envelope) Claims() Claims { return e.claims }

// RequestID returns the gateway request ID, if any.
func (e *Envelope) RequestID() string { return e.requestID }

// BodyKind reports the shape of the body field.
func (e *Envelope) BodyKind() BodyKind { return e.bodyKind }

// Body returns the request body as an object. The body must be present and
// be either a JSON object or a string holding one.
func (e *Envelope) Body() (map[string]any, error) {
	switch e.bodyKind {
	case BodyAbsent:
		return nil, apperrors.NewValidationError(MsgBodyMissing)
	case BodyObject:
		return e.bodyObject, nil
	case BodyString:
		v, err := decodeJSON([]byte(e.bodyString))
		if err != nil {
			return nil, apperrors.NewValidationError(MsgInvalidJSON).WithCause(err)
		}
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, apperrors.NewValidationError(MsgInvalidBodyFormat)
		}
		return obj, nil
	default:
		return nil, apperrors.NewValidationError(MsgInvalidBodyFormat)
	}
}

// ProductData returns the data of a create request. A string body is parsed,
// an object body is used as is, and without a body the event itself is the
// data.
func (e *Envelope) ProductData() (map[string]any, error) {
	var data map[string]any

	switch e.bodyKind {
	case BodyString:
		v, err := decodeJSON([]byte(e.bodyString))
		if err != nil {
			return nil, apperrors.NewValidationError(MsgInvalidJSON).WithCause(err)
		}
		if v == nil {
			return nil, apperrors.NewValidationError(MsgNoData)
		}
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, apperrors.NewValidationError(MsgInvalidBodyFormat)
		}
		data = obj
	case BodyObject:
		data = e.bodyObject
	default:
		data = e.raw
	}

	if len(data) == 0 {
		return nil, apperrors.NewValidationError(MsgNoData)
	}
	return data, nil
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

func stringMap(v any) map[string]string {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, item := range m {
		if s, ok := item.(string); ok {
			out[k] = s
		}
	}
	return out
}
