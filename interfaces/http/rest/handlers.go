package rest

import (
	"context"
	"io"
	"net/http"

	"products-backend/interfaces/gateway"
	"products-backend/interfaces/http/rest/middleware"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ProductHandler serves the product routes through the gateway handlers so
// HTTP callers get the same responses as proxy events.
type ProductHandler struct {
	handlers *gateway.Handlers
	logger   *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(handlers *gateway.Handlers, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{handlers: handlers, logger: logger}
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.handlers.Create)
}

// GetProduct handles GET /products/{productId}/{category}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.handlers.Get)
}

// UpdateProduct handles PUT /products/{productId}/{category}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.handlers.Update)
}

// DeleteProduct handles DELETE /products/{productId}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.handlers.Delete)
}

func (h *ProductHandler) serve(
	w http.ResponseWriter,
	r *http.Request,
	handle func(context.Context, *gateway.Envelope) events.APIGatewayProxyResponse,
) {
	env, err := h.envelope(r)
	if err != nil {
		writeResponse(w, gateway.Error(err))
		return
	}
	writeResponse(w, handle(r.Context(), env))
}

func (h *ProductHandler) envelope(r *http.Request) (*gateway.Envelope, error) {
	params := make(map[string]string)
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			params[key] = rctx.URLParams.Values[i]
		}
	}

	var body *string
	if r.Body != nil {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		if len(data) > 0 {
			s := string(data)
			body = &s
		}
	}

	return gateway.NewEnvelope(
		params,
		body,
		middleware.ClaimsFromContext(r.Context()),
		chimiddleware.GetReqID(r.Context()),
	), nil
}

func writeResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}
