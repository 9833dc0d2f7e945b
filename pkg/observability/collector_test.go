package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_ObserveRequest(t *testing.T) {
	c := NewCollector("products")

	c.ObserveRequest(http.MethodGet, "/products/{productId}/{category}", 404, 5*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "/products/{productId}/{category}", 404, 5*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.HTTPRequests.WithLabelValues(http.MethodGet, "/products/{productId}/{category}", "404")))

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "products_http_requests_total")
}
