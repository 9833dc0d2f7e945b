package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_RecordsRouteAndProductKey(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.DebugLevel)
	router := chi.NewRouter()
	router.Use(Logger(zap.New(core)))
	router.Get("/products/{productId}/{category}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	// Act
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/p-1/books", nil))

	// Assert
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "/products/{productId}/{category}", fields["route"])
	assert.Equal(t, "p-1", fields["productId"])
	assert.Equal(t, "books", fields["category"])
	assert.Equal(t, "4xx", fields["statusClass"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   zapcore.Level
		route  string
	}{
		{"implicit ok", 0, zapcore.InfoLevel, "/health"},
		{"server error", http.StatusInternalServerError, zapcore.ErrorLevel, "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			router := chi.NewRouter()
			router.Use(Logger(zap.New(core)))
			router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
			})

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.want, entry.Level)
			assert.Equal(t, tt.route, entry.ContextMap()["route"])
			assert.NotContains(t, entry.ContextMap(), "productId")
		})
	}
}
