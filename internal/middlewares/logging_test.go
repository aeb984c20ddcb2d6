package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	t.Run("passes request through and tags it", func(t *testing.T) {
		handler := LoggingMiddleware(zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotNil(t, r.Context().Value(requestIDKey{}))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("ok"))
		}))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "ok", rr.Body.String())
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("unique request ids", func(t *testing.T) {
		handler := LoggingMiddleware(zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		rr1 := httptest.NewRecorder()
		rr2 := httptest.NewRecorder()
		handler.ServeHTTP(rr1, httptest.NewRequest(http.MethodGet, "/", nil))
		handler.ServeHTTP(rr2, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEqual(t, rr1.Header().Get("X-Request-ID"), rr2.Header().Get("X-Request-ID"))
	})
}
