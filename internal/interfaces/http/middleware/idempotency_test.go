package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pawmart.backend/pkg/redis"
)

func setupIdempotencyRouter(t *testing.T) (*gin.Engine, *int) {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	calls := 0
	r.POST("/pay", IdempotencyMiddleware(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"orderId": "order_ABC123"})
	})
	return r, &calls
}

func TestIdempotencyMiddleware_ReplaysCachedResponse(t *testing.T) {
	r, calls := setupIdempotencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pay", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	first := w.Body.String()

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/pay", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, w.Body.String())
	assert.Equal(t, "true", w.Header().Get("X-Idempotency-Hit"))
	assert.Equal(t, 1, *calls)
}

func TestIdempotencyMiddleware_DifferentKeysProcessSeparately(t *testing.T) {
	r, calls := setupIdempotencyRouter(t)

	for _, key := range []string{"key-1", "key-2"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/pay", nil)
		req.Header.Set(IdempotencyHeader, key)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, *calls)
}

func TestIdempotencyMiddleware_NoKeyPassesThrough(t *testing.T) {
	r, calls := setupIdempotencyRouter(t)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pay", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, *calls)
}
