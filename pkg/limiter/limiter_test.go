package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIPLimiterAllowsBurstThenRejects(t *testing.T) {
	l := NewIPLimiter(1, 2, time.Minute)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "buckets are per ip")
}

func TestIPLimiterCleanupDropsIdleVisitors(t *testing.T) {
	l := NewIPLimiter(1, 1, time.Minute)
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }

	l.Allow("10.0.0.1")
	current = current.Add(2 * time.Minute)
	l.cleanup()

	assert.Empty(t, l.visitors)
}

func TestMiddlewareRespondsTooManyRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := NewIPLimiter(1, 1, time.Minute)
	router := gin.New()
	router.Use(l.Middleware())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"success":false,"message":"Too many requests"}`, second.Body.String())
}
