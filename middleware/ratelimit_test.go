package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/datacare-saude/datacare-backend/config"
)

func TestRateLimiterAllowsWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetRedisClientForTesting(nil)

	r := gin.New()
	r.POST("/predict", RateLimiter(RateLimitConfig{Limit: 1}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Without Redis the limiter fails open, so every request passes even
	// with a limit of one.
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/predict", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
}

func TestRateLimiterDefaults(t *testing.T) {
	// Zero values fall back to the package defaults without panicking.
	gin.SetMode(gin.TestMode)
	config.SetRedisClientForTesting(nil)

	r := gin.New()
	r.GET("/", RateLimiter(RateLimitConfig{}), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetRateLimitWithoutRedis(t *testing.T) {
	config.SetRedisClientForTesting(nil)
	err := ResetRateLimit("127.0.0.1", "/predict")
	assert.Error(t, err)
}
