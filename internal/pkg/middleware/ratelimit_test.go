package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gosupply/internal/pkg/cache/cachetest"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

func hit(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/supplier", nil)
	req.RemoteAddr = ip + ":5555"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	fake := cachetest.New()
	h := middleware.RateLimiter(fake, 2, time.Minute, logger.Nop())(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
	w := hit(h, "10.0.0.1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = hit(h, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	// Outro IP tem contador próprio.
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2").Code)
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	now := time.Unix(0, 0)
	fake := cachetest.New()
	fake.SetClock(func() time.Time { return now })
	h := middleware.RateLimiter(fake, 1, time.Minute, logger.Nop())(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1").Code)

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	fake := cachetest.New()
	fake.Err = errors.New("redis down")
	h := middleware.RateLimiter(fake, 1, time.Minute, logger.Nop())(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
}

// expireFailsOnce falha o primeiro Expire, deixando o contador sem TTL.
type expireFailsOnce struct {
	*cachetest.Fake
	failed bool
}

func (c *expireFailsOnce) Expire(ctx context.Context, key string, expiration time.Duration) error {
	if !c.failed {
		c.failed = true
		return errors.New("connection reset")
	}
	return c.Fake.Expire(ctx, key, expiration)
}

func TestRateLimiter_RecoversWhenExpireFails(t *testing.T) {
	now := time.Unix(0, 0)
	fake := cachetest.New()
	fake.SetClock(func() time.Time { return now })
	client := &expireFailsOnce{Fake: fake}
	h := middleware.RateLimiter(client, 1, time.Minute, logger.Nop())(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
	assert.True(t, client.failed)

	now = now.Add(24 * time.Hour)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1").Code)

	ttl, err := fake.TTL(context.Background(), "rate-limit:10.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
}
