package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"gosupply/internal/domain"
	"gosupply/internal/pkg/cache"
	"gosupply/internal/pkg/logger"
)

// RateLimiter limita as requisições por IP numa janela fixa, com contador INCR no cache.
// Falhas do cache não bloqueiam a requisição.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	log = log.WithComponent("middleware/ratelimit")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + clientIP(r)
			// O contador não pode ficar sem TTL se o cliente desistir no meio.
			ctx := context.WithoutCancel(r.Context())

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Falha ao consultar rate limit, liberando requisição", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			switch {
			case count == 1:
				if err := client.Expire(ctx, key, window); err != nil {
					log.Warn("Falha ao definir janela do rate limit", map[string]interface{}{"error": err.Error()})
				}
			case count > int64(limit):
				// Contador sem TTL (Expire anterior falhou): abre uma nova janela.
				if ttl, err := client.TTL(ctx, key); err == nil && ttl < 0 {
					if err := client.Set(ctx, key, 1, window); err == nil {
						log.Warn("Contador do rate limit sem expiração, janela reiniciada", map[string]interface{}{"key": key})
						count = 1
					}
				}
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				writeJSON(w, http.StatusTooManyRequests, domain.Response{Message: "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
