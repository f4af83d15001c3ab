package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/metrics"
)

// RequestIDHeader é o header usado para propagar o id da requisição.
const RequestIDHeader = "X-Request-ID"

// statusRecorder captura o status escrito pelo handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestID garante um X-Request-ID por requisição, reaproveitando o do cliente.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID devolve o id gravado por RequestID, ou "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// AccessLog registra cada requisição concluída e alimenta as métricas HTTP.
// A rota usada como label é o padrão casado no ServeMux, não o path bruto.
func AccessLog(log logger.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	log = log.WithComponent("http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(r.Method, route, rec.status, elapsed)

			fields := map[string]interface{}{
				"request_id":  GetRequestID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      rec.status,
				"duration_ms": elapsed.Milliseconds(),
			}
			if rec.status >= http.StatusInternalServerError {
				log.Warn("Requisição concluída com erro", fields)
				return
			}
			log.Info("Requisição concluída", fields)
		})
	}
}
