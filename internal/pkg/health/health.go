package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Status é o estado de um componente.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
)

// Check é o resultado da verificação de um componente.
type Check struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Response é o corpo de GET /health.
type Response struct {
	Status        Status           `json:"status"`
	Timestamp     time.Time        `json:"timestamp"`
	Checks        map[string]Check `json:"checks,omitempty"`
	UptimeSeconds int64            `json:"uptime_seconds"`
}

// Checker verifica um componente.
type Checker interface {
	Check(ctx context.Context) Check
}

// Handler agrega os checkers e responde 503 quando algum componente crítico falha.
type Handler struct {
	mu        sync.RWMutex
	checkers  map[string]Checker
	timeout   time.Duration
	startTime time.Time
}

// NewHandler cria o handler; cada checagem é limitada por timeout.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{
		checkers:  make(map[string]Checker),
		timeout:   timeout,
		startTime: time.Now(),
	}
}

// RegisterChecker registra a checagem de um componente.
func (h *Handler) RegisterChecker(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// Evaluate executa todas as checagens e devolve o resultado agregado.
func (h *Handler) Evaluate(ctx context.Context) Response {
	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	h.mu.RUnlock()
	sort.Strings(names)

	checks := make(map[string]Check, len(names))
	overall := StatusHealthy

	for _, name := range names {
		h.mu.RLock()
		checker := h.checkers[name]
		h.mu.RUnlock()

		checkCtx, cancel := context.WithTimeout(ctx, h.timeout)
		check := checker.Check(checkCtx)
		cancel()

		checks[name] = check
		switch {
		case check.Status == StatusUnhealthy:
			overall = StatusUnhealthy
		case check.Status == StatusDegraded && overall == StatusHealthy:
			overall = StatusDegraded
		}
	}

	return Response{
		Status:        overall,
		Timestamp:     time.Now().UTC(),
		Checks:        checks,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}
}

// ServeHTTP responde o health check em JSON.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := h.Evaluate(r.Context())

	statusCode := http.StatusOK
	if response.Status == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// FuncChecker adapta uma função de ping a Checker.
// Quando Optional, a falha rebaixa o serviço a degraded em vez de unhealthy.
type FuncChecker struct {
	Name     string
	Optional bool
	Fn       func(ctx context.Context) error
}

// Check executa a função e mede a duração.
func (c FuncChecker) Check(ctx context.Context) Check {
	start := time.Now()
	err := c.Fn(ctx)
	elapsed := time.Since(start)

	if err == nil {
		return Check{Name: c.Name, Status: StatusHealthy, DurationMs: elapsed.Milliseconds()}
	}

	status := StatusUnhealthy
	if c.Optional {
		status = StatusDegraded
	}
	return Check{Name: c.Name, Status: status, Message: err.Error(), DurationMs: elapsed.Milliseconds()}
}
