package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okCheck(name string) FuncChecker {
	return FuncChecker{Name: name, Fn: func(context.Context) error { return nil }}
}

func failingCheck(name string, optional bool) FuncChecker {
	return FuncChecker{Name: name, Optional: optional, Fn: func(context.Context) error { return errors.New("connection refused") }}
}

func serve(t *testing.T, h *Handler) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return w, resp
}

func TestHandler_Healthy(t *testing.T) {
	h := NewHandler(time.Second)
	h.RegisterChecker("database", okCheck("database"))

	w, resp := serve(t, h)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StatusHealthy, resp.Status)
	assert.Len(t, resp.Checks, 1)
}

func TestHandler_OptionalFailureDegrades(t *testing.T) {
	h := NewHandler(time.Second)
	h.RegisterChecker("database", okCheck("database"))
	h.RegisterChecker("redis", failingCheck("redis", true))

	w, resp := serve(t, h)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StatusDegraded, resp.Status)
	assert.Equal(t, "connection refused", resp.Checks["redis"].Message)
}

func TestHandler_CriticalFailureIsUnavailable(t *testing.T) {
	h := NewHandler(time.Second)
	h.RegisterChecker("database", failingCheck("database", false))
	h.RegisterChecker("redis", failingCheck("redis", true))

	w, resp := serve(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, StatusUnhealthy, resp.Status)
}

func TestHandler_CheckTimeout(t *testing.T) {
	h := NewHandler(10 * time.Millisecond)
	h.RegisterChecker("slow", FuncChecker{Name: "slow", Fn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}})

	resp := h.Evaluate(context.Background())
	assert.Equal(t, StatusUnhealthy, resp.Status)
	assert.Contains(t, resp.Checks["slow"].Message, "deadline")
}
