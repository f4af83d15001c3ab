package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "gosupply/internal/errors"
)

func TestMapToHTTPStatus_TypedErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validation", apperror.NewValidationError(`"firstName" is required`), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"business rule", apperror.NewBusinessRuleError("qty cannot be empty"), http.StatusInternalServerError, "BUSINESS_RULE"},
		{"not found", apperror.NewNotFoundError("supplier 9 not found"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", apperror.NewConflictError("duplicated"), http.StatusConflict, "CONFLICT"},
		{"unauthorized", apperror.NewUnauthorizedError("invalid token"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"internal", apperror.NewInternalError("boom", nil), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, category, message := apperror.MapToHTTPStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.category, category)
			assert.Equal(t, tc.err.Error(), message)
		})
	}
}

func TestMapToHTTPStatus_WrappedAppError(t *testing.T) {
	err := fmt.Errorf("create purchase: %w", apperror.NewBusinessRuleError("product cannot be empty"))

	status, category, message := apperror.MapToHTTPStatus(err)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "BUSINESS_RULE", category)
	assert.Equal(t, "product cannot be empty", message)
}

func TestMapToHTTPStatus_UntypedKeepsMessage(t *testing.T) {
	status, category, message := apperror.MapToHTTPStatus(errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "UNKNOWN_ERROR", category)
	assert.Equal(t, "connection reset", message)
}

func TestNewDBError_WrapsCause(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := apperror.NewDBError("failed to create purchase", cause)

	assert.Equal(t, "failed to create purchase: deadlock detected", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.IsType(t, &apperror.InternalError{}, err)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, apperror.IsNotFound(fmt.Errorf("wrap: %w", apperror.NewNotFoundError("x"))))
	assert.False(t, apperror.IsNotFound(apperror.NewValidationError("x")))
	assert.True(t, apperror.IsValidation(apperror.NewValidationError("x")))
}
