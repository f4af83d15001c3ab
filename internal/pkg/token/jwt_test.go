package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("secret", time.Hour)

	raw, err := svc.GenerateToken(42, "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidate_WrongSecret(t *testing.T) {
	raw, err := NewService("secret", time.Hour).GenerateToken(1, "user")
	require.NoError(t, err)

	_, err = NewService("other", time.Hour).ValidateToken(raw)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	svc := NewService("secret", time.Minute)
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	raw, err := svc.GenerateToken(1, "user")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(raw)
	assert.Error(t, err)
}
