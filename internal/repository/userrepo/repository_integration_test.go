//go:build integration

package userrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/database/dbtest"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/repository/userrepo"
)

func TestUserRepository_SaveAndFindByEmail(t *testing.T) {
	_, gormDB := dbtest.Open(t)
	repo := userrepo.NewUserRepository(gormDB, 5*time.Second, logger.Nop())
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.User{Email: "Buyer@Example.com", PasswordHash: "hash", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "buyer@example.com", saved.Email)

	found, err := repo.FindByEmail(ctx, "BUYER@example.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Equal(t, domain.RoleUser, found.Role)

	_, err = repo.Save(ctx, domain.User{Email: "buyer@example.com", PasswordHash: "x", Role: domain.RoleUser})
	var conflict *apperror.ConflictError
	assert.True(t, errors.As(err, &conflict))

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, apperror.IsNotFound(err))
}
