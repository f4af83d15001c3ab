//go:build integration

package supplierrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/database/dbtest"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/repository/supplierrepo"
)

func TestSupplierRepository_CRUDAndPaging(t *testing.T) {
	_, gormDB := dbtest.Open(t)
	repo := supplierrepo.NewSupplierRepository(gormDB, 5*time.Second, logger.Nop())
	ctx := context.Background()

	email := "jane@example.com"
	created, err := repo.Create(ctx, domain.Supplier{FirstName: "Jane", LastName: "Doe", Phone: "555", Address: "X", Email: &email})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = repo.CreateMany(ctx, []domain.Supplier{
		{FirstName: "50%_off", LastName: "B", Phone: "1", Address: "Y"},
		{FirstName: "Carl", LastName: "C", Phone: "2", Address: "Z"},
	})
	require.NoError(t, err)

	page, err := repo.FindPage(ctx, domain.SupplierFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Greater(t, page[0].ID, page[1].ID)

	rest, err := repo.FindPage(ctx, domain.SupplierFilter{Limit: 2, LastID: page[1].ID})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, created.ID, rest[0].ID)

	found, err := repo.FindPage(ctx, domain.SupplierFilter{Search: "%_"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "50%_off", found[0].FirstName)

	found, err = repo.FindPage(ctx, domain.SupplierFilter{Search: "example.com"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	created.Email = nil
	created.Phone = "999"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Nil(t, updated.Email)
	assert.Equal(t, "999", updated.Phone)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = repo.FindByID(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))
	_, err = repo.Delete(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))
}
