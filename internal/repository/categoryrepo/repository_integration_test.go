//go:build integration

package categoryrepo_test

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
	"gosupply/internal/repository/categoryrepo"
	"gosupply/internal/repository/productrepo"
)

func TestCategoryRepository_CRUDDetachesProducts(t *testing.T) {
	_, gormDB := dbtest.Open(t)
	repo := categoryrepo.NewCategoryRepository(gormDB, 5*time.Second, logger.Nop())
	products := productrepo.NewProductRepository(gormDB, 5*time.Second, logger.Nop())
	ctx := context.Background()

	drinks, err := repo.Create(ctx, domain.Category{Name: "Drinks"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.Category{Name: "Bakery"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.Category{Name: "Drinks"})
	var conflict *apperror.ConflictError
	assert.True(t, errors.As(err, &conflict))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bakery", all[0].Name)

	renamed, err := repo.Update(ctx, domain.Category{ID: drinks.ID, Name: "Beverages"})
	require.NoError(t, err)
	assert.Equal(t, "Beverages", renamed.Name)

	coffee, err := products.Save(ctx, domain.Product{Name: "Coffee", CategoryID: &drinks.ID})
	require.NoError(t, err)

	missing := int64(9999)
	_, err = products.Save(ctx, domain.Product{Name: "Ghost", CategoryID: &missing})
	assert.True(t, apperror.IsNotFound(err))

	deleted, err := repo.Delete(ctx, drinks.ID)
	require.NoError(t, err)
	assert.Equal(t, renamed, deleted)

	got, err := products.FindByID(ctx, coffee.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)

	_, err = repo.FindByID(ctx, drinks.ID)
	assert.True(t, apperror.IsNotFound(err))
	_, err = repo.Update(ctx, domain.Category{ID: drinks.ID, Name: "X"})
	assert.True(t, apperror.IsNotFound(err))
}
