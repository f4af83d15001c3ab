//go:build integration

package productrepo_test

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
	"gosupply/internal/repository/productrepo"
)

func TestProductRepository_SaveFindAndList(t *testing.T) {
	_, gormDB := dbtest.Open(t)
	repo := productrepo.NewProductRepository(gormDB, 5*time.Second, logger.Nop())
	ctx := context.Background()

	coffee, err := repo.Save(ctx, domain.Product{Name: "Coffee", Qty: 4})
	require.NoError(t, err)
	assert.NotZero(t, coffee.ID)

	for _, name := range []string{"Green Tea", "Black TEA", "50% Sugar"} {
		_, err := repo.Save(ctx, domain.Product{Name: name})
		require.NoError(t, err)
	}

	got, err := repo.FindByID(ctx, coffee.ID)
	require.NoError(t, err)
	assert.Equal(t, coffee, got)

	teas, err := repo.FindAll(ctx, domain.ProductFilter{Name: "tea"})
	require.NoError(t, err)
	require.Len(t, teas, 2)
	assert.Less(t, teas[0].ID, teas[1].ID)

	escaped, err := repo.FindAll(ctx, domain.ProductFilter{Name: "%"})
	require.NoError(t, err)
	require.Len(t, escaped, 1)
	assert.Equal(t, "50% Sugar", escaped[0].Name)

	second, err := repo.FindAll(ctx, domain.ProductFilter{Page: 2, Limit: 3})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "50% Sugar", second[0].Name)

	_, err = repo.FindByID(ctx, 9999)
	assert.True(t, apperror.IsNotFound(err))
}
