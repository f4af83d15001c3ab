//go:build integration

package purchaserepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/database/dbtest"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/repository/purchaserepo"
)

func TestPurchaseRepository_CommitAndRead(t *testing.T) {
	sqlDB, gormDB := dbtest.Open(t)
	userID := dbtest.InsertUser(t, sqlDB, "buyer@example.com")
	productID := dbtest.InsertProduct(t, sqlDB, "Paracetamol", 10)
	repo := purchaserepo.NewPurchaseRepository(gormDB, 5*time.Second, logger.Nop())
	ctx := context.Background()

	var purchaseID int64
	err := repo.WithinTx(ctx, func(tx domain.PurchaseTx) error {
		p, err := tx.CreatePurchase(ctx, domain.Purchase{
			Code: "PUR-1", Date: time.Now(), UserID: userID,
			Ppn: decimal.NewFromInt(11), GrandTotal: decimal.RequireFromString("111.50"),
		})
		if err != nil {
			return err
		}
		purchaseID = p.ID
		if _, err := tx.CreateDetail(ctx, domain.PurchaseDetail{
			ProductID: productID, ProductName: "Paracetamol", Qty: 4,
			Price: decimal.NewFromInt(25), Total: decimal.NewFromInt(100), PurchaseID: p.ID,
		}); err != nil {
			return err
		}
		return tx.IncrementStock(ctx, productID, 4)
	})
	require.NoError(t, err)

	assert.Equal(t, int64(14), dbtest.ProductQty(t, sqlDB, productID))

	got, err := repo.FindByID(ctx, purchaseID)
	require.NoError(t, err)
	assert.Equal(t, "PUR-1", got.Code)
	assert.True(t, decimal.RequireFromString("111.5").Equal(got.GrandTotal))
	require.Len(t, got.Details, 1)
	assert.Equal(t, int64(4), got.Details[0].Qty)
}

func TestPurchaseRepository_RollbackOnError(t *testing.T) {
	sqlDB, gormDB := dbtest.Open(t)
	userID := dbtest.InsertUser(t, sqlDB, "buyer@example.com")
	productID := dbtest.InsertProduct(t, sqlDB, "Paracetamol", 10)
	repo := purchaserepo.NewPurchaseRepository(gormDB, 5*time.Second, logger.Nop())
	ctx := context.Background()

	boom := errors.New("qty cannot be empty")
	err := repo.WithinTx(ctx, func(tx domain.PurchaseTx) error {
		p, err := tx.CreatePurchase(ctx, domain.Purchase{Code: "PUR-2", Date: time.Now(), UserID: userID})
		require.NoError(t, err)
		_, err = tx.CreateDetail(ctx, domain.PurchaseDetail{ProductID: productID, Qty: 1, PurchaseID: p.ID})
		require.NoError(t, err)
		require.NoError(t, tx.IncrementStock(ctx, productID, 1))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.Zero(t, dbtest.Count(t, sqlDB, "purchases"))
	assert.Zero(t, dbtest.Count(t, sqlDB, "purchase_details"))
	assert.Equal(t, int64(10), dbtest.ProductQty(t, sqlDB, productID))
}

func TestPurchaseRepository_ConstraintErrors(t *testing.T) {
	sqlDB, gormDB := dbtest.Open(t)
	userID := dbtest.InsertUser(t, sqlDB, "buyer@example.com")
	repo := purchaserepo.NewPurchaseRepository(gormDB, 5*time.Second, logger.Nop())
	ctx := context.Background()

	create := func(code string, user int64) error {
		return repo.WithinTx(ctx, func(tx domain.PurchaseTx) error {
			_, err := tx.CreatePurchase(ctx, domain.Purchase{Code: code, Date: time.Now(), UserID: user})
			return err
		})
	}

	require.NoError(t, create("PUR-3", userID))
	assert.IsType(t, &apperror.ConflictError{}, create("PUR-3", userID))
	assert.True(t, apperror.IsNotFound(create("PUR-4", 999)))

	err := repo.WithinTx(ctx, func(tx domain.PurchaseTx) error {
		return tx.IncrementStock(ctx, 999, 1)
	})
	assert.EqualError(t, err, "product 999 not found")

	_, err = repo.FindByID(ctx, 999)
	assert.True(t, apperror.IsNotFound(err))
}
