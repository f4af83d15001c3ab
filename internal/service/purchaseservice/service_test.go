package purchaseservice_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/metrics"
	"gosupply/internal/pkg/ordercode"
	"gosupply/internal/pkg/validation"
	"gosupply/internal/repository/memory"
	"gosupply/internal/service/purchaseservice"
)

const failedBusinessRule = `
# HELP gosupply_purchases_failed_total Total number of purchase creations rolled back or rejected, by error category
# TYPE gosupply_purchases_failed_total counter
gosupply_purchases_failed_total{category="BUSINESS_RULE"} 1
`

type fixture struct {
	store   *memory.Store
	svc     *purchaseservice.Service
	userID  int64
	coffee  domain.Product
	sugar   domain.Product
	metrics *prometheus.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gen, err := ordercode.NewGenerator(1)
	require.NoError(t, err)

	store := memory.NewStore()
	reg := prometheus.NewRegistry()
	f := &fixture{
		store:   store,
		userID:  store.PutUser(domain.User{Email: "buyer@example.com", Role: domain.RoleUser}).ID,
		coffee:  store.PutProduct(domain.Product{Name: "Coffee", Qty: 10}),
		sugar:   store.PutProduct(domain.Product{Name: "Sugar", Qty: 0}),
		metrics: reg,
	}
	f.svc = purchaseservice.NewService(memory.NewPurchaseRepository(store), gen, validation.New(), metrics.New(reg), logger.Nop())
	return f
}

func line(productID int64, name string, price int64, qty int64) domain.PurchaseLine {
	return domain.PurchaseLine{
		Product:    domain.LineProduct{ProductID: domain.Int(productID), ProductName: name},
		Price:      decimal.NewFromInt(price),
		Qty:        domain.Int(qty),
		TotalPrice: decimal.NewFromInt(price * qty),
	}
}

func (f *fixture) request(lines ...domain.PurchaseLine) domain.PurchaseRequest {
	return domain.PurchaseRequest{
		Date:       domain.NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		Ppn:        decimal.RequireFromString("1.10"),
		GrandTotal: decimal.RequireFromString("100.50"),
		UserID:     domain.Int(f.userID),
		Detail:     lines,
	}
}

func (f *fixture) qty(t *testing.T, id int64) int64 {
	p, ok := f.store.Product(id)
	require.True(t, ok)
	return p.Qty
}

func TestCreatePurchase_PersistsAllRowsAndIncrementsStock(t *testing.T) {
	f := newFixture(t)
	req := f.request(line(f.coffee.ID, "Coffee", 10, 3), line(f.sugar.ID, "Sugar", 2, 5))

	got, err := f.svc.CreatePurchase(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, req, got)
	assert.Equal(t, 1, f.store.PurchaseCount())
	assert.Equal(t, 2, f.store.DetailCount())
	assert.Equal(t, int64(13), f.qty(t, f.coffee.ID))
	assert.Equal(t, int64(5), f.qty(t, f.sugar.ID))

	purchase, err := f.svc.GetPurchase(context.Background(), 1)
	require.NoError(t, err)
	assert.Regexp(t, `^PUR-\d+$`, purchase.Code)
	assert.Equal(t, f.userID, purchase.UserID)
	require.Len(t, purchase.Details, 2)
	assert.Equal(t, "Coffee", purchase.Details[0].ProductName)
	assert.True(t, decimal.NewFromInt(30).Equal(purchase.Details[0].Total))
}

func TestCreatePurchase_SameProductTwiceInOnePurchase(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreatePurchase(context.Background(), f.request(line(f.coffee.ID, "Coffee", 10, 1), line(f.coffee.ID, "Coffee", 10, 4)))

	require.NoError(t, err)
	assert.Equal(t, int64(15), f.qty(t, f.coffee.ID))
}

func TestCreatePurchase_EmptyDetailRollsBack(t *testing.T) {
	for name, lines := range map[string][]domain.PurchaseLine{"nil": nil, "vazio": {}} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.CreatePurchase(context.Background(), f.request(lines...))

			require.Error(t, err)
			assert.Equal(t, purchaseservice.ErrMsgEmptyDetail, err.Error())
			assert.Zero(t, f.store.PurchaseCount())
			assert.Zero(t, f.store.DetailCount())
		})
	}
}

func TestCreatePurchase_MissingProductOrQtyRollsBackEverything(t *testing.T) {
	cases := []struct {
		name string
		bad  func(f *fixture) domain.PurchaseLine
		msg  string
	}{
		{"produto ausente", func(f *fixture) domain.PurchaseLine { return line(0, "?", 10, 1) }, purchaseservice.ErrMsgEmptyProduct},
		{"qty ausente", func(f *fixture) domain.PurchaseLine { return line(f.sugar.ID, "Sugar", 10, 0) }, purchaseservice.ErrMsgEmptyQty},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			// A primeira linha é válida: seu detalhe e incremento também precisam ser desfeitos.
			req := f.request(line(f.coffee.ID, "Coffee", 10, 3), tc.bad(f))

			_, err := f.svc.CreatePurchase(context.Background(), req)

			require.Error(t, err)
			assert.Equal(t, tc.msg, err.Error())
			assert.Zero(t, f.store.PurchaseCount())
			assert.Zero(t, f.store.DetailCount())
			assert.Equal(t, int64(10), f.qty(t, f.coffee.ID))
			assert.NoError(t, testutil.GatherAndCompare(f.metrics, strings.NewReader(failedBusinessRule), "gosupply_purchases_failed_total"))
		})
	}
}

func TestCreatePurchase_UnknownProductRollsBack(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreatePurchase(context.Background(), f.request(line(f.coffee.ID, "Coffee", 10, 3), line(999, "Ghost", 1, 1)))

	require.Error(t, err)
	assert.Equal(t, "product 999 not found", err.Error())
	assert.Zero(t, f.store.PurchaseCount())
	assert.Equal(t, int64(10), f.qty(t, f.coffee.ID))
}

func TestCreatePurchase_NotIdempotent(t *testing.T) {
	f := newFixture(t)
	req := f.request(line(f.coffee.ID, "Coffee", 10, 2))

	_, err := f.svc.CreatePurchase(context.Background(), req)
	require.NoError(t, err)
	_, err = f.svc.CreatePurchase(context.Background(), req)
	require.NoError(t, err)

	first, err := f.svc.GetPurchase(context.Background(), 1)
	require.NoError(t, err)
	second, err := f.svc.GetPurchase(context.Background(), 2)
	require.NoError(t, err)

	assert.NotEqual(t, first.Code, second.Code)
	assert.Equal(t, 2, f.store.PurchaseCount())
	assert.Equal(t, int64(14), f.qty(t, f.coffee.ID))
}

func TestCreatePurchase_ValidationHappensBeforeTransaction(t *testing.T) {
	f := newFixture(t)
	req := f.request(line(f.coffee.ID, "Coffee", 10, 1))
	req.Date = nil

	_, err := f.svc.CreatePurchase(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, `"date" is required`, err.Error())
	assert.Zero(t, f.store.PurchaseCount())
}

type fixedCode string

func (c fixedCode) Generate(prefix string) string { return prefix + string(c) }

func TestCreatePurchase_DuplicateCodeIsConflict(t *testing.T) {
	f := newFixture(t)
	svc := purchaseservice.NewService(memory.NewPurchaseRepository(f.store), fixedCode("1"), validation.New(), nil, logger.Nop())
	req := f.request(line(f.coffee.ID, "Coffee", 10, 1))

	_, err := svc.CreatePurchase(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreatePurchase(context.Background(), req)
	var conflict *apperror.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "purchase code PUR-1 already exists", err.Error())
	assert.Equal(t, 1, f.store.PurchaseCount())
}

func TestCreatePurchase_ConcurrentPurchasesKeepStockConsistent(t *testing.T) {
	f := newFixture(t)
	const workers = 20

	var failures atomic.Int32
	done := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			if _, err := f.svc.CreatePurchase(context.Background(), f.request(line(f.coffee.ID, "Coffee", 1, 2))); err != nil {
				failures.Add(1)
			}
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}

	assert.Zero(t, failures.Load())
	assert.Equal(t, workers, f.store.PurchaseCount())
	assert.Equal(t, int64(10+2*workers), f.qty(t, f.coffee.ID))
}

// --- Injeção de falhas com mocks ---

type MockPurchaseRepository struct {
	mock.Mock
	tx domain.PurchaseTx
}

func (m *MockPurchaseRepository) WithinTx(ctx context.Context, fn func(tx domain.PurchaseTx) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.tx)
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id int64) (domain.Purchase, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Purchase), args.Error(1)
}

type MockPurchaseTx struct {
	mock.Mock
}

func (m *MockPurchaseTx) CreatePurchase(ctx context.Context, p domain.Purchase) (domain.Purchase, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Purchase), args.Error(1)
}

func (m *MockPurchaseTx) CreateDetail(ctx context.Context, d domain.PurchaseDetail) (domain.PurchaseDetail, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(domain.PurchaseDetail), args.Error(1)
}

func (m *MockPurchaseTx) IncrementStock(ctx context.Context, productID int64, qty int64) error {
	return m.Called(ctx, productID, qty).Error(0)
}

func TestCreatePurchase_StockFailureStopsTheLoop(t *testing.T) {
	tx := new(MockPurchaseTx)
	repo := &MockPurchaseRepository{tx: tx}
	svc := purchaseservice.NewService(repo, fixedCode("42"), validation.New(), nil, logger.Nop())

	req := domain.PurchaseRequest{
		Date:   domain.NewDate(time.Now()),
		UserID: 1,
		Detail: []domain.PurchaseLine{line(1, "A", 1, 1), line(2, "B", 1, 1)},
	}
	dbErr := apperror.NewDBError("failed to increment stock", errors.New("deadlock detected"))

	repo.On("WithinTx", mock.Anything).Return(nil)
	tx.On("CreatePurchase", mock.Anything, mock.MatchedBy(func(p domain.Purchase) bool { return p.Code == "PUR-42" })).
		Return(domain.Purchase{ID: 9, Code: "PUR-42"}, nil)
	tx.On("CreateDetail", mock.Anything, mock.MatchedBy(func(d domain.PurchaseDetail) bool { return d.PurchaseID == 9 && d.ProductID == 1 })).
		Return(domain.PurchaseDetail{ID: 1, ProductID: 1, Qty: 1, PurchaseID: 9}, nil)
	tx.On("IncrementStock", mock.Anything, int64(1), int64(1)).Return(dbErr)

	_, err := svc.CreatePurchase(context.Background(), req)

	assert.ErrorIs(t, err, dbErr)
	tx.AssertNumberOfCalls(t, "CreateDetail", 1)
	tx.AssertExpectations(t)
}

func TestCreatePurchase_BeginFailure(t *testing.T) {
	repo := &MockPurchaseRepository{}
	svc := purchaseservice.NewService(repo, fixedCode("1"), validation.New(), nil, logger.Nop())
	beginErr := apperror.NewDBError("failed to begin transaction", fmt.Errorf("pool exhausted"))
	repo.On("WithinTx", mock.Anything).Return(beginErr)

	_, err := svc.CreatePurchase(context.Background(), domain.PurchaseRequest{Date: domain.NewDate(time.Now()), UserID: 1})

	assert.Equal(t, "failed to begin transaction: pool exhausted", err.Error())
}

func TestGetPurchase(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetPurchase(context.Background(), 0)
	assert.True(t, apperror.IsValidation(err))

	_, err = f.svc.GetPurchase(context.Background(), 5)
	assert.True(t, apperror.IsNotFound(err))
}
