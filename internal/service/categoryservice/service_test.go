package categoryservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/validation"
	"gosupply/internal/repository/memory"
	"gosupply/internal/service/categoryservice"
)

// MockCategoryRepository é uma implementação mock de domain.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func newMemoryService() *categoryservice.Service {
	return categoryservice.NewService(memory.NewCategoryRepository(memory.NewStore()), validation.New(), logger.Nop())
}

func TestCategoryCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	empty, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	drinks, err := svc.Create(ctx, domain.CategoryInput{Name: "  Drinks "})
	require.NoError(t, err)
	assert.Equal(t, "Drinks", drinks.Name)
	_, err = svc.Create(ctx, domain.CategoryInput{Name: "Bakery"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bakery", list[0].Name)

	renamed, err := svc.Update(ctx, drinks.ID, domain.CategoryInput{Name: "Beverages"})
	require.NoError(t, err)
	assert.Equal(t, domain.Category{ID: drinks.ID, Name: "Beverages"}, renamed)

	_, err = svc.Update(ctx, drinks.ID, domain.CategoryInput{Name: "Bakery"})
	var conflict *apperror.ConflictError
	assert.True(t, errors.As(err, &conflict))

	deleted, err := svc.Delete(ctx, drinks.ID)
	require.NoError(t, err)
	assert.Equal(t, renamed, deleted)

	_, err = svc.GetByID(ctx, drinks.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCategoryValidation(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := categoryservice.NewService(repo, validation.New(), logger.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CategoryInput{Name: "   "})
	assert.Equal(t, `"name" is required`, err.Error())

	_, err = svc.Update(ctx, 0, domain.CategoryInput{Name: "X"})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Delete(ctx, -1)
	assert.True(t, apperror.IsValidation(err))

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryList_RepositoryError(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := categoryservice.NewService(repo, validation.New(), logger.Nop())

	dbErr := apperror.NewDBError("failed to list categories", errors.New("timeout"))
	repo.On("FindAll", mock.Anything).Return(nil, dbErr)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, dbErr)
	repo.AssertExpectations(t)
}
