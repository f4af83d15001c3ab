package memory

import (
	"context"
	"fmt"
	"sort"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
)

type categoryRepository struct {
	store *Store
}

// NewCategoryRepository devolve o repositório de categorias sobre o Store.
func NewCategoryRepository(store *Store) domain.CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) FindAll(_ context.Context) ([]domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *categoryRepository) FindByID(_ context.Context, id int64) (domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.categories[id]
	if !ok {
		return domain.Category{}, apperror.NewNotFoundError(fmt.Sprintf("category %d not found", id))
	}
	return c, nil
}

// nameTakenLocked indica se outra categoria já usa o nome. Exige store.mu.
func (r *categoryRepository) nameTakenLocked(name string, exceptID int64) bool {
	for _, c := range r.store.categories {
		if c.ID != exceptID && c.Name == name {
			return true
		}
	}
	return false
}

func (r *categoryRepository) Create(_ context.Context, category domain.Category) (domain.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.nameTakenLocked(category.Name, 0) {
		return domain.Category{}, apperror.NewConflictError(fmt.Sprintf("category %s already exists", category.Name))
	}
	r.store.nextCategoryID++
	category.ID = r.store.nextCategoryID
	r.store.categories[category.ID] = category
	return category, nil
}

func (r *categoryRepository) Update(_ context.Context, category domain.Category) (domain.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.categories[category.ID]; !ok {
		return domain.Category{}, apperror.NewNotFoundError(fmt.Sprintf("category %d not found", category.ID))
	}
	if r.nameTakenLocked(category.Name, category.ID) {
		return domain.Category{}, apperror.NewConflictError(fmt.Sprintf("category %s already exists", category.Name))
	}
	r.store.categories[category.ID] = category
	return category, nil
}

// Delete remove a categoria e desvincula os produtos dela.
func (r *categoryRepository) Delete(_ context.Context, id int64) (domain.Category, error) {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.categories[id]
	if !ok {
		return domain.Category{}, apperror.NewNotFoundError(fmt.Sprintf("category %d not found", id))
	}
	delete(r.store.categories, id)

	for pid, p := range r.store.purchase.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
			r.store.purchase.products[pid] = p
		}
	}
	return c, nil
}
