package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
)

type supplierRepository struct {
	store *Store
}

// NewSupplierRepository devolve o repositório de fornecedores sobre o Store.
func NewSupplierRepository(store *Store) domain.SupplierRepository {
	return &supplierRepository{store: store}
}

func matchesSearch(s domain.Supplier, search string) bool {
	if strings.Contains(s.FirstName, search) ||
		strings.Contains(s.LastName, search) ||
		strings.Contains(s.Phone, search) ||
		strings.Contains(s.Address, search) {
		return true
	}
	return s.Email != nil && strings.Contains(*s.Email, search)
}

func (r *supplierRepository) FindPage(_ context.Context, filter domain.SupplierFilter) ([]domain.Supplier, error) {
	filter = filter.Normalize()

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Supplier, 0, filter.Limit)
	for _, s := range r.store.suppliers {
		if filter.LastID > 0 && s.ID >= filter.LastID {
			continue
		}
		if filter.Search != "" && !matchesSearch(s, filter.Search) {
			continue
		}
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *supplierRepository) FindByID(_ context.Context, id int64) (domain.Supplier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.suppliers[id]
	if !ok {
		return domain.Supplier{}, apperror.NewNotFoundError(fmt.Sprintf("supplier %d not found", id))
	}
	return s, nil
}

func (r *supplierRepository) Create(_ context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.createLocked(supplier), nil
}

func (r *supplierRepository) createLocked(supplier domain.Supplier) domain.Supplier {
	r.store.nextSupplierID++
	supplier.ID = r.store.nextSupplierID
	r.store.suppliers[supplier.ID] = supplier
	return supplier
}

func (r *supplierRepository) CreateMany(_ context.Context, suppliers []domain.Supplier) ([]domain.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := make([]domain.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		created = append(created, r.createLocked(s))
	}
	return created, nil
}

func (r *supplierRepository) Update(_ context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.suppliers[supplier.ID]; !ok {
		return domain.Supplier{}, apperror.NewNotFoundError(fmt.Sprintf("supplier %d not found", supplier.ID))
	}
	r.store.suppliers[supplier.ID] = supplier
	return supplier, nil
}

func (r *supplierRepository) Delete(_ context.Context, id int64) (domain.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.suppliers[id]
	if !ok {
		return domain.Supplier{}, apperror.NewNotFoundError(fmt.Sprintf("supplier %d not found", id))
	}
	delete(r.store.suppliers, id)
	return s, nil
}
