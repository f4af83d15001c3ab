package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
)

type productRepository struct {
	store *Store
}

// NewProductRepository devolve o repositório do catálogo sobre o Store.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) Save(_ context.Context, product domain.Product) (domain.Product, error) {
	if product.CategoryID != nil {
		r.store.mu.RLock()
		_, ok := r.store.categories[*product.CategoryID]
		r.store.mu.RUnlock()
		if !ok {
			return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("category %d not found", *product.CategoryID))
		}
	}
	product.ID = 0
	return r.store.PutProduct(product), nil
}

func (r *productRepository) FindByID(_ context.Context, id int64) (domain.Product, error) {
	p, ok := r.store.Product(id)
	if !ok {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("product %d not found", id))
	}
	return p, nil
}

func (r *productRepository) FindAll(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	filter = filter.Normalize()
	name := strings.ToLower(filter.Name)

	r.store.mu.RLock()
	matched := make([]domain.Product, 0, len(r.store.purchase.products))
	for _, p := range r.store.purchase.products {
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if filter.CategoryID > 0 && (p.CategoryID == nil || *p.CategoryID != filter.CategoryID) {
			continue
		}
		matched = append(matched, p)
	}
	r.store.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	start := filter.Offset()
	if start >= len(matched) {
		return []domain.Product{}, nil
	}
	end := min(start+filter.Limit, len(matched))
	return matched[start:end], nil
}
