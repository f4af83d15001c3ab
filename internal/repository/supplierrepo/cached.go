package supplierrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gosupply/internal/domain"
	"gosupply/internal/pkg/cache"
	"gosupply/internal/pkg/logger"
)

const supplierCacheKey = "supplier:%d"

// CachedRepository aplica cache-aside (Redis) sobre FindByID e invalida a chave
// em Update e Delete. Falhas do cache nunca interrompem a operação.
type CachedRepository struct {
	domain.SupplierRepository
	Cache  cache.Client
	TTL    time.Duration
	logger logger.Logger
}

// NewCachedRepository envolve next com cache-aside.
func NewCachedRepository(next domain.SupplierRepository, cacheClient cache.Client, ttl time.Duration, log logger.Logger) *CachedRepository {
	return &CachedRepository{
		SupplierRepository: next,
		Cache:              cacheClient,
		TTL:                ttl,
		logger:             log.WithComponent("repository/supplier-cache"),
	}
}

// FindByID tenta o cache antes do banco e popula o cache no miss.
func (r *CachedRepository) FindByID(ctx context.Context, id int64) (domain.Supplier, error) {
	key := fmt.Sprintf(supplierCacheKey, id)

	cached, err := r.Cache.Get(ctx, key)
	if err == nil {
		var s domain.Supplier
		if jsonErr := json.Unmarshal([]byte(cached), &s); jsonErr == nil {
			r.logger.Debug("Cache HIT de fornecedor.", map[string]interface{}{"id": id})
			return s, nil
		}
		r.logger.Warn("Entrada de cache inválida, consultando o DB.", map[string]interface{}{"key": key})
	} else if err != cache.ErrCacheMiss {
		r.logger.Warn("Falha ao ler do cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}

	s, err := r.SupplierRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Supplier{}, err
	}

	if data, jsonErr := json.Marshal(s); jsonErr == nil {
		if setErr := r.Cache.Set(ctx, key, data, r.TTL); setErr != nil {
			r.logger.Warn("Falha ao gravar no cache.", map[string]interface{}{"key": key, "error": setErr.Error()})
		}
	}
	return s, nil
}

// Update atualiza no banco e invalida o cache.
func (r *CachedRepository) Update(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	updated, err := r.SupplierRepository.Update(ctx, supplier)
	if err != nil {
		return domain.Supplier{}, err
	}
	r.invalidate(ctx, supplier.ID)
	return updated, nil
}

// Delete remove do banco e invalida o cache.
func (r *CachedRepository) Delete(ctx context.Context, id int64) (domain.Supplier, error) {
	deleted, err := r.SupplierRepository.Delete(ctx, id)
	if err != nil {
		return domain.Supplier{}, err
	}
	r.invalidate(ctx, id)
	return deleted, nil
}

func (r *CachedRepository) invalidate(ctx context.Context, id int64) {
	key := fmt.Sprintf(supplierCacheKey, id)
	if err := r.Cache.Delete(ctx, key); err != nil {
		r.logger.Warn("Falha ao invalidar cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
