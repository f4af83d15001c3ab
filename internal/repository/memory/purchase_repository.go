package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
)

type purchaseRepository struct {
	store *Store
}

// NewPurchaseRepository devolve o repositório de compras sobre o Store.
// As transações são serializadas e trabalham numa cópia do estado, publicada
// apenas no commit; leitores nunca veem escritas parciais.
func NewPurchaseRepository(store *Store) domain.PurchaseRepository {
	return &purchaseRepository{store: store}
}

func (r *purchaseRepository) WithinTx(ctx context.Context, fn func(tx domain.PurchaseTx) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.RLock()
	work := r.store.purchase.clone()
	r.store.mu.RUnlock()

	if err := fn(&memoryTx{store: r.store, state: &work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	r.store.purchase = work
	r.store.mu.Unlock()
	return nil
}

func (r *purchaseRepository) FindByID(_ context.Context, id int64) (domain.Purchase, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.purchase.purchases[id]
	if !ok {
		return domain.Purchase{}, apperror.NewNotFoundError(fmt.Sprintf("purchase %d not found", id))
	}

	p.Details = []domain.PurchaseDetail{}
	for _, d := range r.store.purchase.details {
		if d.PurchaseID == id {
			p.Details = append(p.Details, d)
		}
	}
	sort.Slice(p.Details, func(i, j int) bool { return p.Details[i].ID < p.Details[j].ID })
	return p, nil
}

// memoryTx escreve na cópia de trabalho da transação.
type memoryTx struct {
	store *Store
	state *purchaseState
}

func (t *memoryTx) CreatePurchase(_ context.Context, purchase domain.Purchase) (domain.Purchase, error) {
	if _, exists := t.state.codes[purchase.Code]; exists {
		return domain.Purchase{}, apperror.NewConflictError(fmt.Sprintf("purchase code %s already exists", purchase.Code))
	}

	t.store.mu.RLock()
	_, userExists := t.store.users[purchase.UserID]
	t.store.mu.RUnlock()
	if !userExists {
		return domain.Purchase{}, apperror.NewNotFoundError(fmt.Sprintf("user %d not found", purchase.UserID))
	}

	t.state.nextPurchaseID++
	purchase.ID = t.state.nextPurchaseID
	purchase.CreatedAt = time.Now().UTC()
	purchase.Details = nil

	t.state.purchases[purchase.ID] = purchase
	t.state.codes[purchase.Code] = purchase.ID
	return purchase, nil
}

func (t *memoryTx) CreateDetail(_ context.Context, detail domain.PurchaseDetail) (domain.PurchaseDetail, error) {
	if _, ok := t.state.purchases[detail.PurchaseID]; !ok {
		return domain.PurchaseDetail{}, apperror.NewNotFoundError(fmt.Sprintf("purchase %d not found", detail.PurchaseID))
	}
	if _, ok := t.state.products[detail.ProductID]; !ok {
		return domain.PurchaseDetail{}, apperror.NewNotFoundError(fmt.Sprintf("product %d not found", detail.ProductID))
	}

	t.state.nextDetailID++
	detail.ID = t.state.nextDetailID
	t.state.details[detail.ID] = detail
	return detail, nil
}

func (t *memoryTx) IncrementStock(_ context.Context, productID int64, qty int64) error {
	p, ok := t.state.products[productID]
	if !ok {
		return apperror.NewNotFoundError(fmt.Sprintf("product %d not found", productID))
	}
	p.Qty += qty
	t.state.products[productID] = p
	return nil
}
