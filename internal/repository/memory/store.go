// Package memory implementa os repositórios em memória, usados pelo driver
// STORAGE_DRIVER=memory e pelos testes.
package memory

import (
	"maps"
	"sync"

	"gosupply/internal/domain"
)

// purchaseState agrupa as tabelas tocadas pela transação de compra.
type purchaseState struct {
	purchases      map[int64]domain.Purchase
	details        map[int64]domain.PurchaseDetail
	products       map[int64]domain.Product
	codes          map[string]int64
	nextPurchaseID int64
	nextDetailID   int64
	nextProductID  int64
}

func (s purchaseState) clone() purchaseState {
	c := s
	c.purchases = maps.Clone(s.purchases)
	c.details = maps.Clone(s.details)
	c.products = maps.Clone(s.products)
	c.codes = maps.Clone(s.codes)
	return c
}

// Store guarda todas as tabelas em memória e é compartilhado pelos repositórios.
type Store struct {
	mu sync.RWMutex
	// txMu serializa as transações de compra.
	txMu sync.Mutex

	suppliers      map[int64]domain.Supplier
	nextSupplierID int64

	users      map[int64]domain.User
	nextUserID int64

	categories     map[int64]domain.Category
	nextCategoryID int64

	purchase purchaseState
}

// NewStore cria um Store vazio.
func NewStore() *Store {
	return &Store{
		suppliers:  make(map[int64]domain.Supplier),
		users:      make(map[int64]domain.User),
		categories: make(map[int64]domain.Category),
		purchase: purchaseState{
			purchases: make(map[int64]domain.Purchase),
			details:   make(map[int64]domain.PurchaseDetail),
			products:  make(map[int64]domain.Product),
			codes:     make(map[string]int64),
		},
	}
}

// PutProduct insere ou substitui um produto. ID zero gera um novo ID.
func (s *Store) PutProduct(p domain.Product) domain.Product {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		s.purchase.nextProductID++
		p.ID = s.purchase.nextProductID
	} else if p.ID > s.purchase.nextProductID {
		s.purchase.nextProductID = p.ID
	}
	s.purchase.products[p.ID] = p
	return p
}

// Product devolve o produto pelo ID.
func (s *Store) Product(id int64) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.purchase.products[id]
	return p, ok
}

// PurchaseCount devolve o número de compras persistidas.
func (s *Store) PurchaseCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.purchase.purchases)
}

// DetailCount devolve o número de linhas de compra persistidas.
func (s *Store) DetailCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.purchase.details)
}

// PutUser insere um usuário diretamente. ID zero gera um novo ID.
func (s *Store) PutUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putUserLocked(u)
}

func (s *Store) putUserLocked(u domain.User) domain.User {
	if u.ID == 0 {
		s.nextUserID++
		u.ID = s.nextUserID
	} else if u.ID > s.nextUserID {
		s.nextUserID = u.ID
	}
	s.users[u.ID] = u
	return u
}
