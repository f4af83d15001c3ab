package domain

import (
	"context"
	"strings"
)

// Paginação da listagem de fornecedores.
const (
	DefaultSupplierLimit = 10
	MaxSupplierLimit     = 100
)

// Supplier representa um fornecedor cadastrado.
type Supplier struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email"`
	Address   string  `json:"address"`
}

// SupplierInput é o payload de criação e atualização de fornecedores.
type SupplierInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,max=30"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Address   string `json:"address" validate:"required"`
}

// Normalize remove espaços das bordas; deve rodar antes da validação.
func (in SupplierInput) Normalize() SupplierInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	return in
}

// ToSupplier converte o payload na entidade; email vazio vira null.
func (in SupplierInput) ToSupplier(id int64) Supplier {
	in = in.Normalize()
	s := Supplier{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Address:   in.Address,
	}
	if in.Email != "" {
		s.Email = &in.Email
	}
	return s
}

// SupplierFilter define o cursor, o tamanho da página e o termo de busca da listagem.
type SupplierFilter struct {
	LastID int64
	Limit  int
	Search string
}

// Normalize aplica os valores padrão do filtro.
func (f SupplierFilter) Normalize() SupplierFilter {
	if f.LastID < 0 {
		f.LastID = 0
	}
	if f.Limit <= 0 {
		f.Limit = DefaultSupplierLimit
	}
	if f.Limit > MaxSupplierLimit {
		f.Limit = MaxSupplierLimit
	}
	return f
}

// SupplierPage é uma página da listagem por cursor (id decrescente).
type SupplierPage struct {
	Items   []Supplier
	LastID  int64
	HasMore bool
}

// NewSupplierPage monta a página a partir das linhas retornadas.
// HasMore é verdadeiro quando a página veio cheia.
func NewSupplierPage(items []Supplier, limit int) SupplierPage {
	page := SupplierPage{Items: items}
	if items == nil {
		page.Items = []Supplier{}
	}
	if n := len(page.Items); n > 0 {
		page.LastID = page.Items[n-1].ID
	}
	page.HasMore = limit > 0 && len(page.Items) == limit
	return page
}

// SupplierRepository é o contrato de persistência de fornecedores.
type SupplierRepository interface {
	FindPage(ctx context.Context, filter SupplierFilter) ([]Supplier, error)
	FindByID(ctx context.Context, id int64) (Supplier, error)
	Create(ctx context.Context, supplier Supplier) (Supplier, error)
	CreateMany(ctx context.Context, suppliers []Supplier) ([]Supplier, error)
	Update(ctx context.Context, supplier Supplier) (Supplier, error)
	Delete(ctx context.Context, id int64) (Supplier, error)
}
