package domain

import (
	"context"
	"strings"
)

// Paginação do catálogo de produtos.
const (
	DefaultProductLimit = 20
	MaxProductLimit     = 100
)

// Product representa o item de estoque referenciado pelas compras.
// Qty é o saldo; as compras apenas o incrementam.
type Product struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Qty        int64  `json:"qty"`
	CategoryID *int64 `json:"categoryId"`
}

// ProductInput é o payload de cadastro de produto, com o saldo inicial.
// CategoryID zero ou ausente deixa o produto sem categoria.
type ProductInput struct {
	Name       string `json:"name" validate:"required,max=255"`
	Qty        Int    `json:"qty" validate:"gte=0"`
	CategoryID Int    `json:"categoryId" validate:"gte=0"`
}

// Normalize remove espaços das bordas do nome.
func (in ProductInput) Normalize() ProductInput {
	in.Name = strings.TrimSpace(in.Name)
	return in
}

// ToProduct converte o payload na entidade.
func (in ProductInput) ToProduct() Product {
	p := Product{Name: strings.TrimSpace(in.Name), Qty: in.Qty.Int64()}
	if id := in.CategoryID.Int64(); id > 0 {
		p.CategoryID = &id
	}
	return p
}

// ProductFilter define a paginação por página e o filtro por nome do catálogo.
type ProductFilter struct {
	Page  int
	Limit int
	Name  string
	// CategoryID > 0 restringe a listagem à categoria.
	CategoryID int64
}

// Normalize aplica os valores padrão do filtro.
func (f ProductFilter) Normalize() ProductFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultProductLimit
	}
	if f.Limit > MaxProductLimit {
		f.Limit = MaxProductLimit
	}
	f.Name = strings.TrimSpace(f.Name)
	return f
}

// Offset devolve o deslocamento da página.
func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ProductRepository define o contrato de persistência do catálogo.
type ProductRepository interface {
	Save(ctx context.Context, product Product) (Product, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]Product, error)
}
