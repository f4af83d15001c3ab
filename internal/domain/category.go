package domain

import (
	"context"
	"strings"
)

// Category agrupa produtos do catálogo.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryInput é o payload de criação e atualização de categorias.
type CategoryInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Normalize remove espaços das bordas do nome.
func (in CategoryInput) Normalize() CategoryInput {
	in.Name = strings.TrimSpace(in.Name)
	return in
}

// ToCategory converte o payload na entidade.
func (in CategoryInput) ToCategory(id int64) Category {
	return Category{ID: id, Name: strings.TrimSpace(in.Name)}
}

// CategoryRepository é o contrato de persistência de categorias.
// Nome duplicado vira ConflictError; ao remover, os produtos ficam sem categoria.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, id int64) (Category, error)
}
