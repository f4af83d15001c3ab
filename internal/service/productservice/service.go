package productservice

import (
	"context"
	"fmt"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/validation"
)

// Service é a camada de negócio do catálogo de produtos.
type Service struct {
	repo      domain.ProductRepository
	validator *validation.Validator
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(repo domain.ProductRepository, v *validation.Validator, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: v,
		logger:    log.WithComponent("service/product"),
	}
}

// CreateProduct cadastra um produto com o saldo inicial do payload.
func (s *Service) CreateProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error) {
	input = input.Normalize()
	if err := s.validator.Struct(input); err != nil {
		return domain.Product{}, err
	}

	created, err := s.repo.Save(ctx, input.ToProduct())
	if err != nil {
		return domain.Product{}, err
	}

	s.logger.Info("Produto criado", map[string]interface{}{"product_id": created.ID})
	return created, nil
}

// GetProductByID busca um produto pelo ID.
func (s *Service) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, apperror.NewValidationError(fmt.Sprintf("invalid product id %d", id))
	}
	return s.repo.FindByID(ctx, id)
}

// GetProducts lista o catálogo paginado.
func (s *Service) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.repo.FindAll(ctx, filter.Normalize())
}
