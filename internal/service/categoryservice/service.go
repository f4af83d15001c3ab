package categoryservice

import (
	"context"
	"fmt"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/validation"
)

// Service é a camada de negócio das categorias do catálogo.
type Service struct {
	repo      domain.CategoryRepository
	validator *validation.Validator
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Categoria.
func NewService(repo domain.CategoryRepository, v *validation.Validator, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: v,
		logger:    log.WithComponent("service/category"),
	}
}

// List devolve todas as categorias.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// GetByID busca uma categoria pelo ID.
func (s *Service) GetByID(ctx context.Context, id int64) (domain.Category, error) {
	if id <= 0 {
		return domain.Category{}, invalidID(id)
	}
	return s.repo.FindByID(ctx, id)
}

// Create valida o payload e insere a categoria.
func (s *Service) Create(ctx context.Context, input domain.CategoryInput) (domain.Category, error) {
	input = input.Normalize()
	if err := s.validator.Struct(input); err != nil {
		return domain.Category{}, err
	}

	created, err := s.repo.Create(ctx, input.ToCategory(0))
	if err != nil {
		return domain.Category{}, err
	}

	s.logger.Info("Categoria criada", map[string]interface{}{"category_id": created.ID})
	return created, nil
}

// Update renomeia a categoria.
func (s *Service) Update(ctx context.Context, id int64, input domain.CategoryInput) (domain.Category, error) {
	if id <= 0 {
		return domain.Category{}, invalidID(id)
	}
	input = input.Normalize()
	if err := s.validator.Struct(input); err != nil {
		return domain.Category{}, err
	}
	return s.repo.Update(ctx, input.ToCategory(id))
}

// Delete remove a categoria; os produtos dela ficam sem categoria.
func (s *Service) Delete(ctx context.Context, id int64) (domain.Category, error) {
	if id <= 0 {
		return domain.Category{}, invalidID(id)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}

	s.logger.Info("Categoria removida", map[string]interface{}{"category_id": id})
	return deleted, nil
}

func invalidID(id int64) error {
	return apperror.NewValidationError(fmt.Sprintf("invalid category id %d", id))
}
