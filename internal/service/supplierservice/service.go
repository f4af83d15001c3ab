package supplierservice

import (
	"context"
	"fmt"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/validation"
)

// Service implementa os casos de uso de fornecedores.
type Service struct {
	repo      domain.SupplierRepository
	validator *validation.Validator
	logger    logger.Logger
}

// NewService cria o serviço de fornecedores.
func NewService(repo domain.SupplierRepository, v *validation.Validator, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: v,
		logger:    log.WithComponent("service/supplier"),
	}
}

// List devolve uma página de fornecedores em ordem decrescente de id.
func (s *Service) List(ctx context.Context, filter domain.SupplierFilter) (domain.SupplierPage, error) {
	filter = filter.Normalize()

	items, err := s.repo.FindPage(ctx, filter)
	if err != nil {
		return domain.SupplierPage{}, err
	}
	return domain.NewSupplierPage(items, filter.Limit), nil
}

// GetByID devolve o fornecedor ou nil quando ele não existe.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

// Create valida o payload e insere o fornecedor.
func (s *Service) Create(ctx context.Context, input domain.SupplierInput) (domain.Supplier, error) {
	input = input.Normalize()
	if err := s.validator.Struct(input); err != nil {
		return domain.Supplier{}, err
	}

	created, err := s.repo.Create(ctx, input.ToSupplier(0))
	if err != nil {
		return domain.Supplier{}, err
	}

	s.logger.Info("Fornecedor criado", map[string]interface{}{"supplier_id": created.ID})
	return created, nil
}

// Update substitui os cinco campos do fornecedor.
func (s *Service) Update(ctx context.Context, id int64, input domain.SupplierInput) (domain.Supplier, error) {
	if id <= 0 {
		return domain.Supplier{}, apperror.NewValidationError(fmt.Sprintf("invalid supplier id %d", id))
	}
	input = input.Normalize()
	if err := s.validator.Struct(input); err != nil {
		return domain.Supplier{}, err
	}

	updated, err := s.repo.Update(ctx, input.ToSupplier(id))
	if err != nil {
		return domain.Supplier{}, err
	}

	s.logger.Info("Fornecedor atualizado", map[string]interface{}{"supplier_id": id})
	return updated, nil
}

// Delete remove o fornecedor e devolve a linha removida.
func (s *Service) Delete(ctx context.Context, id int64) (domain.Supplier, error) {
	if id <= 0 {
		return domain.Supplier{}, apperror.NewValidationError(fmt.Sprintf("invalid supplier id %d", id))
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Supplier{}, err
	}

	s.logger.Info("Fornecedor removido", map[string]interface{}{"supplier_id": id})
	return deleted, nil
}
