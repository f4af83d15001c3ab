package purchaseservice

import (
	"context"
	"fmt"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/metrics"
	"gosupply/internal/pkg/validation"
)

// Mensagens das regras de negócio verificadas dentro da transação.
const (
	ErrMsgEmptyDetail  = "purchase detail cannot be empty"
	ErrMsgEmptyProduct = "product cannot be empty"
	ErrMsgEmptyQty     = "qty cannot be empty"
)

// CodeGenerator gera os códigos das compras.
type CodeGenerator interface {
	Generate(prefix string) string
}

// Service orquestra a criação de compras: cabeçalho, linhas e entrada de estoque
// numa única transação.
type Service struct {
	repo      domain.PurchaseRepository
	codes     CodeGenerator
	validator *validation.Validator
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewService cria o serviço de compras. m pode ser nil.
func NewService(repo domain.PurchaseRepository, codes CodeGenerator, v *validation.Validator, m *metrics.Metrics, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		codes:     codes,
		validator: v,
		metrics:   m,
		logger:    log.WithComponent("service/purchase"),
	}
}

// CreatePurchase valida o payload e grava a compra. Qualquer falha dentro da
// transação desfaz o cabeçalho, as linhas e os incrementos de estoque.
// Devolve o payload normalizado.
func (s *Service) CreatePurchase(ctx context.Context, req domain.PurchaseRequest) (domain.PurchaseRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		s.metrics.PurchaseFailed(categoryOf(err))
		return domain.PurchaseRequest{}, err
	}

	code := s.codes.Generate(domain.OrderCodePrefix)

	var (
		created domain.Purchase
		units   int64
	)
	err := s.repo.WithinTx(ctx, func(tx domain.PurchaseTx) error {
		var err error
		created, err = tx.CreatePurchase(ctx, req.Header(code))
		if err != nil {
			return err
		}

		if len(req.Detail) == 0 {
			return apperror.NewBusinessRuleError(ErrMsgEmptyDetail)
		}

		units = 0
		for _, line := range req.Detail {
			if line.Product.ProductID == 0 {
				return apperror.NewBusinessRuleError(ErrMsgEmptyProduct)
			}
			if line.Qty == 0 {
				return apperror.NewBusinessRuleError(ErrMsgEmptyQty)
			}

			detail, err := tx.CreateDetail(ctx, line.DetailFor(created.ID))
			if err != nil {
				return err
			}
			if err := tx.IncrementStock(ctx, detail.ProductID, detail.Qty); err != nil {
				return err
			}
			units += detail.Qty
		}
		return nil
	})
	if err != nil {
		s.metrics.PurchaseFailed(categoryOf(err))
		s.logger.Warn("Compra desfeita", map[string]interface{}{
			"code":  code,
			"error": err.Error(),
		})
		return domain.PurchaseRequest{}, err
	}

	s.metrics.PurchaseCreated(len(req.Detail), units)
	s.logger.Info("Compra registrada", map[string]interface{}{
		"purchase_id": created.ID,
		"code":        created.Code,
		"lines":       len(req.Detail),
		"units":       units,
	})
	return req, nil
}

// GetPurchase devolve a compra com suas linhas.
func (s *Service) GetPurchase(ctx context.Context, id int64) (domain.Purchase, error) {
	if id <= 0 {
		return domain.Purchase{}, apperror.NewValidationError(fmt.Sprintf("invalid purchase id %d", id))
	}
	return s.repo.FindByID(ctx, id)
}

func categoryOf(err error) string {
	_, category, _ := apperror.MapToHTTPStatus(err)
	return category
}
