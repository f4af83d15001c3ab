package purchase

import (
	"context"
	"net/http"

	"gosupply/internal/api/response"
	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/middleware"
)

// PurchaseService define o contrato que o Handler espera da camada de Serviço.
type PurchaseService interface {
	CreatePurchase(ctx context.Context, req domain.PurchaseRequest) (domain.PurchaseRequest, error)
	GetPurchase(ctx context.Context, id int64) (domain.Purchase, error)
}

// Handler agrupa os handlers HTTP de compras.
type Handler struct {
	Service PurchaseService
	Logger  logger.Logger
}

// NewHandler cria o Handler de compras.
func NewHandler(svc PurchaseService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log.WithComponent("api/purchase"),
	}
}

// CreatePurchase lida com POST /api/purchase.
// @Summary Registra uma compra
// @Description Grava cabeçalho, linhas e entrada de estoque numa única transação.
// @Description Erros de validação devolvem 400; qualquer outra falha desfaz a transação e devolve 500.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body domain.PurchaseRequest true "Compra"
// @Success 200 {object} domain.Response{result=domain.PurchaseRequest}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /purchase [post]
func (h *Handler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req domain.PurchaseRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.ErrorWithStatus(w, r, h.Logger, http.StatusBadRequest, err)
		return
	}

	// Sem userId no payload, a compra é atribuída ao usuário autenticado.
	if claims, ok := middleware.GetUserClaimsFromContext(r.Context()); ok && req.UserID == 0 {
		req.UserID = domain.Int(claims.UserID)
	}

	created, err := h.Service.CreatePurchase(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if apperror.IsValidation(err) {
			status = http.StatusBadRequest
		}
		response.ErrorWithStatus(w, r, h.Logger, status, err)
		return
	}
	response.OK(w, created)
}

// GetPurchase lida com GET /api/purchase/{id}.
// @Summary Busca uma compra
// @Description Cabeçalho com as linhas da compra.
// @Tags purchases
// @Produce json
// @Param id path int true "ID da compra"
// @Success 200 {object} domain.Response{result=domain.Purchase}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /purchase/{id} [get]
func (h *Handler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	purchase, err := h.Service.GetPurchase(r.Context(), id)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.OK(w, purchase)
}
