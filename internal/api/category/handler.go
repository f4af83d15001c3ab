package category

import (
	"context"
	"net/http"

	"gosupply/internal/api/response"
	"gosupply/internal/domain"
	"gosupply/internal/pkg/logger"
)

// CategoryService define o contrato que o Handler espera da camada de Serviço.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (domain.Category, error)
	Create(ctx context.Context, input domain.CategoryInput) (domain.Category, error)
	Update(ctx context.Context, id int64, input domain.CategoryInput) (domain.Category, error)
	Delete(ctx context.Context, id int64) (domain.Category, error)
}

// Handler agrupa os handlers HTTP de categorias.
type Handler struct {
	Service CategoryService
	Logger  logger.Logger
}

// NewHandler cria o Handler de categorias.
func NewHandler(svc CategoryService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log.WithComponent("api/category"),
	}
}

// ListCategories lida com GET /api/category.
// @Summary Lista as categorias
// @Tags categories
// @Produce json
// @Success 200 {object} domain.Response{result=[]domain.Category}
// @Failure 500 {object} domain.ErrorResponse
// @Router /category [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.List(r.Context())
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.OK(w, categories)
}

// GetCategory lida com GET /api/category/{id}.
// @Summary Busca uma categoria
// @Tags categories
// @Produce json
// @Param id path int true "ID da categoria"
// @Success 200 {object} domain.Response{result=domain.Category}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /category/{id} [get]
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	category, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.OK(w, category)
}

// CreateCategory lida com POST /api/category.
// @Summary Cria uma categoria
// @Tags categories
// @Accept json
// @Produce json
// @Param category body domain.CategoryInput true "Nome da categoria"
// @Success 200 {object} domain.Response{result=domain.Category}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /category [post]
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input domain.CategoryInput
	if err := response.DecodeJSON(r, &input); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.Create(r.Context(), input)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.OK(w, created)
}

// UpdateCategory lida com PUT /api/category/{id}.
// @Summary Renomeia uma categoria
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "ID da categoria"
// @Param category body domain.CategoryInput true "Nome da categoria"
// @Success 200 {object} domain.Response{result=domain.Category}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /category/{id} [put]
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var input domain.CategoryInput
	if err := response.DecodeJSON(r, &input); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.OK(w, updated)
}

// DeleteCategory lida com DELETE /api/category/{id}.
// @Summary Remove uma categoria
// @Description Os produtos da categoria ficam sem categoria.
// @Tags categories
// @Produce json
// @Param id path int true "ID da categoria"
// @Success 200 {object} domain.Response{result=domain.Category}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /category/{id} [delete]
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.OK(w, deleted)
}
