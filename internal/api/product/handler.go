package product

import (
	"context"
	"net/http"

	"gosupply/internal/api/response"
	"gosupply/internal/domain"
	"gosupply/internal/pkg/logger"
)

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	CreateProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (domain.Product, error)
	GetProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service ProductService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProductService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log.WithComponent("api/product"),
	}
}

// CreateProductHandler lida com a requisição POST /api/product.
// @Summary Cadastra um produto
// @Tags products
// @Accept json
// @Produce json
// @Param product body domain.ProductInput true "Nome, saldo inicial e categoria"
// @Success 200 {object} domain.Response{result=domain.Product}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /product [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.ProductInput
	if err := response.DecodeJSON(r, &input); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateProduct(r.Context(), input)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.OK(w, created)
}

// GetProductByIDHandler lida com a requisição GET /api/product/{id}.
// @Summary Busca um produto
// @Tags products
// @Produce json
// @Param id path int true "ID do produto"
// @Success 200 {object} domain.Response{result=domain.Product}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /product/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	product, err := h.Service.GetProductByID(r.Context(), id)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.OK(w, product)
}

// ListProductsHandler lida com a requisição GET /api/product.
// @Summary Lista o catálogo com o saldo atual
// @Tags products
// @Produce json
// @Param page query int false "Página" default(1)
// @Param limit query int false "Itens por página (máx. 100)" default(20)
// @Param name query string false "Filtro por nome (sem diferenciar maiúsculas)"
// @Param categoryId query int false "Filtro por categoria"
// @Success 200 {object} domain.Response{result=[]domain.Product}
// @Failure 500 {object} domain.ErrorResponse
// @Router /product [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProductFilter{
		Page:  int(response.QueryInt(r, "page", 1)),
		Limit: int(response.QueryInt(r, "limit", domain.DefaultProductLimit)),
		Name:  r.URL.Query().Get("name"),

		CategoryID: response.QueryInt(r, "categoryId", 0),
	}

	products, err := h.Service.GetProducts(r.Context(), filter)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.OK(w, products)
}
