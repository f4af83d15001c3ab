package supplier

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"gosupply/internal/api/response"
	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/service/supplierservice"
)

// Limite do upload de planilhas (10 MiB).
const maxUploadSize = 10 << 20

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SupplierService define o contrato que o Handler espera da camada de Serviço.
type SupplierService interface {
	List(ctx context.Context, filter domain.SupplierFilter) (domain.SupplierPage, error)
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	Create(ctx context.Context, input domain.SupplierInput) (domain.Supplier, error)
	Update(ctx context.Context, id int64, input domain.SupplierInput) (domain.Supplier, error)
	Delete(ctx context.Context, id int64) (domain.Supplier, error)
	Export(ctx context.Context, w io.Writer) (int, error)
	Import(ctx context.Context, r io.Reader) (supplierservice.ImportResult, error)
}

// Handler agrupa os handlers HTTP de fornecedores.
type Handler struct {
	Service SupplierService
	Logger  logger.Logger
}

// NewHandler cria o Handler de fornecedores.
func NewHandler(svc SupplierService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log.WithComponent("api/supplier"),
	}
}

// ListSuppliers lida com GET /api/supplier.
// @Summary Lista fornecedores
// @Description Paginação por cursor (id decrescente) com busca por substring em todos os campos.
// @Tags suppliers
// @Produce json
// @Param lastId query int false "Cursor: id do último fornecedor da página anterior" default(0)
// @Param limit query int false "Tamanho da página (máx. 100)" default(10)
// @Param search_query query string false "Termo de busca"
// @Success 200 {object} domain.PageResponse{result=[]domain.Supplier}
// @Failure 500 {object} domain.PageResponse
// @Router /supplier [get]
func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	filter := domain.SupplierFilter{
		LastID: response.QueryInt(r, "lastId", 0),
		Limit:  int(response.QueryInt(r, "limit", domain.DefaultSupplierLimit)),
		Search: r.URL.Query().Get("search_query"),
	}

	page, err := h.Service.List(r.Context(), filter)
	if err != nil {
		_, _, message := apperror.MapToHTTPStatus(err)
		h.Logger.Error("Falha ao listar fornecedores", err)
		response.JSON(w, http.StatusInternalServerError, domain.PageResponse{Message: message})
		return
	}

	response.JSON(w, http.StatusOK, domain.PageResponse{
		Message: response.MessageListSuccess,
		Result:  page.Items,
		LastID:  page.LastID,
		HasMore: page.HasMore,
	})
}

// GetSupplier lida com GET /api/supplier/{id}.
// @Summary Busca um fornecedor
// @Description Fornecedor inexistente devolve result null.
// @Tags suppliers
// @Produce json
// @Param id path int true "ID do fornecedor"
// @Success 200 {object} domain.Response{result=domain.Supplier}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /supplier/{id} [get]
func (h *Handler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	supplier, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	if supplier == nil {
		response.OK(w, nil)
		return
	}
	response.OK(w, supplier)
}

// CreateSupplier lida com POST /api/supplier.
// @Summary Cria um fornecedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body domain.SupplierInput true "Dados do fornecedor"
// @Success 200 {object} domain.Response{result=domain.Supplier}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /supplier [post]
func (h *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var input domain.SupplierInput
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

// UpdateSupplier lida com PUT /api/supplier/{id}.
// @Summary Atualiza um fornecedor
// @Description Substitui os cinco campos do fornecedor.
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path int true "ID do fornecedor"
// @Param supplier body domain.SupplierInput true "Dados do fornecedor"
// @Success 200 {object} domain.Response{result=domain.Supplier}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /supplier/{id} [put]
func (h *Handler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var input domain.SupplierInput
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

// DeleteSupplier lida com DELETE /api/supplier/{id}.
// @Summary Remove um fornecedor
// @Description Remoção física; devolve a linha removida.
// @Tags suppliers
// @Produce json
// @Param id path int true "ID do fornecedor"
// @Success 200 {object} domain.Response{result=domain.Supplier}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /supplier/{id} [delete]
func (h *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
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

// ExportSuppliers lida com GET /api/supplier/export.
// @Summary Exporta fornecedores
// @Description Planilha xlsx com todos os fornecedores.
// @Tags suppliers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} domain.ErrorResponse
// @Router /supplier/export [get]
func (h *Handler) ExportSuppliers(w http.ResponseWriter, r *http.Request) {
	// A planilha é montada em memória para que um erro ainda possa virar JSON.
	var buf bytes.Buffer
	if _, err := h.Service.Export(r.Context(), &buf); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="suppliers.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Error("Falha ao enviar planilha", err)
	}
}

// ImportSuppliers lida com POST /api/supplier/import.
// @Summary Importa fornecedores
// @Description Upload multipart (campo "file") de uma planilha .xlsx no layout da exportação.
// @Tags suppliers
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Planilha .xlsx"
// @Success 200 {object} domain.Response{result=supplierservice.ImportResult}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /supplier/import [post]
func (h *Handler) ImportSuppliers(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, r, h.Logger, apperror.NewValidationError("file is required"))
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		response.Error(w, r, h.Logger, apperror.NewValidationError("only Excel files (.xlsx) are allowed"))
		return
	}

	result, err := h.Service.Import(r.Context(), file)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.OK(w, result)
}
