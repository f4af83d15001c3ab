// Package response padroniza a escrita das respostas JSON da API.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/logger"
)

// Mensagens de sucesso usadas nos envelopes.
const (
	MessageSuccess     = "success"
	MessageListSuccess = "Success"
	MessageNotFound    = "Not Found"
)

// JSON escreve body com o status informado.
func JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// OK escreve {message:"success", result}.
func OK(w http.ResponseWriter, result interface{}) {
	JSON(w, http.StatusOK, domain.Response{Message: MessageSuccess, Result: result})
}

// Error traduz err para o status da sua categoria e escreve {message, result:null}.
// Erros 5xx são registrados com a causa; os demais em debug.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, _, message := apperror.MapToHTTPStatus(err)
	logError(r, log, status, err)
	JSON(w, status, domain.Response{Message: message})
}

// ErrorWithStatus escreve o erro com um status fixo, independente da categoria.
func ErrorWithStatus(w http.ResponseWriter, r *http.Request, log logger.Logger, status int, err error) {
	_, _, message := apperror.MapToHTTPStatus(err)
	logError(r, log, status, err)
	JSON(w, status, domain.Response{Message: message})
}

func logError(r *http.Request, log logger.Logger, status int, err error) {
	_, category, _ := apperror.MapToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s %s (%s)", r.Method, r.URL.Path, category), err)
		return
	}
	log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
		"path":  r.URL.Path,
		"error": err.Error(),
	})
}

// DecodeJSON decodifica o corpo em dst; falhas viram ValidationError.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return apperror.NewValidationError("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError(fmt.Sprintf("invalid payload: %s", err.Error()))
	}
	return nil
}

// PathID lê o parâmetro {name} da rota como inteiro positivo.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewValidationError(fmt.Sprintf("invalid %s %q", name, raw))
	}
	return id, nil
}

// QueryInt lê um inteiro da query string; valores ausentes ou inválidos viram def.
func QueryInt(r *http.Request, name string, def int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return v
}

// NotFound é o handler das rotas não mapeadas.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusNotFound, map[string]string{"message": MessageNotFound})
}
