// Package respond concentra a escrita das respostas JSON dos handlers,
// evitando a repetição de handleServiceResponse em cada pacote da API.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"estoque/internal/domain"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/logger"
)

// JSON escreve data com o status informado.
func JSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Error traduz err para o corpo padronizado {code, category, message, fields}.
// Erros 5xx são registrados com a causa; erros de cliente apenas em debug.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s %s %s", category, r.Method, r.URL.Path), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"path":  r.URL.Path,
			"error": err.Error(),
		})
	}

	body := domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Fields:   apperror.FieldErrors(err),
	}
	if encErr := JSON(w, status, body); encErr != nil {
		log.Error("Falha ao codificar JSON de erro", encErr)
	}
}

// Handle processa o resultado de um Service: erro padronizado ou data com successStatus.
// Com 204 nenhum corpo é escrito.
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}

	if successStatus == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if encErr := JSON(w, successStatus, data); encErr != nil {
		log.Error("Falha ao codificar JSON de resposta", encErr)
	}
}

// MaxBodyBytes limita o tamanho dos corpos JSON aceitos.
const MaxBodyBytes = 1 << 20

// ReadBody lê o corpo da requisição respeitando MaxBodyBytes.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperror.NewValidationError("Corpo da requisição muito grande.")
		}
		return nil, apperror.NewValidationError("Falha ao ler o corpo da requisição.")
	}
	return body, nil
}
