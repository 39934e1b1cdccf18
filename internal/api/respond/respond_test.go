package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estoque/internal/api/respond"
	"estoque/internal/domain"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/logger"
)

func TestHandle_SuccessWritesJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)

	respond.Handle(rr, req, logger.NewNop(), []domain.Product{{ID: 1, Name: "Bolt"}}, nil, http.StatusOK)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":1,"nome":"Bolt","categoria":"","quantidade":0,"preco":0,"localizacao":""}]`, rr.Body.String())
}

func TestHandle_NoContentHasEmptyBody(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)

	respond.Handle(rr, req, logger.NewNop(), map[string]string{"ignorado": "sim"}, nil, http.StatusNoContent)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestError_ValidationCarriesFields(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	err := apperror.NewFieldValidationError("Payload inválido.", map[string][]string{"quantidade": {"Deve ser maior ou igual a 0."}})

	respond.Error(rr, req, logger.NewNop(), err)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 400, body.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Category)
	assert.Contains(t, body.Fields, "quantidade")
}

func TestError_InternalHidesCause(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)

	respond.Error(rr, req, logger.NewNop(), apperror.NewDBError("Falha ao listar", errors.New("pq: senha do banco")))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "senha do banco")
	assert.NotContains(t, rr.Body.String(), "fields")
}

func TestReadBody_RejectsOversizedBody(t *testing.T) {
	big := strings.Repeat("a", respond.MaxBodyBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(big))
	rr := httptest.NewRecorder()

	_, err := respond.ReadBody(rr, req)

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "muito grande")
}
