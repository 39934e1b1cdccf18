package product

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"estoque/internal/api/respond"
	"estoque/internal/domain"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/logger"
	"estoque/internal/pkg/middleware"
	"estoque/internal/validator"
)

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
	GetByName(ctx context.Context, name string) (domain.Product, error)
	Create(ctx context.Context, in domain.ProductInput) (domain.Product, error)
	Update(ctx context.Context, id int64, update domain.ProductUpdate) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, id int64, delta int) (domain.Product, error)
}

// PayloadValidator valida os corpos das requisições de produto.
type PayloadValidator interface {
	ValidateProduct(body []byte) (domain.ProductInput, error)
	ValidateStockDelta(body []byte) (int, error)
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service   ProductService
	Validator PayloadValidator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service, o Validator e o Logger.
func NewHandler(svc ProductService, v PayloadValidator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

// queryParam devolve o primeiro parâmetro não vazio entre os nomes (inglês e português).
func queryParam(q url.Values, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(q.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

// ListProductsHandler lida com GET /products.
// @Summary Lista os produtos
// @Description Lista todos os produtos, com filtros opcionais por substring de nome e categoria (sem diferenciar maiúsculas). Resposta memorizada por um TTL.
// @Tags products
// @Produce json
// @Param name query string false "Filtro por nome (alias: nome)"
// @Param category query string false "Filtro por categoria (alias: categoria)"
// @Success 200 {array} domain.Product
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ProductFilter{
		Name:     queryParam(q, "name", "nome"),
		Category: queryParam(q, "category", "categoria"),
	}

	products, err := h.Service.List(r.Context(), filter)
	respond.Handle(w, r, h.Logger, products, err, http.StatusOK)
}

// CreateProductHandler lida com POST /products.
// @Summary Cria um novo produto
// @Description Cria um produto. Todos os campos são obrigatórios; quantidade e preço devem ser ≥ 0.
// @Tags products
// @Accept json
// @Produce json
// @Param product body domain.Product true "Dados do produto (id é ignorado)"
// @Success 201 {object} domain.Product "Produto criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security BearerAuth
// @Router /products [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if claims, ok := middleware.GetUserClaimsFromContext(ctx); ok {
		h.Logger.Debug("Criação de produto solicitada.", map[string]interface{}{"username": claims.Username})
	}

	body, err := respond.ReadBody(w, r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	in, err := h.Validator.ValidateProduct(body)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.Create(ctx, in)
	respond.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// GetProductHandler lida com GET /products/{id}.
// @Summary Busca um produto pelo ID
// @Tags products
// @Produce json
// @Param id path int true "ID do produto"
// @Success 200 {object} domain.Product
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id} [get]
func (h *Handler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := validator.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	p, err := h.Service.Get(r.Context(), id)
	respond.Handle(w, r, h.Logger, p, err, http.StatusOK)
}

// UpdateProductHandler lida com PUT /products/{id}.
// @Summary Atualiza um produto
// @Description Substitui os campos de um produto existente. O corpo deve conter todos os campos.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "ID do produto"
// @Param product body domain.Product true "Dados do produto (id é ignorado)"
// @Success 200 {object} domain.Product
// @Failure 400 {object} domain.ErrorResponse "Payload ou ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id} [put]
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := validator.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	body, err := respond.ReadBody(w, r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	in, err := h.Validator.ValidateProduct(body)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.Update(r.Context(), id, in.ToUpdate())
	respond.Handle(w, r, h.Logger, updated, err, http.StatusOK)
}

// DeleteProductHandler lida com DELETE /products/{id}.
// @Summary Remove um produto
// @Tags products
// @Param id path int true "ID do produto"
// @Success 204 "Produto removido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Produto possui vendas ou entregas"
// @Router /products/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := validator.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Delete(r.Context(), id)
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// GetProductByNameHandler lida com GET /product/{name}.
// @Summary Busca um produto pelo nome exato
// @Tags products
// @Produce json
// @Param name path string true "Nome do produto"
// @Success 200 {object} domain.Product
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /product/{name} [get]
func (h *Handler) GetProductByNameHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	p, err := h.Service.GetByName(r.Context(), name)
	respond.Handle(w, r, h.Logger, p, err, http.StatusOK)
}

// AdjustStockHandler lida com PUT /products/{id}/stock.
// @Summary Ajusta o estoque de um produto
// @Description Soma "quantidade" (positiva ou negativa) ao estoque atual. O resultado pode ficar negativo.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "ID do produto"
// @Param delta body object true "{\"quantidade\": delta}"
// @Success 200 {object} domain.Product
// @Failure 400 {object} domain.ErrorResponse "Quantidade inválida"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id}/stock [put]
func (h *Handler) AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	id, err := validator.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	body, err := respond.ReadBody(w, r)
	if err != nil {
		respond.Error(w, r, h.Logger, apperror.NewValidationError("Quantidade inválida!"))
		return
	}

	delta, err := h.Validator.ValidateStockDelta(body)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	p, err := h.Service.AdjustStock(r.Context(), id, delta)
	respond.Handle(w, r, h.Logger, p, err, http.StatusOK)
}
