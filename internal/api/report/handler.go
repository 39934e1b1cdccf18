package report

import (
	"context"
	"net/http"
	"net/url"

	"estoque/internal/api/respond"
	"estoque/internal/domain"
	"estoque/internal/pkg/logger"
	"estoque/internal/service/reportservice"
	"estoque/internal/validator"
)

// ReportService define o contrato que o Handler espera da camada de Serviço.
type ReportService interface {
	Thresholds() reportservice.Thresholds
	StockReport(ctx context.Context, t reportservice.Thresholds) (domain.StockReport, error)
	ProductReport(ctx context.Context) (domain.ProductReport, error)
	SalesReport(ctx context.Context, period domain.DateRange) ([]domain.Sale, error)
}

// RangeValidator valida o período do relatório de vendas.
type RangeValidator interface {
	ValidateSalesRange(q url.Values) (domain.DateRange, error)
}

type Handler struct {
	Service   ReportService
	Validator RangeValidator
	Logger    logger.Logger
	// Legacy devolve os relatórios com as chaves originais (baixo_estoque, total_estoque, ...).
	Legacy bool
}

func NewHandler(svc ReportService, v RangeValidator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

// WithLegacyShape devolve uma cópia do Handler que responde no formato das rotas antigas.
func (h *Handler) WithLegacyShape() *Handler {
	legacy := *h
	legacy.Legacy = true
	return &legacy
}

// legacyStockReport é o formato de /api/relatorios.
type legacyStockReport struct {
	LowStock  []domain.StockLevelEntry `json:"baixo_estoque"`
	HighStock []domain.StockLevelEntry `json:"excesso_estoque"`
}

// legacyProductReport é o formato de /api/relatorio_produtos.
type legacyProductReport struct {
	Products []domain.ProductQuantityEntry `json:"produtos"`
	Total    int                           `json:"total_estoque"`
}

// StockReportHandler lida com GET /reports/stock.
// @Summary Relatório de estoque baixo e em excesso
// @Tags reports
// @Produce json
// @Param low query int false "Limite de estoque baixo (padrão 10)"
// @Param high query int false "Limite de excesso de estoque (padrão 100)"
// @Success 200 {object} domain.StockReport
// @Failure 400 {object} domain.ErrorResponse "Limite inválido"
// @Router /reports/stock [get]
func (h *Handler) StockReportHandler(w http.ResponseWriter, r *http.Request) {
	defaults := h.Service.Thresholds()
	q := r.URL.Query()

	low, err := validator.ParseThreshold(q, "low", defaults.Low)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	high, err := validator.ParseThreshold(q, "high", defaults.High)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	report, err := h.Service.StockReport(r.Context(), reportservice.Thresholds{Low: low, High: high})
	if err != nil || !h.Legacy {
		respond.Handle(w, r, h.Logger, report, err, http.StatusOK)
		return
	}
	respond.Handle(w, r, h.Logger, legacyStockReport{LowStock: report.LowStock, HighStock: report.HighStock}, nil, http.StatusOK)
}

// ProductReportHandler lida com GET /reports/products.
// @Summary Quantidade por produto e total em estoque
// @Tags reports
// @Produce json
// @Success 200 {object} domain.ProductReport
// @Router /reports/products [get]
func (h *Handler) ProductReportHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.ProductReport(r.Context())
	if err != nil || !h.Legacy {
		respond.Handle(w, r, h.Logger, report, err, http.StatusOK)
		return
	}
	respond.Handle(w, r, h.Logger, legacyProductReport{Products: report.Products, Total: report.Total}, nil, http.StatusOK)
}

// SalesReportHandler lida com GET /reports/sales.
// @Summary Vendas em um período
// @Description Lista as vendas com data entre start e end (inclusive). Aceita também data_inicial e data_final.
// @Tags reports
// @Produce json
// @Param start query string true "Data inicial (AAAA-MM-DD ou AAAA-MM-DDTHH:MM:SS)"
// @Param end query string true "Data final (AAAA-MM-DD cobre o dia inteiro)"
// @Success 200 {array} domain.Sale
// @Failure 400 {object} domain.ErrorResponse "Período inválido"
// @Router /reports/sales [get]
func (h *Handler) SalesReportHandler(w http.ResponseWriter, r *http.Request) {
	period, err := h.Validator.ValidateSalesRange(r.URL.Query())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	sales, err := h.Service.SalesReport(r.Context(), period)
	respond.Handle(w, r, h.Logger, sales, err, http.StatusOK)
}
