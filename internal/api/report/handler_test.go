package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estoque/internal/api/report"
	"estoque/internal/domain"
	"estoque/internal/pkg/logger"
	"estoque/internal/service/reportservice"
	"estoque/internal/validator"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Thresholds() reportservice.Thresholds {
	return reportservice.Thresholds{Low: 10, High: 100}
}

func (m *MockReportService) StockReport(ctx context.Context, t reportservice.Thresholds) (domain.StockReport, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(domain.StockReport), args.Error(1)
}

func (m *MockReportService) ProductReport(ctx context.Context) (domain.ProductReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ProductReport), args.Error(1)
}

func (m *MockReportService) SalesReport(ctx context.Context, period domain.DateRange) ([]domain.Sale, error) {
	args := m.Called(ctx, period)
	return args.Get(0).([]domain.Sale), args.Error(1)
}

var stock = domain.StockReport{
	LowStock:  []domain.StockLevelEntry{{Name: "Nut", Quantity: 5, Location: "A2"}},
	HighStock: []domain.StockLevelEntry{},
}

func get(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestStockReportHandler_DefaultsAndOverrides(t *testing.T) {
	svc := new(MockReportService)
	svc.On("StockReport", mock.Anything, reportservice.Thresholds{Low: 10, High: 100}).Return(stock, nil)
	svc.On("StockReport", mock.Anything, reportservice.Thresholds{Low: 3, High: 100}).Return(stock, nil)
	h := report.NewHandler(svc, validator.New(), logger.NewNop())

	rr := get(h.StockReportHandler, "/reports/stock")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"low_stock":[{"nome":"Nut","quantidade":5,"localizacao":"A2"}],"high_stock":[]}`, rr.Body.String())

	rr = get(h.StockReportHandler, "/reports/stock?low=3")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = get(h.StockReportHandler, "/reports/stock?high=muito")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertExpectations(t)
}

func TestStockReportHandler_LegacyShape(t *testing.T) {
	svc := new(MockReportService)
	svc.On("StockReport", mock.Anything, mock.Anything).Return(stock, nil)
	h := report.NewHandler(svc, validator.New(), logger.NewNop()).WithLegacyShape()

	rr := get(h.StockReportHandler, "/api/relatorios")

	assert.JSONEq(t, `{"baixo_estoque":[{"nome":"Nut","quantidade":5,"localizacao":"A2"}],"excesso_estoque":[]}`, rr.Body.String())
}

func TestProductReportHandler(t *testing.T) {
	svc := new(MockReportService)
	svc.On("ProductReport", mock.Anything).Return(domain.ProductReport{
		Products: []domain.ProductQuantityEntry{{Name: "Bolt", Quantity: 50}},
		Total:    50,
	}, nil)
	h := report.NewHandler(svc, validator.New(), logger.NewNop())

	rr := get(h.ProductReportHandler, "/reports/products")
	assert.JSONEq(t, `{"products":[{"nome":"Bolt","quantidade":50}],"total":50}`, rr.Body.String())

	rr = get(h.WithLegacyShape().ProductReportHandler, "/api/relatorio_produtos")
	assert.JSONEq(t, `{"produtos":[{"nome":"Bolt","quantidade":50}],"total_estoque":50}`, rr.Body.String())
}

func TestSalesReportHandler(t *testing.T) {
	svc := new(MockReportService)
	period := domain.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 23, 59, 59, 999999000, time.UTC),
	}
	soldAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.On("SalesReport", mock.Anything, period).Return([]domain.Sale{{ID: 1, ProductID: 2, ProductName: "Bolt", QuantitySold: 3, SoldAt: soldAt}}, nil)
	h := report.NewHandler(svc, validator.New(), logger.NewNop())

	rr := get(h.SalesReportHandler, "/reports/sales?data_inicial=2024-01-01&data_final=2024-01-01")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"produto_id":2,"produto":"Bolt","quantidade_vendida":3,"data_venda":"2024-01-01T12:00:00Z"}]`, rr.Body.String())

	rr = get(h.SalesReportHandler, "/reports/sales")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
