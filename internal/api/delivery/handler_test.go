package delivery_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estoque/internal/api/delivery"
	"estoque/internal/domain"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/logger"
	"estoque/internal/validator"
)

type MockDeliveryService struct {
	mock.Mock
}

func (m *MockDeliveryService) Schedule(ctx context.Context, d domain.Delivery) (domain.Delivery, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(domain.Delivery), args.Error(1)
}

func post(h *delivery.Handler, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ScheduleDeliveryHandler(rr, httptest.NewRequest(http.MethodPost, "/deliveries", strings.NewReader(body)))
	return rr
}

func TestScheduleDeliveryHandler_Created(t *testing.T) {
	svc := new(MockDeliveryService)
	when := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)
	in := domain.Delivery{ProductID: 1, DeliveryDate: when, Address: "Rua A, 1"}
	out := in
	out.ID = 3
	svc.On("Schedule", mock.Anything, in).Return(out, nil)

	rr := post(delivery.NewHandler(svc, validator.New(), logger.NewNop()),
		`{"produto_id":1,"data_entrega":"2030-05-01T10:00:00","endereco_entrega":"  Rua A, 1 "}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":3,"produto_id":1,"data_entrega":"2030-05-01T10:00:00Z","endereco_entrega":"Rua A, 1"}`, rr.Body.String())
	svc.AssertExpectations(t)
}

func TestScheduleDeliveryHandler_InvalidPayload(t *testing.T) {
	svc := new(MockDeliveryService)

	rr := post(delivery.NewHandler(svc, validator.New(), logger.NewNop()), `{"produto_id":1}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"endereco_entrega"`)
	svc.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
}

func TestScheduleDeliveryHandler_UnknownProduct(t *testing.T) {
	svc := new(MockDeliveryService)
	svc.On("Schedule", mock.Anything, mock.Anything).Return(domain.Delivery{},
		apperror.NewFieldValidationError("Produto inexistente.", map[string][]string{"produto_id": {"Produto não encontrado."}}))

	rr := post(delivery.NewHandler(svc, validator.New(), logger.NewNop()),
		`{"produto_id":99,"data_entrega":"2030-05-01","endereco_entrega":"Rua A, 1"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Produto não encontrado.")
}
