package delivery

import (
	"context"
	"net/http"

	"estoque/internal/api/respond"
	"estoque/internal/domain"
	"estoque/internal/pkg/logger"
)

// DeliveryService define o contrato que o Handler espera da camada de Serviço.
type DeliveryService interface {
	Schedule(ctx context.Context, d domain.Delivery) (domain.Delivery, error)
}

// PayloadValidator valida o corpo do agendamento.
type PayloadValidator interface {
	ValidateDelivery(body []byte) (domain.Delivery, error)
}

// Handler agrupa os métodos de Handler de entregas.
type Handler struct {
	Service   DeliveryService
	Validator PayloadValidator
	Logger    logger.Logger
}

func NewHandler(svc DeliveryService, v PayloadValidator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

// ScheduleDeliveryHandler lida com POST /deliveries.
// @Summary Agenda uma entrega
// @Description Registra uma entrega para um produto existente.
// @Tags deliveries
// @Accept json
// @Produce json
// @Param delivery body domain.Delivery true "Dados da entrega (id é ignorado)"
// @Success 201 {object} domain.Delivery "Entrega agendada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou produto inexistente"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /deliveries [post]
func (h *Handler) ScheduleDeliveryHandler(w http.ResponseWriter, r *http.Request) {
	body, err := respond.ReadBody(w, r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	d, err := h.Validator.ValidateDelivery(body)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.Schedule(r.Context(), d)
	respond.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}
