package deliveryservice

import (
	"context"
	"time"

	"estoque/internal/domain"
	"estoque/internal/pkg/logger"
)

// Service agenda entregas.
type Service struct {
	repo   domain.DeliveryRepository
	logger logger.Logger
	now    func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Entregas.
func NewService(repo domain.DeliveryRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log, now: time.Now}
}

// Schedule registra uma entrega já validada. Datas no passado são aceitas, mas registradas em log.
func (s *Service) Schedule(ctx context.Context, d domain.Delivery) (domain.Delivery, error) {
	if d.DeliveryDate.Before(s.now()) {
		s.logger.Warn("Entrega agendada para data passada.", map[string]interface{}{
			"produto_id": d.ProductID, "data_entrega": d.DeliveryDate,
		})
	}

	created, err := s.repo.Create(ctx, d)
	if err != nil {
		return domain.Delivery{}, err
	}

	s.logger.Info("Entrega agendada com sucesso.", map[string]interface{}{"id": created.ID, "produto_id": created.ProductID})
	return created, nil
}
