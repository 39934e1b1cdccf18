package productservice

import (
	"context"

	"estoque/internal/domain"
	"estoque/internal/pkg/logger"
)

// CacheInvalidator descarta as listagens memorizadas após uma escrita.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Service concentra as operações de produto e a invalidação do cache de listagem.
type Service struct {
	repo   domain.ProductRepository
	cache  CacheInvalidator
	logger logger.Logger
}

// NewService cria o serviço de produtos. cache pode ser nil (sem invalidação nas escritas).
func NewService(repo domain.ProductRepository, cache CacheInvalidator, log logger.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: log}
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("Falha ao invalidar o cache de listagem.", map[string]interface{}{"error": err.Error()})
	}
}

// List devolve os produtos, opcionalmente filtrados por nome e categoria.
func (s *Service) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	s.logger.Debug("Listando produtos.", map[string]interface{}{"nome": filter.Name, "categoria": filter.Category})

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Get busca um produto pelo ID.
func (s *Service) Get(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByName busca o primeiro produto com o nome exato.
func (s *Service) GetByName(ctx context.Context, name string) (domain.Product, error) {
	s.logger.Debug("Buscando produto por nome.", map[string]interface{}{"nome": name})
	return s.repo.FindByName(ctx, name)
}

// Create persiste um produto já validado.
func (s *Service) Create(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	created, err := s.repo.Create(ctx, in.ToProduct())
	if err != nil {
		return domain.Product{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("Produto criado com sucesso.", map[string]interface{}{"id": created.ID, "nome": created.Name})
	return created, nil
}

// Update aplica os campos fornecidos ao produto existente.
func (s *Service) Update(ctx context.Context, id int64, update domain.ProductUpdate) (domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return domain.Product{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("Produto atualizado com sucesso.", map[string]interface{}{"id": id})
	return updated, nil
}

// Delete remove o produto.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("Produto removido com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// AdjustStock soma delta (positivo ou negativo) ao estoque do produto.
func (s *Service) AdjustStock(ctx context.Context, id int64, delta int) (domain.Product, error) {
	p, err := s.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return domain.Product{}, err
	}

	s.invalidate(ctx)
	if p.Quantity < 0 {
		s.logger.Warn("Estoque negativo após ajuste.", map[string]interface{}{"id": id, "quantidade": p.Quantity, "delta": delta})
	}
	s.logger.Info("Estoque atualizado com sucesso.", map[string]interface{}{"id": id, "delta": delta, "quantidade": p.Quantity})
	return p, nil
}
