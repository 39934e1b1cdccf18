package reportservice

import (
	"context"

	"estoque/internal/domain"
	"estoque/internal/pkg/logger"
)

// ProductReader é o subconjunto do repositório de produtos usado nos relatórios.
type ProductReader interface {
	StockSnapshot(ctx context.Context) ([]domain.Product, int, error)
	LowStock(ctx context.Context, threshold int) ([]domain.Product, error)
	HighStock(ctx context.Context, threshold int) ([]domain.Product, error)
}

// Thresholds são os limites padrão dos relatórios de estoque.
type Thresholds struct {
	Low  int
	High int
}

// Service monta os relatórios de estoque, de produtos e de vendas.
type Service struct {
	products   ProductReader
	sales      domain.SaleRepository
	thresholds Thresholds
	logger     logger.Logger
}

func NewService(products ProductReader, sales domain.SaleRepository, thresholds Thresholds, log logger.Logger) *Service {
	return &Service{products: products, sales: sales, thresholds: thresholds, logger: log}
}

// Thresholds devolve os limites padrão configurados.
func (s *Service) Thresholds() Thresholds {
	return s.thresholds
}

func toStockEntries(products []domain.Product) []domain.StockLevelEntry {
	entries := make([]domain.StockLevelEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, domain.StockLevelEntry{Name: p.Name, Quantity: p.Quantity, Location: p.Location})
	}
	return entries
}

// StockReport lista os produtos abaixo de t.Low e acima de t.High.
func (s *Service) StockReport(ctx context.Context, t Thresholds) (domain.StockReport, error) {
	low, err := s.products.LowStock(ctx, t.Low)
	if err != nil {
		return domain.StockReport{}, err
	}
	high, err := s.products.HighStock(ctx, t.High)
	if err != nil {
		return domain.StockReport{}, err
	}

	s.logger.Debug("Relatório de estoque gerado.", map[string]interface{}{
		"low": t.Low, "high": t.High, "baixo": len(low), "excesso": len(high),
	})
	return domain.StockReport{LowStock: toStockEntries(low), HighStock: toStockEntries(high)}, nil
}

// ProductReport lista a quantidade de cada produto e o total em estoque,
// ambos lidos do mesmo snapshot.
func (s *Service) ProductReport(ctx context.Context) (domain.ProductReport, error) {
	products, total, err := s.products.StockSnapshot(ctx)
	if err != nil {
		return domain.ProductReport{}, err
	}

	entries := make([]domain.ProductQuantityEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, domain.ProductQuantityEntry{Name: p.Name, Quantity: p.Quantity})
	}
	return domain.ProductReport{Products: entries, Total: total}, nil
}

// SalesReport lista as vendas do período (inclusivo nas duas pontas).
func (s *Service) SalesReport(ctx context.Context, period domain.DateRange) ([]domain.Sale, error) {
	sales, err := s.sales.ListBetween(ctx, period)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Relatório de vendas gerado.", map[string]interface{}{
		"start": period.Start, "end": period.End, "count": len(sales),
	})
	return sales, nil
}
