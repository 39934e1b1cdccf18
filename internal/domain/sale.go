package domain

import (
	"context"
	"time"
)

// Sale representa uma venda registrada (tabela venda), já unida ao nome do produto.
type Sale struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"produto_id"`
	ProductName  string    `json:"produto"`
	QuantitySold int       `json:"quantidade_vendida"`
	SoldAt       time.Time `json:"data_venda"`
}

// DateRange é um intervalo fechado [Start, End].
type DateRange struct {
	Start time.Time
	End   time.Time
}

// SaleRepository é o contrato de leitura das vendas.
type SaleRepository interface {
	ListBetween(ctx context.Context, period DateRange) ([]Sale, error)
}
