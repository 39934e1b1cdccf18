package domain

import (
	"context"
	"time"
)

// Delivery representa uma entrega agendada (tabela entrega).
type Delivery struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"produto_id"`
	DeliveryDate time.Time `json:"data_entrega"`
	Address      string    `json:"endereco_entrega"`
}

// DeliveryRepository é o contrato de persistência das entregas.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery Delivery) (Delivery, error)
}
