package salerepo

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"estoque/internal/domain"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SaleRepository implementa domain.SaleRepository. As vendas são gravadas por
// sistemas externos; aqui só há leitura.
type SaleRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewSaleRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *SaleRepository {
	return &SaleRepository{DB: db, DBTimeout: dbTimeout, logger: log}
}

// ListBetween devolve as vendas com data_venda no intervalo fechado, com o nome do produto,
// em ordem cronológica.
func (r *SaleRepository) ListBetween(ctx context.Context, period domain.DateRange) ([]domain.Sale, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := psql.
		Select("v.id", "v.produto_id", "p.nome", "v.quantidade_vendida", "v.data_venda").
		From("venda v").
		Join("produto p ON p.id = v.produto_id").
		Where(sq.Expr("v.data_venda BETWEEN ? AND ?", period.Start, period.End)).
		OrderBy("v.data_venda", "v.id").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternalError("Falha ao montar consulta de vendas", err)
	}

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao listar vendas no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar vendas", err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.ProductName, &s.QuantitySold, &s.SoldAt); err != nil {
			return nil, apperror.NewDBError("Falha ao ler venda", err)
		}
		s.SoldAt = s.SoldAt.UTC()
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao listar vendas", err)
	}

	r.logger.Debug("Vendas listadas.", map[string]interface{}{"count": len(sales)})
	return sales, nil
}
