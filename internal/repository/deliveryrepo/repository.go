package deliveryrepo

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"estoque/internal/domain"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/database"
	"estoque/internal/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// DeliveryRepository implementa domain.DeliveryRepository sobre a tabela entrega.
type DeliveryRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewDeliveryRepository cria e retorna uma nova instância do Repositório de Entregas.
func NewDeliveryRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *DeliveryRepository {
	return &DeliveryRepository{DB: db, DBTimeout: dbTimeout, logger: log}
}

// Create agenda a entrega. Um produto inexistente resulta em ValidationError no campo produto_id.
func (r *DeliveryRepository) Create(ctx context.Context, d domain.Delivery) (domain.Delivery, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := psql.Insert("entrega").
		Columns("produto_id", "data_entrega", "endereco_entrega").
		Values(d.ProductID, d.DeliveryDate, d.Address).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Delivery{}, apperror.NewInternalError("Falha ao montar inserção de entrega", err)
	}

	if err := r.DB.QueryRowContext(ctxTimeout, query, args...).Scan(&d.ID); err != nil {
		// produto_id acima da faixa de INTEGER falha no cast antes da checagem da FK.
		if database.IsForeignKeyViolation(err) || database.IsNumericOutOfRange(err) {
			return domain.Delivery{}, apperror.NewFieldValidationError("Produto inexistente.", map[string][]string{
				"produto_id": {"Produto não encontrado."},
			})
		}
		r.logger.Error("Falha ao inserir entrega no DB.", err)
		return domain.Delivery{}, apperror.NewDBError("Falha ao agendar entrega", err)
	}

	r.logger.Info("Entrega agendada.", map[string]interface{}{"id": d.ID, "produto_id": d.ProductID})
	return d, nil
}
