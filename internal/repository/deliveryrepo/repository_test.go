package deliveryrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estoque/internal/domain"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/logger"
)

func newTestRepo(t *testing.T) (*DeliveryRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDeliveryRepository(db, time.Second, logger.NewNop()), mock
}

var when = time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

func TestCreate(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`INSERT INTO entrega \(produto_id,data_entrega,endereco_entrega\) VALUES \(\$1,\$2,\$3\) RETURNING id`).
		WithArgs(int64(3), when, "Rua A, 10").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	d, err := repo.Create(context.Background(), domain.Delivery{ProductID: 3, DeliveryDate: when, Address: "Rua A, 10"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), d.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UnknownProduct(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`INSERT INTO entrega`).
		WillReturnError(&pq.Error{Code: pq.ErrorCode(pgerrcode.ForeignKeyViolation)})

	_, err := repo.Create(context.Background(), domain.Delivery{ProductID: 404, DeliveryDate: when, Address: "x"})

	assert.Contains(t, apperror.FieldErrors(err), "produto_id")
}

func TestCreate_ProductIDOutOfIntegerRange(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`INSERT INTO entrega`).
		WillReturnError(&pq.Error{Code: pq.ErrorCode(pgerrcode.NumericValueOutOfRange)})

	_, err := repo.Create(context.Background(), domain.Delivery{ProductID: 1 << 31, DeliveryDate: when, Address: "x"})

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "produto_id")
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`INSERT INTO entrega`).WillReturnError(errors.New("disco cheio"))

	_, err := repo.Create(context.Background(), domain.Delivery{ProductID: 1, DeliveryDate: when, Address: "x"})

	var internal *apperror.InternalError
	assert.ErrorAs(t, err, &internal)
}
