package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

// ErrorCode devolve o SQLSTATE de um erro do PostgreSQL presente na cadeia, ou "".
func ErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsForeignKeyViolation informa se err é uma violação de chave estrangeira (23503).
func IsForeignKeyViolation(err error) bool {
	return ErrorCode(err) == pgerrcode.ForeignKeyViolation
}

// IsNumericOutOfRange informa se err é um valor fora da faixa do tipo da coluna (22003).
func IsNumericOutOfRange(err error) bool {
	return ErrorCode(err) == pgerrcode.NumericValueOutOfRange
}
