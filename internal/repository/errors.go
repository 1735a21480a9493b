package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html#:~:text=23503
const PgErrForeignKeyViolation = "23503"

// https://www.postgresql.org/docs/current/errcodes-appendix.html#:~:text=23514
const PgErrCheckViolation = "23514"

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsConstraintViolation проверяет и код, и имя ограничения (books_price_check, orders_quantity_check).
func IsConstraintViolation(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code && pgErr.ConstraintName == constraint
	}
	return false
}
