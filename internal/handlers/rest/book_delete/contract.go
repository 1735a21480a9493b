//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=book_delete_test
package book_delete

import (
	"context"

	"bookstore/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteBook(ctx context.Context, id int64) error
}
