//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=books_get_test
package books_get

import (
	"context"

	"bookstore/internal/entities"
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
	GetBooks(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error)
}
