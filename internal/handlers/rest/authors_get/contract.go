//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=authors_get_test
package authors_get

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
	GetAuthors(ctx context.Context) ([]entities.Author, error)
}
