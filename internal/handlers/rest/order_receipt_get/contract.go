//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_receipt_get_test
package order_receipt_get

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
	GetOrder(ctx context.Context, id int64) (*entities.Order, error)
}

type Generator interface {
	Generate(order *entities.Order) ([]byte, error)
}
