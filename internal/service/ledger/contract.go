//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"

	"bookstore/internal/entities"
	"bookstore/pkg/logger"
)

type OrderRepository interface {
	GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

// Sheet - внешний реестр заказов.
type Sheet interface {
	// Rewrite очищает лист и записывает заголовок и строки заказов.
	Rewrite(ctx context.Context, orders []entities.Order) error
}

type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
