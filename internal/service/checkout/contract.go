//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_test
package checkout

import (
	"context"

	"bookstore/internal/entities"
	"bookstore/pkg/logger"
)

type BookReader interface {
	GetByID(ctx context.Context, id int64) (*entities.Book, error)
}

type OrderRepository interface {
	Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error)
}

// Notifier получает заказ только после commit.
type Notifier interface {
	Notify(ctx context.Context, order *entities.Order) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
