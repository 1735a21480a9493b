//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"bookstore/internal/entities"
	"bookstore/pkg/logger"
)

// Channel - один канал оповещения о заказе.
// receipt может быть nil, если квитанцию сгенерировать не удалось.
type Channel interface {
	Name() entities.Channel
	Send(ctx context.Context, order *entities.Order, receipt *entities.Receipt) error
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	// GetUnnotified возвращает id заказов, созданных в [createdAfter, createdBefore),
	// по которым нет ни одной записи в notification_outcomes.
	GetUnnotified(ctx context.Context, createdAfter, createdBefore time.Time, limit uint64) ([]int64, error)
}

type OutcomeRepository interface {
	Upsert(ctx context.Context, outcome entities.NotificationOutcome) error
	GetByOrderID(ctx context.Context, orderID int64) ([]*entities.NotificationOutcome, error)
	GetRetryable(ctx context.Context, maxAttempts int, limit uint64) ([]*entities.NotificationOutcome, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, order *entities.Order, receipt *entities.Receipt, only ...entities.Channel) []entities.NotificationOutcome
}

// Processor - то, что нужно асинхронному нотификатору и kafka-воркеру.
type Processor interface {
	ProcessOrder(ctx context.Context, orderID int64) ([]entities.NotificationOutcome, error)
}

// Mailer - отправка письма с необязательным вложением.
type Mailer interface {
	Send(ctx context.Context, msg entities.Mail) error
}

type Messenger interface {
	SendText(ctx context.Context, phone, text string) error
}

type Ledger interface {
	AppendOrder(ctx context.Context, order *entities.Order) error
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
