//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_notifications_get_test
package order_notifications_get

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
	GetOutcomes(ctx context.Context, orderID int64) ([]*entities.NotificationOutcome, error)
}
