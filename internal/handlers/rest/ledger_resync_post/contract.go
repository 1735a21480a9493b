//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_resync_post_test
package ledger_resync_post

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
	Resync(ctx context.Context) (int, error)
}
