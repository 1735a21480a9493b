//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bookcache_test
package bookcache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"bookstore/internal/entities"
	"bookstore/pkg/logger"
)

type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type BookRepository interface {
	Create(ctx context.Context, bookModify entities.BookModify) (*entities.Book, error)
	GetByID(ctx context.Context, id int64) (*entities.Book, error)
	GetAll(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error)
	Update(ctx context.Context, bookModify entities.BookModify) (*entities.Book, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
