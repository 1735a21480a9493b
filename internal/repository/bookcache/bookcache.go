package bookcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bookstore/internal/entities"
	"bookstore/pkg/logger"
)

const keyPrefix = "book:"

// Repository - read-through кеш книг поверх основного репозитория.
// Недоступность redis не ломает чтение: запрос уходит в базу.
type Repository struct {
	log   repositoryLogger
	store Store
	next  BookRepository
	ttl   time.Duration
}

func New(log repositoryLogger, store Store, next BookRepository, ttl time.Duration) *Repository {
	return &Repository{
		log:   log.With(logger.NewField("component", "book_cache")),
		store: store,
		next:  next,
		ttl:   ttl,
	}
}

func Key(id int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Book, error) {
	key := Key(id)

	raw, err := r.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedBook
		if err := json.Unmarshal(raw, &cached); err == nil {
			CacheRequestsTotal.WithLabelValues("hit").Inc()
			return cached.toDomain(), nil
		}
		r.log.Warn("corrupted book cache entry", logger.NewField("key", key))
	case errors.Is(err, redis.Nil):
	default:
		r.log.Warn("book cache get failed", logger.NewField("key", key), logger.NewField("error", err))
	}
	CacheRequestsTotal.WithLabelValues("miss").Inc()

	book, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(fromDomain(book))
	if err != nil {
		return book, nil
	}
	if err := r.store.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.log.Warn("book cache set failed", logger.NewField("key", key), logger.NewField("error", err))
	}

	return book, nil
}

func (r *Repository) Create(ctx context.Context, bookModify entities.BookModify) (*entities.Book, error) {
	return r.next.Create(ctx, bookModify)
}

func (r *Repository) GetAll(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error) {
	return r.next.GetAll(ctx, filter)
}

func (r *Repository) Update(ctx context.Context, bookModify entities.BookModify) (*entities.Book, error) {
	book, err := r.next.Update(ctx, bookModify)
	if bookModify.ID != nil {
		r.invalidate(ctx, *bookModify.ID)
	}
	return book, err
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	err := r.next.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

func (r *Repository) invalidate(ctx context.Context, id int64) {
	if err := r.store.Del(ctx, Key(id)).Err(); err != nil {
		r.log.Warn("book cache invalidation failed",
			logger.NewField("book_id", id),
			logger.NewField("error", err),
		)
	}
}
