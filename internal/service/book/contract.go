//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=book_test
package book

import (
	"context"

	"bookstore/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, bookModify entities.BookModify) (*entities.Book, error)
	GetByID(ctx context.Context, id int64) (*entities.Book, error)
	GetAll(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error)
	Update(ctx context.Context, bookModify entities.BookModify) (*entities.Book, error)
	Delete(ctx context.Context, id int64) error
}
