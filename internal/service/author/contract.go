//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=author_test
package author

import (
	"context"

	"bookstore/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, authorModify entities.AuthorModify) (*entities.Author, error)
	GetByID(ctx context.Context, id int64) (*entities.Author, error)
	GetAll(ctx context.Context) ([]entities.Author, error)
}
