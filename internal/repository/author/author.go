package author

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookstore/internal/entities"
	"bookstore/internal/service/author"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, authorModify entities.AuthorModify) (*entities.Author, error) {
	query := `INSERT INTO authors (name, bio)
		VALUES ($1, $2)
		RETURNING id, name, bio, created_at`

	var authorModel AuthorDB
	err := r.querier.QueryRow(ctx, query, authorModify.Name, authorModify.Bio).
		Scan(
			&authorModel.ID,
			&authorModel.Name,
			&authorModel.Bio,
			&authorModel.CreatedAt,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected author repository create error: %w", err)
	}

	return ToDomain(&authorModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Author, error) {
	query := `SELECT id, name, bio, created_at
		FROM authors
		WHERE id = $1`

	var authorModel AuthorDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&authorModel.ID,
			&authorModel.Name,
			&authorModel.Bio,
			&authorModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}

		return nil, fmt.Errorf("unexpected author repository getbyid error: %w", err)
	}

	return ToDomain(&authorModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Author, error) {
	query := `
	SELECT id, name, bio, created_at
	FROM authors
	ORDER BY name, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected author repository getall error: %w", err)
	}
	defer rows.Close()

	authorModels := make([]AuthorDB, 0, 8)
	for rows.Next() {
		var authorModel AuthorDB
		err := rows.Scan(
			&authorModel.ID,
			&authorModel.Name,
			&authorModel.Bio,
			&authorModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected author repository getall error: %w", err)
		}
		authorModels = append(authorModels, authorModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected author repository getall error: %w", err)
	}

	return ToDomainList(authorModels), nil
}
