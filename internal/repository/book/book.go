package book

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"bookstore/internal/entities"
	"bookstore/internal/repository"
	"bookstore/internal/service/book"
)

// имя, которое postgres дает CHECK (price >= 0) из миграции каталога
const priceConstraint = "books_price_check"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = `b.id, b.title, b.author_id, a.name, b.genre, b.description,
	b.published_date, b.price::text, b.created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bookModifyEntity entities.BookModify) (*entities.Book, error) {
	bookModifyModel := FromDomainModify(&bookModifyEntity)
	query := `WITH b AS (
		INSERT INTO books (title, author_id, genre, description, published_date, price)
		VALUES ($1, $2, $3, $4, $5, $6::numeric)
		RETURNING id, title, author_id, genre, description, published_date, price, created_at
	)
	SELECT ` + selectColumns + `
	FROM b
	JOIN authors a ON a.id = b.author_id`

	var bookModel BookDB
	err := scanBook(r.querier.QueryRow(
		ctx,
		query,
		bookModifyModel.Title,
		bookModifyModel.AuthorID,
		bookModifyModel.Genre,
		bookModifyModel.Description,
		bookModifyModel.PublishedDate,
		bookModifyModel.Price,
	), &bookModel)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, book.ErrAuthorNotFound
		}
		if repository.IsConstraintViolation(err, repository.PgErrCheckViolation, priceConstraint) {
			return nil, book.ErrInvalidPrice
		}
		return nil, fmt.Errorf("unexpected book repository create error: %w", err)
	}

	return ToDomain(&bookModel)
}

func (r *Repository) Update(ctx context.Context, bookModifyEntity entities.BookModify) (*entities.Book, error) {
	bookModifyModel := FromDomainModify(&bookModifyEntity)

	builder := qb.
		Update("books")

	// опционнные поля
	if bookModifyModel.Title != nil {
		builder = builder.Set("title", bookModifyModel.Title)
	}
	if bookModifyModel.AuthorID != nil {
		builder = builder.Set("author_id", bookModifyModel.AuthorID)
	}
	if bookModifyModel.Genre != nil {
		builder = builder.Set("genre", bookModifyModel.Genre)
	}
	if bookModifyModel.Description != nil {
		builder = builder.Set("description", bookModifyModel.Description)
	}
	if bookModifyModel.PublishedDate != nil {
		builder = builder.Set("published_date", bookModifyModel.PublishedDate)
	}
	if bookModifyModel.Price != nil {
		builder = builder.Set("price", sq.Expr("?::numeric", *bookModifyModel.Price))
	}

	builder = builder.
		Where(sq.Eq{"id": bookModifyModel.ID}).
		Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected book repository update error: %w", err)
	}

	var id int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, book.ErrAuthorNotFound
		}
		if repository.IsConstraintViolation(err, repository.PgErrCheckViolation, priceConstraint) {
			return nil, book.ErrInvalidPrice
		}

		return nil, fmt.Errorf("unexpected book repository update error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Book, error) {
	query := `SELECT ` + selectColumns + `
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1`

	var bookModel BookDB
	err := scanBook(r.querier.QueryRow(ctx, query, id), &bookModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}

		return nil, fmt.Errorf("unexpected book repository getbyid error: %w", err)
	}

	return ToDomain(&bookModel)
}

func (r *Repository) GetAll(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error) {
	builder := qb.
		Select(selectColumns).
		From("books b").
		Join("authors a ON a.id = b.author_id").
		OrderBy("b.published_date DESC", "b.id DESC")

	if filter.AuthorID != nil {
		builder = builder.Where(sq.Eq{"b.author_id": *filter.AuthorID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected book repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected book repository getall error: %w", err)
	}
	defer rows.Close()

	bookModels := make([]BookDB, 0, 8)
	for rows.Next() {
		var bookModel BookDB
		if err := scanBook(rows, &bookModel); err != nil {
			return nil, fmt.Errorf("unexpected book repository getall error: %w", err)
		}
		bookModels = append(bookModels, bookModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected book repository getall error: %w", err)
	}

	return ToDomainList(bookModels)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected book repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func scanBook(row pgx.Row, bookModel *BookDB) error {
	return row.Scan(
		&bookModel.ID,
		&bookModel.Title,
		&bookModel.AuthorID,
		&bookModel.AuthorName,
		&bookModel.Genre,
		&bookModel.Description,
		&bookModel.PublishedDate,
		&bookModel.Price,
		&bookModel.CreatedAt,
	)
}
