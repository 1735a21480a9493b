package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"bookstore/internal/entities"
	"bookstore/internal/repository"
	"bookstore/internal/service/book"
	"bookstore/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = `o.id, o.book_id, b.title, a.name, o.unit_price::text,
	o.name, o.email, o.phone, o.address, o.quantity, o.notes, o.status, o.created_at`

const fromJoined = `books b ON b.id = o.book_id
	JOIN authors a ON a.id = b.author_id`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет заказ и сразу возвращает его вместе с названием книги и автором.
func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	query := `WITH o AS (
		INSERT INTO orders (book_id, unit_price, name, email, phone, address, quantity, notes, status)
		VALUES ($1, $2::numeric, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, book_id, unit_price, name, email, phone, address, quantity, notes, status, created_at
	)
	SELECT ` + selectColumns + `
	FROM o
	JOIN ` + fromJoined

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderCreate.BookID,
		orderCreate.UnitPrice.StringFixed(2),
		orderCreate.Name,
		orderCreate.Email,
		orderCreate.Phone,
		orderCreate.Address,
		orderCreate.Quantity,
		orderCreate.Notes,
		orderCreate.Status.String(),
	), &orderModel)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + selectColumns + `
		FROM orders o
		JOIN ` + fromJoined + `
		WHERE o.id = $1`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel)
}

// GetAll - заказы от новых к старым. Limit == 0 означает без ограничения (полная выгрузка).
func (r *Repository) GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(selectColumns).
		From("orders o").
		Join(fromJoined).
		OrderBy("o.created_at DESC", "o.id DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"o.status": filter.Status.String()})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		if err := scanOrder(rows, &orderModel); err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels)
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error) {
	var updatedID int64
	err := r.querier.QueryRow(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1 RETURNING id`,
		id, status.String(),
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

// GetUnnotified - заказы из окна [createdAfter, createdBefore) без единой записи о рассылке.
func (r *Repository) GetUnnotified(ctx context.Context, createdAfter, createdBefore time.Time, limit uint64) ([]int64, error) {
	query := `SELECT o.id
		FROM orders o
		WHERE o.created_at >= $1
		  AND o.created_at < $2
		  AND NOT EXISTS (SELECT 1 FROM notification_outcomes n WHERE n.order_id = o.id)
		ORDER BY o.id
		LIMIT $3`

	rows, err := r.querier.Query(ctx, query, createdAfter, createdBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getunnotified error: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getunnotified error: %w", err)
	}

	return ids, nil
}

func scanOrder(row pgx.Row, orderModel *OrderDB) error {
	return row.Scan(
		&orderModel.ID,
		&orderModel.BookID,
		&orderModel.BookTitle,
		&orderModel.AuthorName,
		&orderModel.UnitPrice,
		&orderModel.Name,
		&orderModel.Email,
		&orderModel.Phone,
		&orderModel.Address,
		&orderModel.Quantity,
		&orderModel.Notes,
		&orderModel.Status,
		&orderModel.CreatedAt,
	)
}
