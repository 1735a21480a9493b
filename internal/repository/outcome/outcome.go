package outcome

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookstore/internal/entities"
)

const selectColumns = `order_id, channel, status, attempts, last_error, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert сохраняет последний результат канала. Попытки накапливаются между повторными рассылками.
func (r *Repository) Upsert(ctx context.Context, outcome entities.NotificationOutcome) error {
	query := `INSERT INTO notification_outcomes (order_id, channel, status, attempts, last_error, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (order_id, channel) DO UPDATE SET
			status = EXCLUDED.status,
			attempts = notification_outcomes.attempts + EXCLUDED.attempts,
			last_error = EXCLUDED.last_error,
			updated_at = EXCLUDED.updated_at`

	_, err := r.querier.Exec(ctx, query,
		outcome.OrderID,
		outcome.Channel.String(),
		outcome.Status.String(),
		outcome.Attempts,
		outcome.Error,
	)
	if err != nil {
		return fmt.Errorf("unexpected outcome repository upsert error: %w", err)
	}
	return nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) ([]*entities.NotificationOutcome, error) {
	query := `SELECT ` + selectColumns + `
		FROM notification_outcomes
		WHERE order_id = $1
		ORDER BY channel`

	return r.list(ctx, "getbyorderid", query, orderID)
}

// GetRetryable - неуспешные каналы, у которых еще не исчерпан общий лимит попыток.
func (r *Repository) GetRetryable(ctx context.Context, maxAttempts int, limit uint64) ([]*entities.NotificationOutcome, error) {
	query := `SELECT ` + selectColumns + `
		FROM notification_outcomes
		WHERE status = $1 AND attempts < $2
		ORDER BY updated_at, order_id, channel
		LIMIT $3`

	return r.list(ctx, "getretryable", query, entities.OutcomeFailed.String(), maxAttempts, limit)
}

func (r *Repository) list(ctx context.Context, method, query string, args ...any) ([]*entities.NotificationOutcome, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected outcome repository %s error: %w", method, err)
	}

	outcomeModels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (OutcomeDB, error) {
		var m OutcomeDB
		err := row.Scan(&m.OrderID, &m.Channel, &m.Status, &m.Attempts, &m.LastError, &m.UpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected outcome repository %s error: %w", method, err)
	}

	return ToDomainList(outcomeModels), nil
}
