package sheets

import (
	"context"
	"fmt"
	"time"

	"bookstore/internal/entities"
)

const serviceName = "google-sheets"

const createdAtLayout = "2006-01-02 15:04:05"

var Header = []any{
	"ID", "Book Title", "Name", "Email", "Phone",
	"Address", "Quantity", "Notes", "Status", "Created At",
}

type Gateway struct {
	client        valuesClient
	spreadsheetID string
	sheetName     string
}

func New(client valuesClient, spreadsheetID, sheetName string) *Gateway {
	return &Gateway{
		client:        client,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}
}

// AppendOrder добавляет одну строку заказа в конец листа.
func (g *Gateway) AppendOrder(ctx context.Context, order *entities.Order) error {
	err := g.observe("append", func() error {
		return g.client.Append(ctx, g.spreadsheetID, g.sheetName, [][]any{orderRow(order)})
	})
	if err != nil {
		return fmt.Errorf("gateway sheets, append order %d: %w", order.ID, err)
	}
	return nil
}

// Rewrite очищает лист и записывает заголовок и все заказы одним запросом.
func (g *Gateway) Rewrite(ctx context.Context, orders []entities.Order) error {
	err := g.observe("clear", func() error {
		return g.client.Clear(ctx, g.spreadsheetID, g.sheetName)
	})
	if err != nil {
		return fmt.Errorf("gateway sheets, clear: %w", err)
	}

	rows := make([][]any, 0, len(orders)+1)
	rows = append(rows, Header)
	for i := range orders {
		rows = append(rows, orderRow(&orders[i]))
	}

	err = g.observe("update", func() error {
		return g.client.Update(ctx, g.spreadsheetID, g.sheetName+"!A1", rows)
	})
	if err != nil {
		return fmt.Errorf("gateway sheets, write %d rows: %w", len(rows), err)
	}

	return nil
}

func (g *Gateway) observe(method string, fn func() error) error {
	start := time.Now()
	err := fn()
	result := "ok"
	if err != nil {
		result = "error"
	}
	GatewayRequestDuration.WithLabelValues(serviceName, method, result).Observe(time.Since(start).Seconds())
	return err
}

func orderRow(order *entities.Order) []any {
	return []any{
		order.ID,
		order.BookTitle,
		order.Name,
		order.Email,
		order.Phone,
		order.Address,
		order.Quantity,
		order.Notes,
		order.Status.String(),
		order.CreatedAt.UTC().Format(createdAtLayout),
	}
}
