package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"bookstore/internal/pkg/credentials"
)

const valueInputRaw = "RAW"

// ValuesAPI - тонкая обертка над spreadsheets.values, чтобы шлюз не зависел от цепочек вызовов SDK.
type ValuesAPI struct {
	values *gsheets.SpreadsheetsValuesService
}

func NewValuesAPI(ctx context.Context, creds *credentials.Google) (*ValuesAPI, error) {
	srv, err := gsheets.NewService(ctx,
		option.WithCredentialsJSON(creds.JSON()),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &ValuesAPI{values: srv.Spreadsheets.Values}, nil
}

func (a *ValuesAPI) Append(ctx context.Context, spreadsheetID, rng string, rows [][]any) error {
	_, err := a.values.Append(spreadsheetID, rng, &gsheets.ValueRange{Values: rows}).
		ValueInputOption(valueInputRaw).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

func (a *ValuesAPI) Clear(ctx context.Context, spreadsheetID, rng string) error {
	_, err := a.values.Clear(spreadsheetID, rng, &gsheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	return err
}

func (a *ValuesAPI) Update(ctx context.Context, spreadsheetID, rng string, rows [][]any) error {
	_, err := a.values.Update(spreadsheetID, rng, &gsheets.ValueRange{Values: rows}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	return err
}
