//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sheets_test
package sheets

import "context"

type valuesClient interface {
	Append(ctx context.Context, spreadsheetID, rng string, rows [][]any) error
	Clear(ctx context.Context, spreadsheetID, rng string) error
	Update(ctx context.Context, spreadsheetID, rng string, rows [][]any) error
}
