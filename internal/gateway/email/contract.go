//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=email_test
package email

import (
	"context"

	"github.com/wneessen/go-mail"
)

type client interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}
