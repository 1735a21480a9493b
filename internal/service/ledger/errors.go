package ledger

import "errors"

var ErrLedgerDisabled = errors.New("ledger is not configured")
