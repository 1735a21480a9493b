package outcome

import "time"

type OutcomeDB struct {
	OrderID   int64
	Channel   string
	Status    string
	Attempts  int
	LastError string
	UpdatedAt time.Time
}
