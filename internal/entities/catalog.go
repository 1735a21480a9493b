package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Author struct {
	ID        int64
	Name      string
	Bio       string
	CreatedAt time.Time
}

type AuthorModify struct {
	ID   *int64
	Name *string
	Bio  *string
}

type Book struct {
	ID            int64
	Title         string
	AuthorID      int64
	AuthorName    string
	Genre         string
	Description   string
	PublishedDate time.Time
	Price         decimal.Decimal
	CreatedAt     time.Time
}

type BookModify struct {
	ID            *int64
	Title         *string
	AuthorID      *int64
	Genre         *string
	Description   *string
	PublishedDate *time.Time
	Price         *decimal.Decimal
}

type BookFilter struct {
	AuthorID *int64
}
