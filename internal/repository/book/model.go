package book

import "time"

type BookDB struct {
	ID            int64
	Title         string
	AuthorID      int64
	AuthorName    string
	Genre         string
	Description   string
	PublishedDate time.Time
	// NUMERIC читается как текст, чтобы не терять точность
	Price     string
	CreatedAt time.Time
}

type BookModifyDB struct {
	ID            *int64
	Title         *string
	AuthorID      *int64
	Genre         *string
	Description   *string
	PublishedDate *time.Time
	Price         *string
}
