package order

import "time"

type OrderDB struct {
	ID         int64
	BookID     int64
	BookTitle  string
	AuthorName string
	UnitPrice  string
	Name       string
	Email      string
	Phone      string
	Address    string
	Quantity   int
	Notes      string
	Status     string
	CreatedAt  time.Time
}
