package bookcache

import (
	"time"

	"github.com/shopspring/decimal"

	"bookstore/internal/entities"
)

type cachedBook struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	AuthorID      int64           `json:"author_id"`
	AuthorName    string          `json:"author_name"`
	Genre         string          `json:"genre"`
	Description   string          `json:"description"`
	PublishedDate time.Time       `json:"published_date"`
	Price         decimal.Decimal `json:"price"`
	CreatedAt     time.Time       `json:"created_at"`
}

func fromDomain(b *entities.Book) cachedBook {
	return cachedBook{
		ID:            b.ID,
		Title:         b.Title,
		AuthorID:      b.AuthorID,
		AuthorName:    b.AuthorName,
		Genre:         b.Genre,
		Description:   b.Description,
		PublishedDate: b.PublishedDate,
		Price:         b.Price,
		CreatedAt:     b.CreatedAt,
	}
}

func (c cachedBook) toDomain() *entities.Book {
	return &entities.Book{
		ID:            c.ID,
		Title:         c.Title,
		AuthorID:      c.AuthorID,
		AuthorName:    c.AuthorName,
		Genre:         c.Genre,
		Description:   c.Description,
		PublishedDate: c.PublishedDate,
		Price:         c.Price,
		CreatedAt:     c.CreatedAt,
	}
}
