package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"bookstore/internal/entities"
)

// DateLayout - формат published_date в запросах и ответах.
const DateLayout = "2006-01-02"

type AuthorCreate struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio,omitempty"`
}

type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorCreateResponse struct {
	ID int64 `json:"id"`
}

func NewAuthor(a entities.Author) Author {
	return Author{
		ID:        a.ID,
		Name:      a.Name,
		Bio:       a.Bio,
		CreatedAt: a.CreatedAt,
	}
}

// BookModify используется и для создания, и для частичного обновления.
type BookModify struct {
	Title         *string          `json:"title,omitempty"`
	AuthorID      *int64           `json:"author_id,omitempty"`
	Genre         *string          `json:"genre,omitempty"`
	Description   *string          `json:"description,omitempty"`
	PublishedDate *string          `json:"published_date,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
}

type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	AuthorID      int64     `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Genre         string    `json:"genre"`
	Description   string    `json:"description"`
	PublishedDate string    `json:"published_date"`
	Price         string    `json:"price"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewBook(b entities.Book) Book {
	return Book{
		ID:            b.ID,
		Title:         b.Title,
		AuthorID:      b.AuthorID,
		AuthorName:    b.AuthorName,
		Genre:         b.Genre,
		Description:   b.Description,
		PublishedDate: b.PublishedDate.Format(DateLayout),
		Price:         b.Price.StringFixed(2),
		CreatedAt:     b.CreatedAt,
	}
}

// ToEntity переводит тело запроса в BookModify. Ошибка - только от разбора даты.
func (b BookModify) ToEntity() (entities.BookModify, error) {
	modify := entities.BookModify{
		Title:       b.Title,
		AuthorID:    b.AuthorID,
		Genre:       b.Genre,
		Description: b.Description,
		Price:       b.Price,
	}
	if b.PublishedDate != nil {
		date, err := time.Parse(DateLayout, *b.PublishedDate)
		if err != nil {
			return entities.BookModify{}, err
		}
		modify.PublishedDate = &date
	}
	return modify, nil
}
