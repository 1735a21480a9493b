package book

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bookstore/internal/entities"
)

func ToDomain(b *BookDB) (*entities.Book, error) {
	if b == nil {
		return nil, nil
	}

	price, err := decimal.NewFromString(b.Price)
	if err != nil {
		return nil, fmt.Errorf("book %d price %q: %w", b.ID, b.Price, err)
	}

	return &entities.Book{
		ID:            b.ID,
		Title:         b.Title,
		AuthorID:      b.AuthorID,
		AuthorName:    b.AuthorName,
		Genre:         b.Genre,
		Description:   b.Description,
		PublishedDate: b.PublishedDate,
		Price:         price,
		CreatedAt:     b.CreatedAt,
	}, nil
}

func FromDomainModify(bookModify *entities.BookModify) *BookModifyDB {
	if bookModify == nil {
		return nil
	}

	bookDB := &BookModifyDB{
		ID:            bookModify.ID,
		Title:         bookModify.Title,
		AuthorID:      bookModify.AuthorID,
		Genre:         bookModify.Genre,
		Description:   bookModify.Description,
		PublishedDate: bookModify.PublishedDate,
	}
	if bookModify.Price != nil {
		price := bookModify.Price.StringFixed(2)
		bookDB.Price = &price
	}

	return bookDB
}

func ToDomainList(booksDB []BookDB) ([]entities.Book, error) {
	result := make([]entities.Book, 0, len(booksDB))
	for i := range booksDB {
		book, err := ToDomain(&booksDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *book)
	}
	return result, nil
}
