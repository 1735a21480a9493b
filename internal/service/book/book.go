package book

import (
	"context"
	"fmt"
	"strings"

	"bookstore/internal/entities"
)

type Book struct {
	repository Repository
}

func New(repository Repository) *Book {
	return &Book{
		repository: repository,
	}
}

func (s *Book) CreateBook(ctx context.Context, bookModify entities.BookModify) (*entities.Book, error) {
	if bookModify.Title == nil ||
		bookModify.AuthorID == nil ||
		bookModify.PublishedDate == nil ||
		bookModify.Price == nil {
		return nil, ErrMissingRequiredFields
	}

	if err := validate(bookModify); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(*bookModify.Title)
	bookModify.Title = &title
	if bookModify.Genre == nil {
		genre := ""
		bookModify.Genre = &genre
	}
	if bookModify.Description == nil {
		description := ""
		bookModify.Description = &description
	}

	book, err := s.repository.Create(ctx, bookModify)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

func (s *Book) UpdateBook(ctx context.Context, bookModify entities.BookModify) (*entities.Book, error) {
	if bookModify.Title == nil &&
		bookModify.AuthorID == nil &&
		bookModify.Genre == nil &&
		bookModify.Description == nil &&
		bookModify.PublishedDate == nil &&
		bookModify.Price == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validate(bookModify); err != nil {
		return nil, err
	}

	if bookModify.Title != nil {
		title := strings.TrimSpace(*bookModify.Title)
		bookModify.Title = &title
	}

	book, err := s.repository.Update(ctx, bookModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return book, nil
}

func (s *Book) GetBook(ctx context.Context, id int64) (*entities.Book, error) {
	book, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return book, nil
}

func (s *Book) GetBooks(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error) {
	books, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get books: %w", err)
	}
	return books, nil
}

func (s *Book) DeleteBook(ctx context.Context, id int64) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

func validate(bookModify entities.BookModify) error {
	if bookModify.Title != nil && !isValidTitle(*bookModify.Title) {
		return ErrInvalidTitle
	}
	if bookModify.Genre != nil && !isValidGenre(*bookModify.Genre) {
		return ErrInvalidGenre
	}
	if bookModify.Price != nil && !isValidPrice(*bookModify.Price) {
		return ErrInvalidPrice
	}
	return nil
}
