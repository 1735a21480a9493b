package author

import (
	"context"
	"fmt"
	"strings"

	"bookstore/internal/entities"
)

type Author struct {
	repository Repository
}

func New(repository Repository) *Author {
	return &Author{
		repository: repository,
	}
}

func (s *Author) CreateAuthor(ctx context.Context, authorModify entities.AuthorModify) (*entities.Author, error) {
	if authorModify.Name == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidName(*authorModify.Name) {
		return nil, ErrInvalidName
	}

	name := strings.TrimSpace(*authorModify.Name)
	authorModify.Name = &name
	if authorModify.Bio == nil {
		bio := ""
		authorModify.Bio = &bio
	}

	author, err := s.repository.Create(ctx, authorModify)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return author, nil
}

func (s *Author) GetAuthor(ctx context.Context, id int64) (*entities.Author, error) {
	author, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return author, nil
}

func (s *Author) GetAuthors(ctx context.Context) ([]entities.Author, error) {
	authors, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get authors: %w", err)
	}
	return authors, nil
}
