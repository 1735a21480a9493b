package book

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTitle          = errors.New("invalid book title")
	ErrInvalidGenre          = errors.New("invalid book genre")
	ErrInvalidPrice          = errors.New("invalid book price")
	ErrBookNotFound          = errors.New("book not found")
	ErrAuthorNotFound        = errors.New("book author not found")
)
