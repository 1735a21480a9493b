package author

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid author name")
	ErrAuthorNotFound        = errors.New("author not found")
)
