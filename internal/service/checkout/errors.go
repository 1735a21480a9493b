package checkout

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidForm  = errors.New("invalid checkout form")
	ErrBookNotFound = errors.New("book not found")
)

// ValidationError - ошибки по полям формы, ключ - имя поля.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidForm.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidForm
}
