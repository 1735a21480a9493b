package author

import (
	"bookstore/internal/entities"
)

func ToDomain(a *AuthorDB) *entities.Author {
	if a == nil {
		return nil
	}

	return &entities.Author{
		ID:        a.ID,
		Name:      a.Name,
		Bio:       a.Bio,
		CreatedAt: a.CreatedAt,
	}
}

func ToDomainList(authorsDB []AuthorDB) []entities.Author {
	if len(authorsDB) == 0 {
		return []entities.Author{}
	}

	result := make([]entities.Author, len(authorsDB))
	for i, authorDB := range authorsDB {
		result[i] = *ToDomain(&authorDB)
	}
	return result
}
