package author

import "time"

type AuthorDB struct {
	ID        int64
	Name      string
	Bio       string
	CreatedAt time.Time
}
