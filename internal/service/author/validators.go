package author

import (
	"strings"
	"unicode/utf8"
)

const maxNameLength = 100

func isValidName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && utf8.RuneCountInString(name) <= maxNameLength
}
