package book

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	maxTitleLength = 200
	maxGenreLength = 100

	// NUMERIC(8, 2)
	priceScale = 2
)

var maxPrice = decimal.New(1_000_000, 0)

func isValidTitle(title string) bool {
	title = strings.TrimSpace(title)
	return title != "" && utf8.RuneCountInString(title) <= maxTitleLength
}

func isValidGenre(genre string) bool {
	return utf8.RuneCountInString(genre) <= maxGenreLength
}

func isValidPrice(price decimal.Decimal) bool {
	if price.IsNegative() || price.GreaterThanOrEqual(maxPrice) {
		return false
	}
	return price.Equal(price.Round(priceScale))
}
