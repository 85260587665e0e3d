package domain

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// minCoordinate is the lowest accepted coordinate or dimension.
const minCoordinate = -1

func parseInt(field, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("field %s: %q is not an integer", field, raw)
	}
	if n < minCoordinate {
		return 0, fmt.Errorf("field %s: %d: %w", field, n, ErrBelowMinimum)
	}
	return n, nil
}

// parseInts parses args positionally against names.
func parseInts(names []string, args []string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		n, err := parseInt(name, args[i])
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// ParseSymbol validates a drawing symbol: exactly one graphic rune that
// occupies a single terminal column.
func ParseSymbol(raw string) (rune, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("%q: %w", raw, ErrInvalidSymbol)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	if r == utf8.RuneError || r == ' ' || !unicode.IsGraphic(r) {
		return 0, fmt.Errorf("%q: %w", raw, ErrInvalidSymbol)
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 0, fmt.Errorf("%q is double width: %w", raw, ErrInvalidSymbol)
	}
	return r, nil
}
