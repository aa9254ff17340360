package grid

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/gridboard/pkg/errors"
)

// IndexToLetter converts a zero-based column index to its spreadsheet-style
// letter label using bijective base-26 encoding: 0 -> "A", 25 -> "Z",
// 26 -> "AA", 701 -> "ZZ", 702 -> "AAA".
//
// A negative index is a programmer error and yields "".
func IndexToLetter(index int) string {
	if index < 0 {
		return ""
	}

	// Bijective base-26 has no zero digit, so shift to 1-based and
	// decrement before each division.
	buf := make([]byte, 0, 4)
	for n := index + 1; n > 0; n /= 26 {
		n--
		buf = append(buf, byte('A'+n%26))
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// LetterToIndex converts a letter label back to its zero-based column index.
// Lowercase input is accepted and normalized. Returns an INVALID_FORMAT
// error when the label is empty or contains characters outside A-Z.
func LetterToIndex(label string) (int, error) {
	if label == "" {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "column label cannot be empty")
	}

	index := 0
	for _, r := range strings.ToUpper(label) {
		if r < 'A' || r > 'Z' {
			return 0, errors.New(errors.ErrCodeInvalidFormat, "invalid column label: %q", label)
		}
		index = index*26 + int(r-'A'+1)
	}
	return index - 1, nil
}

// Coordinate is the human-readable label for a grid position: a letter
// column and a 1-based row, e.g. {Column: "A", Row: 1} for the origin.
type Coordinate struct {
	Column string
	Row    int
}

// String renders the coordinate in compact form such as "A1" or "AB12".
func (c Coordinate) String() string {
	return fmt.Sprintf("%s%d", c.Column, c.Row)
}

// Position converts the coordinate back to a zero-based grid position.
// Returns an INVALID_FORMAT error for an undecodable column label or a
// row below 1.
func (c Coordinate) Position() (Position, error) {
	column, err := LetterToIndex(c.Column)
	if err != nil {
		return Position{}, err
	}
	if c.Row < 1 {
		return Position{}, errors.New(errors.ErrCodeInvalidFormat, "coordinate row must be at least 1, got %d", c.Row)
	}
	return Position{Column: column, Row: c.Row - 1}, nil
}

// Coordinate converts the position to its human-readable label.
// Exact inverse of Coordinate.Position for any valid position.
func (p Position) Coordinate() Coordinate {
	return Coordinate{
		Column: IndexToLetter(p.Column),
		Row:    p.Row + 1,
	}
}

// ParseCoordinate parses a compact coordinate label such as "A1" or "aa12".
// The column is normalized to uppercase. Returns an INVALID_FORMAT error
// when the input does not match the expected shape.
func ParseCoordinate(s string) (Coordinate, error) {
	if err := errors.ValidateCoordinate(s); err != nil {
		return Coordinate{}, err
	}

	// ValidateCoordinate guarantees a letter run followed by digits.
	split := strings.IndexFunc(s, unicode.IsDigit)
	row, err := strconv.Atoi(s[split:])
	if err != nil {
		return Coordinate{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid coordinate row: %q", s)
	}

	return Coordinate{Column: strings.ToUpper(s[:split]), Row: row}, nil
}
