package grid

import (
	"testing"

	"github.com/matzehuels/gridboard/pkg/errors"
)

func TestIndexToLetter(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{-1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := IndexToLetter(tt.index); got != tt.want {
				t.Errorf("IndexToLetter(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestLetterToIndexInverse(t *testing.T) {
	for n := 0; n < 20000; n++ {
		label := IndexToLetter(n)
		back, err := LetterToIndex(label)
		if err != nil {
			t.Fatalf("LetterToIndex(%q) error: %v", label, err)
		}
		if back != n {
			t.Fatalf("LetterToIndex(IndexToLetter(%d)) = %d", n, back)
		}
	}
}

func TestLetterToIndex(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    int
		wantErr bool
	}{
		{"single letter", "A", 0, false},
		{"lowercase accepted", "aa", 26, false},
		{"mixed case", "Zz", 701, false},
		{"empty", "", 0, true},
		{"digit", "A1", 0, true},
		{"symbol", "A!", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LetterToIndex(tt.label)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("LetterToIndex(%q) error = %v, want INVALID_FORMAT", tt.label, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LetterToIndex(%q) error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("LetterToIndex(%q) = %d, want %d", tt.label, got, tt.want)
			}
		})
	}
}

func TestPositionCoordinateRoundTrip(t *testing.T) {
	positions := []Position{
		{Column: 0, Row: 0},
		{Column: 3, Row: 1},
		{Column: 25, Row: 99},
		{Column: 26, Row: 11},
		{Column: 701, Row: 0},
	}

	for _, p := range positions {
		coord := p.Coordinate()
		back, err := coord.Position()
		if err != nil {
			t.Fatalf("Position() error for %s: %v", coord, err)
		}
		if back != p {
			t.Errorf("round trip of %+v via %s = %+v", p, coord, back)
		}
	}
}

func TestCoordinateString(t *testing.T) {
	if got := (Position{Column: 0, Row: 0}).Coordinate().String(); got != "A1" {
		t.Errorf("origin coordinate = %q, want A1", got)
	}
	if got := (Position{Column: 27, Row: 11}).Coordinate().String(); got != "AB12" {
		t.Errorf("coordinate = %q, want AB12", got)
	}
}

func TestCoordinatePositionRejectsBadRow(t *testing.T) {
	_, err := Coordinate{Column: "A", Row: 0}.Position()
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Position() error = %v, want INVALID_FORMAT", err)
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Coordinate
		wantErr bool
	}{
		{"origin", "A1", Coordinate{Column: "A", Row: 1}, false},
		{"multi letter", "AA12", Coordinate{Column: "AA", Row: 12}, false},
		{"lowercase normalized", "bc7", Coordinate{Column: "BC", Row: 7}, false},
		{"empty", "", Coordinate{}, true},
		{"row zero", "A0", Coordinate{}, true},
		{"leading zero", "A01", Coordinate{}, true},
		{"no row", "ABC", Coordinate{}, true},
		{"no column", "12", Coordinate{}, true},
		{"trailing junk", "A1x", Coordinate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("ParseCoordinate(%q) error = %v, want INVALID_FORMAT", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoordinate(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseCoordinate(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
