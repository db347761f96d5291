package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type Coordinates struct {
	Row int
	Col int
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// ParseCoordinates turns a typed shot such as "a5" or "J10" into grid
// indices. Column letter first, then the 1-based row number.
func ParseCoordinates(text string) (Coordinates, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 || len(s) > 3 {
		return Coordinates{}, cerr.NewParseErr(cerr.CodeParseFormat, s)
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if !isUpper(letter) {
		return Coordinates{}, cerr.NewParseErr(cerr.CodeParseFormat, s)
	}
	if letter > 'A'+GridSize-1 {
		return Coordinates{}, cerr.NewParseErr(cerr.CodeParseColumnRange, s)
	}

	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Coordinates{}, cerr.NewParseErr(cerr.CodeParseRowNotNumber, s)
		}
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Coordinates{}, cerr.NewParseErr(cerr.CodeParseRowNotNumber, s)
	}
	if row < 1 || row > GridSize {
		return Coordinates{}, cerr.NewParseErr(cerr.CodeParseRowRange, s)
	}

	return NewCoordinates(row-1, int(letter-'A')), nil
}

// String renders the coordinates the way a player types them.
func (c Coordinates) String() string {
	return ColumnLetter(c.Col) + strconv.Itoa(c.Row+1)
}

func ColumnLetter(col int) string {
	if col < 0 || col >= 26 {
		return "?"
	}
	return string(rune('A' + col))
}
