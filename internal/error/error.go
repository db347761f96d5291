package error

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ConstErrShotFailed = "shot could not be resolved"
)

var (
	ErrNoSave            = errors.New("no saved game found")
	ErrCorruptSave       = errors.New("saved game is corrupt or incompatible")
	ErrGameNotInProgress = errors.New("game is not in progress")
	ErrInvalidInitials   = errors.New("initials must be exactly 3 characters")
	ErrRedundant         = errors.New("position already resolved")
	ErrInvariant         = errors.New("game state invariant violated")

	ErrMissingDatabaseURL = errors.New("postgres score backend requires a database url")
)

// Coordinate parse failure codes
const (
	CodeParseFormat uint8 = iota
	CodeParseColumnRange
	CodeParseRowNotNumber
	CodeParseRowRange
)

// Sentinels for errors.Is against a ParseErr of the same code.
var (
	ErrCoordFormat      = ParseErr{code: CodeParseFormat}
	ErrCoordColumnRange = ParseErr{code: CodeParseColumnRange}
	ErrCoordRowNaN      = ParseErr{code: CodeParseRowNotNumber}
	ErrCoordRowRange    = ParseErr{code: CodeParseRowRange}
)

type ParseErr struct {
	code  uint8
	input string
}

func NewParseErr(code uint8, input string) ParseErr {
	return ParseErr{code: code, input: input}
}

func (p ParseErr) Error() string {
	switch p.code {
	case CodeParseFormat:
		return fmt.Sprintf("invalid coordinate format %q: use LetterNumber (e.g. A5, J10)", p.input)
	case CodeParseColumnRange:
		return fmt.Sprintf("column out of range in %q: must be A-J", p.input)
	case CodeParseRowNotNumber:
		return fmt.Sprintf("row must be a number in %q", p.input)
	case CodeParseRowRange:
		return fmt.Sprintf("row out of range in %q: must be 1-10", p.input)
	default:
		return fmt.Sprintf("unknown coordinate parsing error for %q", p.input)
	}
}

func (p ParseErr) Code() uint8 {
	return p.code
}

func (p ParseErr) Is(target error) bool {
	t, ok := target.(ParseErr)
	return ok && t.code == p.code
}

// IsUserInput reports whether err can be recovered by prompting again.
func IsUserInput(err error) bool {
	var pe ParseErr
	return errors.As(err, &pe) || errors.Is(err, ErrInvalidInitials)
}

func ErrRedundantShot(coords string, cell byte) error {
	return fmt.Errorf("%w: already conclusively fired at %s (%c)", ErrRedundant, coords, cell)
}

func ErrInvariantViolation(coords string, cell byte) error {
	return fmt.Errorf("%w: cell %q at %s does not map to a known ship", ErrInvariant, cell, coords)
}

func ErrSaveSizeMismatch(expected, got int) error {
	return fmt.Errorf("%w: expected %d bytes\tgot: %d", ErrCorruptSave, expected, got)
}

func ErrSaveVersion(version uint16) error {
	return fmt.Errorf("%w: unsupported save version %d", ErrCorruptSave, version)
}

func ErrSaveContent(reason string) error {
	return fmt.Errorf("%w: %s", ErrCorruptSave, reason)
}

func ErrInvalidScoreBackend(backend string) error {
	return fmt.Errorf("invalid score backend: %s", backend)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}

// PlacementWarning is returned when some ships could not be placed within
// the attempt budget. The game is still playable without them.
type PlacementWarning struct {
	Unplaced []byte
	Attempts int
}

func (p *PlacementWarning) Error() string {
	letters := make([]string, len(p.Unplaced))
	for i, l := range p.Unplaced {
		letters[i] = string(l)
	}
	return fmt.Sprintf("could not place ship(s) %s after %d attempts each", strings.Join(letters, ","), p.Attempts)
}
