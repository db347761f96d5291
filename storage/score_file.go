package storage

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-solo/models/leaderboard"
)

// FileScoreStore keeps the leaderboard in a text file, one entry per line:
//
//	<initials> <score> <date> <time>
type FileScoreStore struct {
	path   string
	logger zerolog.Logger
}

var _ leaderboard.ScoreStore = (*FileScoreStore)(nil)

func NewFileScoreStore(path string, logger zerolog.Logger) *FileScoreStore {
	return &FileScoreStore{
		path:   path,
		logger: logger.With().Str("score_file", path).Logger(),
	}
}

// Load returns the stored leaderboard. A missing file is an empty board.
func (s *FileScoreStore) Load(_ context.Context) (leaderboard.Leaderboard, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return leaderboard.Leaderboard{}, nil
		}
		return nil, fmt.Errorf("open scores: %w", err)
	}
	defer f.Close()

	lb, err := ReadScores(f)
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	s.logger.Debug().Int("entries", len(lb)).Msg("scores loaded")
	return lb, nil
}

func (s *FileScoreStore) Save(_ context.Context, lb leaderboard.Leaderboard) error {
	var sb strings.Builder
	if err := WriteScores(&sb, lb); err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, []byte(sb.String())); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	return nil
}

// ReadScores parses at most leaderboard.MaxEntries lines. Each line is read
// as the initials and the score followed by the rest of the line as the
// timestamp. Reading stops at the first line that does not fit; entries read
// before it are kept.
func ReadScores(r io.Reader) (leaderboard.Leaderboard, error) {
	lb := make(leaderboard.Leaderboard, 0, leaderboard.MaxEntries)

	scanner := bufio.NewScanner(r)
	for len(lb) < leaderboard.MaxEntries && scanner.Scan() {
		entry, ok := parseScoreLine(scanner.Text())
		if !ok {
			break
		}
		lb = append(lb, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	lb.Sort()
	return lb, nil
}

// parseScoreLine requires the initials, the score and a non-empty
// timestamp.
func parseScoreLine(line string) (leaderboard.ScoreEntry, bool) {
	initials, rest := cutToken(line)
	scoreText, rest := cutToken(rest)
	achievedAt := strings.TrimSpace(rest)

	if utf8.RuneCountInString(initials) != leaderboard.InitialsLength || achievedAt == "" {
		return leaderboard.ScoreEntry{}, false
	}
	score, err := strconv.Atoi(scoreText)
	if err != nil {
		return leaderboard.ScoreEntry{}, false
	}

	return leaderboard.ScoreEntry{
		Initials:   initials,
		Score:      score,
		AchievedAt: achievedAt,
	}, true
}

// cutToken splits off the first whitespace delimited token of s.
func cutToken(s string) (token, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

func WriteScores(w io.Writer, lb leaderboard.Leaderboard) error {
	for _, e := range lb {
		if _, err := fmt.Fprintf(w, "%s %d %s\n", e.Initials, e.Score, e.AchievedAt); err != nil {
			return err
		}
	}
	return nil
}
