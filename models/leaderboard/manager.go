package leaderboard

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// ScoreStore persists the whole leaderboard. Save replaces what was stored.
type ScoreStore interface {
	Load(ctx context.Context) (Leaderboard, error)
	Save(ctx context.Context, lb Leaderboard) error
}

type Clock func() time.Time

type Manager struct {
	store  ScoreStore
	now    Clock
	logger zerolog.Logger
}

func NewManager(store ScoreStore, now Clock, logger zerolog.Logger) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		store:  store,
		now:    now,
		logger: logger.With().Str("component", "leaderboard").Logger(),
	}
}

func (m *Manager) TopScores(ctx context.Context) (Leaderboard, error) {
	return m.store.Load(ctx)
}

// Qualifies loads the stored board and checks whether score would enter it.
func (m *Manager) Qualifies(ctx context.Context, score int) (bool, error) {
	lb, err := m.store.Load(ctx)
	if err != nil {
		return false, err
	}
	return Qualifies(score, lb), nil
}

// Submit records a score under the given initials. Initials that are not
// exactly InitialsLength characters return cerr.ErrInvalidInitials and
// leave the store untouched.
func (m *Manager) Submit(ctx context.Context, initials string, score int) (Leaderboard, error) {
	initials = strings.TrimSpace(initials)
	if len([]rune(initials)) != InitialsLength {
		return nil, cerr.ErrInvalidInitials
	}

	lb, err := m.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !Qualifies(score, lb) {
		m.logger.Debug().Int("score", score).Msg("score does not qualify")
		return lb, nil
	}

	lb = Admit(NewScoreEntry(initials, score, m.now()), lb)
	if err := m.store.Save(ctx, lb); err != nil {
		return nil, err
	}

	m.logger.Info().Str("initials", initials).Int("score", score).Msg("score admitted")
	return lb, nil
}
