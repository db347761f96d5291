package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	lb      Leaderboard
	loadErr error
	saves   int
}

func (m *memoryStore) Load(_ context.Context) (Leaderboard, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append(Leaderboard(nil), m.lb...), nil
}

func (m *memoryStore) Save(_ context.Context, lb Leaderboard) error {
	m.lb = append(Leaderboard(nil), lb...)
	m.saves++
	return nil
}

func fixedClock() time.Time {
	return time.Date(2024, time.June, 1, 18, 30, 0, 0, time.UTC)
}

func TestSubmit(t *testing.T) {
	store := &memoryStore{lb: boardOf(20, 30)}
	m := NewManager(store, fixedClock, zerolog.Nop())

	lb, err := m.Submit(context.Background(), "xyz", 25)
	require.NoError(t, err)
	require.Len(t, lb, 3)

	assert.Equal(t, ScoreEntry{Initials: "xyz", Score: 25, AchievedAt: "2024-06-01 18:30"}, lb[1])
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, lb, store.lb)
}

func TestSubmitInvalidInitials(t *testing.T) {
	store := &memoryStore{}
	m := NewManager(store, fixedClock, zerolog.Nop())

	for _, initials := range []string{"", "AB", "ABCD", "   "} {
		_, err := m.Submit(context.Background(), initials, 30)
		assert.ErrorIs(t, err, cerr.ErrInvalidInitials, "initials %q", initials)
		assert.True(t, cerr.IsUserInput(err))
	}
	assert.Zero(t, store.saves)
}

func TestSubmitNonQualifyingScore(t *testing.T) {
	store := &memoryStore{lb: boardOf(17, 18, 19, 20, 21, 22, 23, 24, 25, 25)}
	m := NewManager(store, fixedClock, zerolog.Nop())

	lb, err := m.Submit(context.Background(), "ABC", 30)
	require.NoError(t, err)
	assert.Len(t, lb, MaxEntries)
	assert.Zero(t, store.saves)

	ok, err := m.Qualifies(context.Background(), 30)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubmitLoadError(t *testing.T) {
	loadErr := errors.New("read failed")
	m := NewManager(&memoryStore{loadErr: loadErr}, fixedClock, zerolog.Nop())

	_, err := m.Submit(context.Background(), "ABC", 30)
	assert.ErrorIs(t, err, loadErr)
}
