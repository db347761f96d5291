package leaderboard

import (
	"slices"
	"sort"
	"time"
)

const (
	MaxEntries     = 10
	InitialsLength = 3

	// Layout of ScoreEntry.AchievedAt
	TimestampLayout = "2006-01-02 15:04"
)

type ScoreEntry struct {
	Initials   string
	Score      int
	AchievedAt string
}

func NewScoreEntry(initials string, score int, at time.Time) ScoreEntry {
	return ScoreEntry{
		Initials:   initials,
		Score:      score,
		AchievedAt: at.Format(TimestampLayout),
	}
}

// Leaderboard holds at most MaxEntries entries sorted ascending by score.
type Leaderboard []ScoreEntry

// Qualifies reports whether score earns a place on lb.
func Qualifies(score int, lb Leaderboard) bool {
	if len(lb) < MaxEntries {
		return true
	}
	return score < lb[MaxEntries-1].Score
}

// Admit returns a copy of lb with entry inserted, replacing the worst entry
// of a full board, re-sorted. Entries with equal scores keep their
// insertion order. lb itself is not modified.
func Admit(entry ScoreEntry, lb Leaderboard) Leaderboard {
	lb = slices.Clone(lb)
	if len(lb) < MaxEntries {
		lb = append(lb, entry)
	} else {
		lb = lb[:MaxEntries]
		lb[MaxEntries-1] = entry
	}
	lb.Sort()
	return lb
}

func (lb Leaderboard) Sort() {
	sort.SliceStable(lb, func(i, j int) bool {
		return lb[i].Score < lb[j].Score
	})
}

func (lb Leaderboard) IsSorted() bool {
	return sort.SliceIsSorted(lb, func(i, j int) bool {
		return lb[i].Score < lb[j].Score
	})
}
