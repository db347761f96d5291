package sqlc

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-solo/models/leaderboard"
)

// ScoreManager stores the leaderboard in the top_scores table.
type ScoreManager struct {
	db      *sql.DB
	queries *Queries
	logger  zerolog.Logger
}

var _ leaderboard.ScoreStore = (*ScoreManager)(nil)

func NewScoreManager(db *sql.DB, logger zerolog.Logger) *ScoreManager {
	return &ScoreManager{
		db:      db,
		queries: New(db),
		logger:  logger.With().Str("component", "score_manager").Logger(),
	}
}

func (s *ScoreManager) Load(ctx context.Context) (leaderboard.Leaderboard, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	rows, err := s.queries.ListTopScores(ctx, leaderboard.MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("list top scores: %w", err)
	}

	lb := make(leaderboard.Leaderboard, 0, len(rows))
	for _, row := range rows {
		lb = append(lb, leaderboard.ScoreEntry{
			Initials:   row.Initials,
			Score:      int(row.Score),
			AchievedAt: row.AchievedAt,
		})
	}
	return lb, nil
}

// Save replaces the stored board inside one transaction.
func (s *ScoreManager) Save(ctx context.Context, lb leaderboard.Leaderboard) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := ReplaceTopScores(ctx, s.queries.WithTx(tx), lb); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit top scores: %w", err)
	}

	s.logger.Debug().Int("entries", len(lb)).Msg("top scores replaced")
	return nil
}

// ReplaceTopScores deletes every stored row and inserts lb in order.
func ReplaceTopScores(ctx context.Context, q Querier, lb leaderboard.Leaderboard) error {
	if err := q.DeleteTopScores(ctx); err != nil {
		return fmt.Errorf("delete top scores: %w", err)
	}
	for _, e := range lb {
		err := q.InsertTopScore(ctx, InsertTopScoreParams{
			Initials:   e.Initials,
			Score:      int32(e.Score),
			AchievedAt: e.AchievedAt,
		})
		if err != nil {
			return fmt.Errorf("insert top score %s: %w", e.Initials, err)
		}
	}
	return nil
}
