package sqlc

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Scores *ScoreManager
}

func NewDbManager(db *sql.DB, logger zerolog.Logger) DbManager {
	return DbManager{
		Scores: NewScoreManager(db, logger),
	}
}
