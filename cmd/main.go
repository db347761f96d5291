package main

import (
	"context"
	"database/sql"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-solo/console"
	"github.com/saeidalz13/battleship-solo/db"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	"github.com/saeidalz13/battleship-solo/internal/config"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	"github.com/saeidalz13/battleship-solo/models/leaderboard"
	"github.com/saeidalz13/battleship-solo/storage"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Debug().Int64("seed", seed).Str("stage", cfg.Stage).Msg("starting battleship")

	scoreStore, conn := createScoreStore(cfg, logger)
	if conn != nil {
		defer conn.Close()
	}

	slot := storage.NewFileSaveSlot(cfg.SaveFile, logger)
	gameManager := mb.NewBattleshipGameManager(rng, slot)
	scores := leaderboard.NewManager(scoreStore, time.Now, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	processor := console.NewProcessor(console.NewStdioConsole(ctx, os.Stdin, os.Stdout), gameManager, scores, logger)
	if err := processor.Run(ctx); err != nil {
		logger.Info().Err(err).Msg("session interrupted")
	}
}

func newLogger(level string) zerolog.Logger {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
}

// createScoreStore falls back to the score file when the database cannot
// be used. The returned *sql.DB is nil unless postgres is in use.
func createScoreStore(cfg config.Config, logger zerolog.Logger) (leaderboard.ScoreStore, *sql.DB) {
	fileStore := storage.NewFileScoreStore(cfg.ScoreFile, logger)

	switch cfg.ScoreBackend {
	case config.ScoreBackendPostgres:
		conn, err := db.ConnectToDb(cfg.DatabaseURL, cfg.MigrationsDir, logger)
		if err != nil {
			logger.Error().Err(err).Msg("postgres score store unavailable, using score file")
			return fileStore, nil
		}
		logger.Info().Msg("postgres score store initialized")
		return sqlc.NewDbManager(conn, logger).Scores, conn

	default:
		logger.Debug().Msg("score file store initialized")
		return fileStore, nil
	}
}
