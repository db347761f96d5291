package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "BATTLESHIP"

	StageDev  = "dev"
	StageProd = "prod"

	ScoreBackendFile     = "file"
	ScoreBackendPostgres = "postgres"
)

type Config struct {
	Stage         string
	LogLevel      string
	SaveFile      string
	ScoreFile     string
	ScoreBackend  string
	DatabaseURL   string
	MigrationsDir string

	// 0 seeds from the clock
	Seed int64
}

func setDefaults() {
	viper.SetDefault("stage", StageDev)
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("save_file", "battleship_save_game.dat")
	viper.SetDefault("score_file", "topTenScores.txt")
	viper.SetDefault("score_backend", ScoreBackendFile)
	viper.SetDefault("database_url", "")
	viper.SetDefault("migrations_dir", "file://db/migration")
	viper.SetDefault("seed", 0)
}

// Load resolves the configuration from BATTLESHIP_* environment variables.
// Outside of prod the variables in envFile are loaded first; a missing
// envFile is not an error.
func Load(envFile string) (Config, error) {
	if os.Getenv(EnvPrefix+"_STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	setDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cfg := Config{
		Stage:         viper.GetString("stage"),
		LogLevel:      viper.GetString("log_level"),
		SaveFile:      viper.GetString("save_file"),
		ScoreFile:     viper.GetString("score_file"),
		ScoreBackend:  viper.GetString("score_backend"),
		DatabaseURL:   viper.GetString("database_url"),
		MigrationsDir: viper.GetString("migrations_dir"),
		Seed:          viper.GetInt64("seed"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Stage != StageDev && c.Stage != StageProd {
		return cerr.ErrInvalidStage(c.Stage)
	}
	switch c.ScoreBackend {
	case ScoreBackendFile:
	case ScoreBackendPostgres:
		if c.DatabaseURL == "" {
			return cerr.ErrMissingDatabaseURL
		}
	default:
		return cerr.ErrInvalidScoreBackend(c.ScoreBackend)
	}
	return nil
}
