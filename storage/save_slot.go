package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

// FileSaveSlot keeps a single saved game in one file.
type FileSaveSlot struct {
	path   string
	logger zerolog.Logger
}

var _ mb.SaveSlot = (*FileSaveSlot)(nil)

func NewFileSaveSlot(path string, logger zerolog.Logger) *FileSaveSlot {
	return &FileSaveSlot{
		path:   path,
		logger: logger.With().Str("save_file", path).Logger(),
	}
}

// Save replaces the slot with the encoded game. The record is written to a
// temporary file in the same directory first so a failed write never leaves
// a truncated slot behind.
func (s *FileSaveSlot) Save(g *mb.Game) error {
	data, err := g.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode game: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("save game: %w", err)
	}

	s.logger.Debug().Str("game_uuid", g.Uuid).Int("missiles", g.MissilesFired).Msg("game saved")
	return nil
}

// Load decodes the slot into a fresh game marked in progress.
func (s *FileSaveSlot) Load() (*mb.Game, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cerr.ErrNoSave
		}
		return nil, fmt.Errorf("load game: %w", err)
	}

	g := new(mb.Game)
	if err := g.UnmarshalBinary(data); err != nil {
		s.logger.Warn().Err(err).Msg("saved game rejected")
		return nil, err
	}
	g.Resume()
	return g, nil
}

func (s *FileSaveSlot) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete save: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
