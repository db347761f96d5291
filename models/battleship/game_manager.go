package battleship

import (
	"errors"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// SaveSlot is the single persisted game location.
type SaveSlot interface {
	Save(g *Game) error
	Load() (*Game, error)
	Delete() error
}

// GameManager owns the one game session of the process.
type GameManager interface {
	CreateGame() (*Game, error)
	ResumeGame() (*Game, error)
	SaveGame() error
	AbandonGame(save bool) error
	FinishGame() error
	CurrentGame() *Game
}

type BattleshipGameManager struct {
	rng     Rand
	slot    SaveSlot
	current *Game

	// Uuid of the game last written to or read from the slot
	slotUuid string
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(rng Rand, slot SaveSlot) *BattleshipGameManager {
	return &BattleshipGameManager{
		rng:  rng,
		slot: slot,
	}
}

// CreateGame discards the current game and starts a fresh one. A
// *cerr.PlacementWarning may be returned together with a playable game.
func (bgm *BattleshipGameManager) CreateGame() (*Game, error) {
	game := NewGame()
	err := game.Start(bgm.rng)
	bgm.current = game

	var warning *cerr.PlacementWarning
	if err != nil && !errors.As(err, &warning) {
		bgm.current = nil
		return nil, err
	}
	return game, err
}

// ResumeGame loads the save slot. The current game is kept untouched when
// loading fails.
func (bgm *BattleshipGameManager) ResumeGame() (*Game, error) {
	game, err := bgm.slot.Load()
	if err != nil {
		return nil, err
	}
	game.Resume()
	bgm.current = game
	bgm.slotUuid = game.Uuid
	return game, nil
}

func (bgm *BattleshipGameManager) SaveGame() error {
	if bgm.current == nil || !bgm.current.IsInProgress() {
		return cerr.ErrGameNotInProgress
	}
	if err := bgm.slot.Save(bgm.current); err != nil {
		return err
	}
	bgm.slotUuid = bgm.current.Uuid
	return nil
}

// AbandonGame optionally saves and then abandons the current game. The
// game is abandoned even when saving fails; the save error is returned.
func (bgm *BattleshipGameManager) AbandonGame(save bool) error {
	if bgm.current == nil {
		return nil
	}

	var err error
	if save {
		err = bgm.SaveGame()
	}
	bgm.current.Abandon()
	bgm.current = nil
	return err
}

// FinishGame clears the save slot once the current game has been won so a
// finished game cannot be resumed. A slot holding any other game is kept.
func (bgm *BattleshipGameManager) FinishGame() error {
	if bgm.current == nil || !bgm.current.IsWon() {
		return cerr.ErrGameNotInProgress
	}
	won := bgm.current
	bgm.current = nil

	if bgm.slotUuid != won.Uuid {
		return nil
	}
	bgm.slotUuid = ""
	return bgm.slot.Delete()
}

func (bgm *BattleshipGameManager) CurrentGame() *Game {
	return bgm.current
}
