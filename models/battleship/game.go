package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"

	"github.com/google/uuid"
)

type GameState uint8

const (
	GameStateNotStarted GameState = iota
	GameStateInProgress
	GameStateWon
	GameStateAbandoned
)

func (s GameState) String() string {
	switch s {
	case GameStateNotStarted:
		return "not_started"
	case GameStateInProgress:
		return "in_progress"
	case GameStateWon:
		return "won"
	default:
		return "abandoned"
	}
}

type Game struct {
	Uuid           string
	OceanGrid      Grid
	TargetGrid     Grid
	Fleet          [FleetSize]Ship
	MissilesFired  int
	ShipsRemaining int
	LastShot       Coordinates
	LastShotValid  bool
	state          GameState
}

func NewGame() *Game {
	return &Game{
		Uuid:           uuid.NewString(),
		OceanGrid:      NewGrid(),
		TargetGrid:     NewGrid(),
		Fleet:          NewFleet(),
		ShipsRemaining: FleetSize,
		state:          GameStateNotStarted,
	}
}

// Start places the fleet and moves the game into progress. A returned
// *cerr.PlacementWarning is not fatal: the game has started regardless.
func (g *Game) Start(rng Rand) error {
	if g.state != GameStateNotStarted {
		return cerr.ErrGameNotInProgress
	}
	err := PlaceFleet(rng, &g.OceanGrid, g.Fleet[:])
	g.state = GameStateInProgress
	return err
}

// Resume is used after a successful load.
func (g *Game) Resume() {
	g.state = GameStateInProgress
}

func (g *Game) Abandon() {
	if g.state == GameStateInProgress {
		g.state = GameStateAbandoned
	}
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) IsInProgress() bool {
	return g.state == GameStateInProgress
}

func (g *Game) IsWon() bool {
	return g.state == GameStateWon
}

// Score is the number of missiles fired; lower is better.
func (g *Game) Score() int {
	return g.MissilesFired
}

func (g *Game) IsPerfect() bool {
	return g.IsWon() && g.MissilesFired == TotalFleetCells
}

// Fire plays one turn from the raw text typed by the player.
//
// Parse failures and shots at conclusively resolved positions return an
// error and do not consume a missile. Every other shot is counted and the
// target grid is updated from the outcome. When the last ship goes down
// the game is won.
func (g *Game) Fire(text string) (ShotOutcome, error) {
	if !g.IsInProgress() {
		return ShotOutcome{}, cerr.ErrGameNotInProgress
	}

	coords, err := ParseCoordinates(text)
	if err != nil {
		g.LastShotValid = false
		return ShotOutcome{}, err
	}
	g.LastShot = coords
	g.LastShotValid = true

	outcome := g.ResolveShot(coords)
	if outcome.Rejected {
		return outcome, cerr.ErrRedundantShot(coords.String(), g.TargetGrid.At(coords))
	}

	g.MissilesFired++

	switch outcome.Result {
	case ShotMiss:
		g.TargetGrid.Set(coords, CellMiss)
	case ShotHit:
		g.TargetGrid.Set(coords, CellHit)
	case ShotSunk:
		g.revealSunkShip(g.findShip(outcome.ShipLetter))
	}

	if g.ShipsRemaining == 0 {
		g.state = GameStateWon
	}
	return outcome, nil
}

// ShipByLetter returns the fleet member with that identifier, if any.
func (g *Game) ShipByLetter(letter byte) (*Ship, bool) {
	ship := g.findShip(letter)
	return ship, ship != nil
}
