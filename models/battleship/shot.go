package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type ShotResult uint8

const (
	ShotMiss ShotResult = iota
	ShotHit
	ShotSunk
	ShotAlreadyProcessed
	ShotError
)

func (r ShotResult) String() string {
	switch r {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	case ShotAlreadyProcessed:
		return "already_processed"
	default:
		return "error"
	}
}

type ShotOutcome struct {
	Result      ShotResult
	Coordinates Coordinates

	// Letter of the ship that was hit or sunk
	ShipLetter byte

	// Rejected is set when the target grid already shows a conclusive
	// result (miss or sunk ship) at this position. Nothing was mutated
	// and no missile is spent.
	Rejected bool

	// Err carries the invariant violation for ShotError
	Err error
}

// ResolveShot applies a shot to the hidden ocean grid and the fleet
// bookkeeping. It never touches the target grid or the missile counter;
// Fire does that based on the returned outcome.
func (g *Game) ResolveShot(c Coordinates) ShotOutcome {
	outcome := ShotOutcome{Coordinates: c}

	if !InBounds(c.Row, c.Col) {
		outcome.Result = ShotError
		outcome.Err = cerr.ErrInvariantViolation(c.String(), 0)
		return outcome
	}

	if target := g.TargetGrid.At(c); target == CellMiss || (isUpper(target) && target != CellHit) {
		outcome.Result = ShotAlreadyProcessed
		outcome.Rejected = true
		return outcome
	}

	cell := g.OceanGrid.At(c)
	switch {
	case cell == CellEmpty:
		outcome.Result = ShotMiss

	case isLower(cell):
		if g.findShip(upper(cell)) == nil {
			outcome.Result = ShotError
			outcome.Err = cerr.ErrInvariantViolation(c.String(), cell)
			return outcome
		}
		outcome.Result = ShotAlreadyProcessed
		outcome.ShipLetter = upper(cell)

	case isUpper(cell):
		ship := g.findShip(cell)
		if ship == nil {
			outcome.Result = ShotError
			outcome.Err = cerr.ErrInvariantViolation(c.String(), cell)
			return outcome
		}

		outcome.ShipLetter = cell
		ship.GotHit()
		g.OceanGrid.Set(c, toLower(cell))

		if !ship.IsSunk() {
			outcome.Result = ShotHit
			return outcome
		}
		if ship.Sunk {
			outcome.Result = ShotAlreadyProcessed
			return outcome
		}
		ship.Sunk = true
		g.ShipsRemaining--
		outcome.Result = ShotSunk

	default:
		outcome.Result = ShotError
		outcome.Err = cerr.ErrInvariantViolation(c.String(), cell)
	}

	return outcome
}

func (g *Game) findShip(letter byte) *Ship {
	for i := range g.Fleet {
		if g.Fleet[i].Letter == letter {
			return &g.Fleet[i]
		}
	}
	return nil
}

// revealSunkShip overwrites every segment of the ship on the target grid
// with its letter.
func (g *Game) revealSunkShip(ship *Ship) {
	for _, seg := range ship.Segments {
		g.TargetGrid.Set(seg, ship.Letter)
	}
}
