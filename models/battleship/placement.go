package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const MaxPlacementAttempts = 1000

const (
	OrientationHorizontal int = iota
	OrientationVertical
)

// Rand is the random source used for ship placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// PlaceFleet places every ship of the fleet on the grid in order, sampling
// random starts and orientations. Ships that cannot be placed within
// MaxPlacementAttempts are left off the grid and reported in a
// *cerr.PlacementWarning; the remaining ships are still placed.
func PlaceFleet(rng Rand, grid *Grid, fleet []Ship) error {
	var unplaced []byte

	for i := range fleet {
		ship := &fleet[i]
		ship.Segments = ship.Segments[:0]

		placed := false
		for attempt := 0; attempt < MaxPlacementAttempts && !placed; attempt++ {
			row := rng.Intn(GridSize)
			col := rng.Intn(GridSize)
			orientation := rng.Intn(2)

			if !isValidPlacement(grid, ship.Length, row, col, orientation) {
				continue
			}

			for j := 0; j < ship.Length; j++ {
				seg := segmentAt(row, col, orientation, j)
				grid.Set(seg, ship.Letter)
				ship.Segments = append(ship.Segments, seg)
			}
			placed = true
		}

		if !placed {
			unplaced = append(unplaced, ship.Letter)
		}
	}

	if len(unplaced) != 0 {
		return &cerr.PlacementWarning{Unplaced: unplaced, Attempts: MaxPlacementAttempts}
	}
	return nil
}

func isValidPlacement(grid *Grid, length, row, col, orientation int) bool {
	for j := 0; j < length; j++ {
		seg := segmentAt(row, col, orientation, j)
		if !InBounds(seg.Row, seg.Col) {
			return false
		}
		if grid.At(seg) != CellEmpty {
			return false
		}
	}
	return true
}

func segmentAt(row, col, orientation, offset int) Coordinates {
	if orientation == OrientationHorizontal {
		return NewCoordinates(row, col+offset)
	}
	return NewCoordinates(row+offset, col)
}
