package battleship

import "testing"

// scriptedRand returns the scripted values in order and then repeats the
// last one.
type scriptedRand struct {
	values []int
	calls  int
}

func (s *scriptedRand) Intn(n int) int {
	idx := s.calls
	if idx >= len(s.values) {
		idx = len(s.values) - 1
	}
	s.calls++
	return s.values[idx] % n
}

// Fixed layout used across tests:
//
//	S: A1 B1 C1
//	A: A3 B3 C3 D3 E3
//	V: J1 J2 J3 J4
//	E: F6 G6 H6
//	D: A10 B10
func newTestGame(t *testing.T) *Game {
	t.Helper()

	g := NewGame()
	placeAt(g, 0, 0, 0, OrientationHorizontal)
	placeAt(g, 1, 2, 0, OrientationHorizontal)
	placeAt(g, 2, 0, 9, OrientationVertical)
	placeAt(g, 3, 5, 5, OrientationHorizontal)
	placeAt(g, 4, 9, 0, OrientationHorizontal)
	g.state = GameStateInProgress
	return g
}

func placeAt(g *Game, idx, row, col, orientation int) {
	ship := &g.Fleet[idx]
	for j := 0; j < ship.Length; j++ {
		seg := segmentAt(row, col, orientation, j)
		g.OceanGrid.Set(seg, ship.Letter)
		ship.Segments = append(ship.Segments, seg)
	}
}

var testShipCells = []string{
	"A1", "B1", "C1",
	"A3", "B3", "C3", "D3", "E3",
	"J1", "J2", "J3", "J4",
	"F6", "G6", "H6",
	"A10", "B10",
}

func mustParse(t *testing.T, text string) Coordinates {
	t.Helper()
	c, err := ParseCoordinates(text)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", text, err)
	}
	return c
}
