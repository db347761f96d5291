package battleship

const GridSize = 10

// Cell states shared by both grids. Ship letters (upper-case intact or
// revealed, lower-case hit) are stored as-is.
const (
	CellEmpty byte = '~'
	CellMiss  byte = 'M'
	CellHit   byte = 'H'
)

type Grid [GridSize][GridSize]byte

// Creates a new default grid
// All positions are CellEmpty
func NewGrid() Grid {
	var grid Grid
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			grid[r][c] = CellEmpty
		}
	}
	return grid
}

func (g *Grid) At(c Coordinates) byte {
	return g[c.Row][c.Col]
}

func (g *Grid) Set(c Coordinates, v byte) {
	g[c.Row][c.Col] = v
}

func InBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func toLower(b byte) byte { return b + ('a' - 'A') }
