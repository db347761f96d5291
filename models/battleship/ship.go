package battleship

const (
	FleetSize = 5

	// Sum of all ship class lengths. A game won with exactly this many
	// missiles is a perfect game.
	TotalFleetCells = 17

	maxShipLength = 5
)

type ShipClass struct {
	Name   string
	Letter byte
	Length int
}

var ShipClasses = [FleetSize]ShipClass{
	{Name: "Seminole State Ship", Letter: 'S', Length: 3},
	{Name: "Air Force Academy", Letter: 'A', Length: 5},
	{Name: "Valencia Destroyer", Letter: 'V', Length: 4},
	{Name: "Eskimo University", Letter: 'E', Length: 3},
	{Name: "Deland High School", Letter: 'D', Length: 2},
}

type Ship struct {
	Name     string
	Letter   byte
	Length   int
	Hits     int
	Sunk     bool
	Segments []Coordinates
}

func NewShip(class ShipClass) Ship {
	return Ship{
		Name:     class.Name,
		Letter:   class.Letter,
		Length:   class.Length,
		Segments: make([]Coordinates, 0, class.Length),
	}
}

// NewFleet returns one unplaced ship per catalog entry, in catalog order.
func NewFleet() [FleetSize]Ship {
	var fleet [FleetSize]Ship
	for i, class := range ShipClasses {
		fleet[i] = NewShip(class)
	}
	return fleet
}

func (sh *Ship) GotHit() {
	sh.Hits++
}

func (sh *Ship) IsSunk() bool {
	return sh.Hits >= sh.Length
}

func (sh *Ship) IsPlaced() bool {
	return len(sh.Segments) == sh.Length
}
