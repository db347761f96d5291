package battleship

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const (
	SaveVersion uint16 = 1
)

var saveMagic = [4]byte{'B', 'S', 'A', 'V'}

// On-disk layout of a saved game, version 1. Every field has a fixed size
// and encoding/binary writes them in declaration order without padding.
type saveRecordV1 struct {
	Magic          [4]byte
	Version        uint16
	Uuid           [16]byte
	Ocean          [GridSize * GridSize]byte
	Target         [GridSize * GridSize]byte
	Ships          [FleetSize]shipRecordV1
	MissilesFired  uint32
	ShipsRemaining uint8
	InProgress     uint8
	LastShotRow    uint8
	LastShotCol    uint8
	LastShotValid  uint8
}

type shipRecordV1 struct {
	Letter   uint8
	Length   uint8
	Hits     uint8
	Sunk     uint8
	Placed   uint8
	Segments [maxShipLength][2]uint8
}

// SaveRecordSize is the exact size of an encoded game in bytes.
var SaveRecordSize = binary.Size(saveRecordV1{})

func (g *Game) MarshalBinary() ([]byte, error) {
	id, err := uuid.Parse(g.Uuid)
	if err != nil {
		return nil, fmt.Errorf("game uuid %q: %w", g.Uuid, err)
	}
	if g.MissilesFired < 0 {
		return nil, fmt.Errorf("negative missile count: %d", g.MissilesFired)
	}

	rec := saveRecordV1{
		Magic:          saveMagic,
		Version:        SaveVersion,
		Uuid:           id,
		MissilesFired:  uint32(g.MissilesFired),
		ShipsRemaining: uint8(g.ShipsRemaining),
		InProgress:     boolByte(g.IsInProgress()),
		LastShotRow:    uint8(g.LastShot.Row),
		LastShotCol:    uint8(g.LastShot.Col),
		LastShotValid:  boolByte(g.LastShotValid),
	}
	flattenGrid(&g.OceanGrid, &rec.Ocean)
	flattenGrid(&g.TargetGrid, &rec.Target)

	for i := range g.Fleet {
		ship := &g.Fleet[i]
		if len(ship.Segments) > maxShipLength {
			return nil, fmt.Errorf("ship %c has %d segments", ship.Letter, len(ship.Segments))
		}
		sr := shipRecordV1{
			Letter: ship.Letter,
			Length: uint8(ship.Length),
			Hits:   uint8(ship.Hits),
			Sunk:   boolByte(ship.Sunk),
			Placed: uint8(len(ship.Segments)),
		}
		for j, seg := range ship.Segments {
			sr.Segments[j] = [2]uint8{uint8(seg.Row), uint8(seg.Col)}
		}
		rec.Ships[i] = sr
	}

	var buf bytes.Buffer
	buf.Grow(SaveRecordSize)
	if err := binary.Write(&buf, binary.LittleEndian, &rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes and validates a saved game. The receiver is only
// overwritten when the whole record is valid.
func (g *Game) UnmarshalBinary(data []byte) error {
	if len(data) != SaveRecordSize {
		return cerr.ErrSaveSizeMismatch(SaveRecordSize, len(data))
	}

	var rec saveRecordV1
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &rec); err != nil {
		return cerr.ErrSaveContent(err.Error())
	}
	if rec.Magic != saveMagic {
		return cerr.ErrSaveContent("bad magic")
	}
	if rec.Version != SaveVersion {
		return cerr.ErrSaveVersion(rec.Version)
	}

	loaded := Game{
		Uuid:           uuid.UUID(rec.Uuid).String(),
		MissilesFired:  int(rec.MissilesFired),
		ShipsRemaining: int(rec.ShipsRemaining),
		LastShot:       NewCoordinates(int(rec.LastShotRow), int(rec.LastShotCol)),
		LastShotValid:  rec.LastShotValid != 0,
		state:          GameStateNotStarted,
	}
	if rec.InProgress != 0 {
		loaded.state = GameStateInProgress
	}
	unflattenGrid(&rec.Ocean, &loaded.OceanGrid)
	unflattenGrid(&rec.Target, &loaded.TargetGrid)

	for i, sr := range rec.Ships {
		ship, err := decodeShip(i, sr)
		if err != nil {
			return err
		}
		loaded.Fleet[i] = ship
	}

	if err := loaded.validate(); err != nil {
		return err
	}

	*g = loaded
	return nil
}

func decodeShip(i int, sr shipRecordV1) (Ship, error) {
	class := ShipClasses[i]
	if sr.Letter != class.Letter || int(sr.Length) != class.Length {
		return Ship{}, cerr.ErrSaveContent(fmt.Sprintf("ship %d does not match fleet catalog", i))
	}
	if int(sr.Hits) > class.Length {
		return Ship{}, cerr.ErrSaveContent(fmt.Sprintf("ship %c has more hits than segments", sr.Letter))
	}
	if (sr.Sunk != 0) != (int(sr.Hits) == class.Length) {
		return Ship{}, cerr.ErrSaveContent(fmt.Sprintf("ship %c sunk flag disagrees with hits", sr.Letter))
	}
	if sr.Placed != 0 && int(sr.Placed) != class.Length {
		return Ship{}, cerr.ErrSaveContent(fmt.Sprintf("ship %c is partially placed", sr.Letter))
	}

	ship := NewShip(class)
	ship.Hits = int(sr.Hits)
	ship.Sunk = sr.Sunk != 0
	for j := 0; j < int(sr.Placed); j++ {
		seg := NewCoordinates(int(sr.Segments[j][0]), int(sr.Segments[j][1]))
		if !InBounds(seg.Row, seg.Col) {
			return Ship{}, cerr.ErrSaveContent(fmt.Sprintf("ship %c segment out of bounds", sr.Letter))
		}
		ship.Segments = append(ship.Segments, seg)
	}
	return ship, nil
}

// validate checks the cross-field invariants of a decoded game.
func (g *Game) validate() error {
	unsunk := 0
	for i := range g.Fleet {
		ship := &g.Fleet[i]
		if !ship.Sunk {
			unsunk++
		}

		hitCells := 0
		for _, seg := range ship.Segments {
			switch g.OceanGrid.At(seg) {
			case ship.Letter:
			case toLower(ship.Letter):
				hitCells++
			default:
				return cerr.ErrSaveContent(fmt.Sprintf("ocean grid disagrees with ship %c at %s", ship.Letter, seg))
			}
		}
		if hitCells != ship.Hits {
			return cerr.ErrSaveContent(fmt.Sprintf("ship %c has %d hits but %d hit cells", ship.Letter, ship.Hits, hitCells))
		}
	}
	if unsunk != g.ShipsRemaining {
		return cerr.ErrSaveContent(fmt.Sprintf("ships remaining %d but %d ships afloat", g.ShipsRemaining, unsunk))
	}
	if !InBounds(g.LastShot.Row, g.LastShot.Col) {
		return cerr.ErrSaveContent("last shot out of bounds")
	}

	shipCells := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			coords := NewCoordinates(r, c)
			ocean := g.OceanGrid.At(coords)
			if ocean != CellEmpty {
				if g.findShip(upper(ocean)) == nil {
					return cerr.ErrSaveContent(fmt.Sprintf("unknown ocean cell %q", ocean))
				}
				shipCells++
			}
			if err := g.validateTargetCell(coords, ocean); err != nil {
				return err
			}
		}
	}

	placed := 0
	for i := range g.Fleet {
		placed += len(g.Fleet[i].Segments)
	}
	if shipCells != placed {
		return cerr.ErrSaveContent(fmt.Sprintf("ocean grid has %d ship cells but fleet occupies %d", shipCells, placed))
	}
	return nil
}

// validateTargetCell checks that what the player sees at coords agrees with
// the hidden ocean cell underneath.
func (g *Game) validateTargetCell(coords Coordinates, ocean byte) error {
	target := g.TargetGrid.At(coords)

	var ok bool
	switch {
	case target == CellEmpty:
		ok = true
	case target == CellMiss:
		ok = ocean == CellEmpty
	case target == CellHit:
		ship := g.findShip(upper(ocean))
		ok = isLower(ocean) && ship != nil && !ship.Sunk
	default:
		ship := g.findShip(target)
		ok = ship != nil && ship.Sunk && ocean == toLower(target)
	}

	if !ok {
		return cerr.ErrSaveContent(fmt.Sprintf("target cell %q at %s disagrees with ocean cell %q", target, coords, ocean))
	}
	return nil
}

func flattenGrid(g *Grid, out *[GridSize * GridSize]byte) {
	for r := 0; r < GridSize; r++ {
		copy(out[r*GridSize:(r+1)*GridSize], g[r][:])
	}
}

func unflattenGrid(in *[GridSize * GridSize]byte, g *Grid) {
	for r := 0; r < GridSize; r++ {
		copy(g[r][:], in[r*GridSize:(r+1)*GridSize])
	}
}

func upper(b byte) byte {
	if isLower(b) {
		return b - ('a' - 'A')
	}
	return b
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
