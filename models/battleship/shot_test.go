package battleship

import (
	"errors"
	"reflect"
	"testing"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

func TestResolveShot(t *testing.T) {
	tests := []struct {
		name           string
		coords         string
		expectedResult ShotResult
		expectedLetter byte
		expectedOcean  byte
	}{
		{name: "water", coords: "E5", expectedResult: ShotMiss, expectedOcean: CellEmpty},
		{name: "intact segment", coords: "A1", expectedResult: ShotHit, expectedLetter: 'S', expectedOcean: 's'},
		{name: "vertical ship", coords: "J4", expectedResult: ShotHit, expectedLetter: 'V', expectedOcean: 'v'},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := newTestGame(t)
			c := mustParse(t, test.coords)

			outcome := g.ResolveShot(c)
			if outcome.Result != test.expectedResult {
				t.Fatalf("expected result: %s\tgot: %s", test.expectedResult, outcome.Result)
			}
			if outcome.ShipLetter != test.expectedLetter {
				t.Fatalf("expected letter: %q\tgot: %q", test.expectedLetter, outcome.ShipLetter)
			}
			if outcome.Rejected {
				t.Fatal("outcome must not be rejected")
			}
			if g.OceanGrid.At(c) != test.expectedOcean {
				t.Fatalf("expected ocean cell: %q\tgot: %q", test.expectedOcean, g.OceanGrid.At(c))
			}
			if g.TargetGrid.At(c) != CellEmpty {
				t.Fatal("resolver must not touch the target grid")
			}
		})
	}
}

func TestResolveShotSinksShip(t *testing.T) {
	g := newTestGame(t)

	if outcome := g.ResolveShot(mustParse(t, "A10")); outcome.Result != ShotHit {
		t.Fatalf("expected result: %s\tgot: %s", ShotHit, outcome.Result)
	}
	outcome := g.ResolveShot(mustParse(t, "B10"))
	if outcome.Result != ShotSunk || outcome.ShipLetter != 'D' {
		t.Fatalf("expected: sunk D\tgot: %s %q", outcome.Result, outcome.ShipLetter)
	}

	ship, _ := g.ShipByLetter('D')
	if !ship.Sunk || ship.Hits != ship.Length {
		t.Fatalf("expected sunk ship with %d hits\tgot: sunk=%t hits=%d", ship.Length, ship.Sunk, ship.Hits)
	}
	if g.ShipsRemaining != FleetSize-1 {
		t.Fatalf("expected ships remaining: %d\tgot: %d", FleetSize-1, g.ShipsRemaining)
	}
}

func TestResolveShotRejectsConclusiveTarget(t *testing.T) {
	tests := []struct {
		name   string
		coords string
		target byte
	}{
		{name: "previous miss", coords: "E5", target: CellMiss},
		{name: "revealed sunk ship", coords: "A10", target: 'D'},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := newTestGame(t)
			c := mustParse(t, test.coords)
			g.TargetGrid.Set(c, test.target)

			fleetBefore := g.Fleet
			oceanBefore := g.OceanGrid

			outcome := g.ResolveShot(c)
			if outcome.Result != ShotAlreadyProcessed || !outcome.Rejected {
				t.Fatalf("expected rejected already processed\tgot: %s rejected=%t", outcome.Result, outcome.Rejected)
			}
			if !reflect.DeepEqual(fleetBefore, g.Fleet) {
				t.Fatal("fleet state mutated by a rejected shot")
			}
			if oceanBefore != g.OceanGrid {
				t.Fatal("ocean grid mutated by a rejected shot")
			}
		})
	}
}

func TestResolveShotPreviouslyHitSegment(t *testing.T) {
	g := newTestGame(t)
	c := mustParse(t, "A1")

	g.ResolveShot(c)
	g.TargetGrid.Set(c, CellHit)

	outcome := g.ResolveShot(c)
	if outcome.Result != ShotAlreadyProcessed {
		t.Fatalf("expected result: %s\tgot: %s", ShotAlreadyProcessed, outcome.Result)
	}
	if outcome.Rejected {
		t.Fatal("a hit-but-unsunk position is resolved, not rejected")
	}
	if ship, _ := g.ShipByLetter('S'); ship.Hits != 1 {
		t.Fatalf("expected hits: 1\tgot: %d", ship.Hits)
	}
}

func TestResolveShotAlreadySunkShip(t *testing.T) {
	g := newTestGame(t)
	ship, _ := g.ShipByLetter('D')
	ship.Hits = 1
	ship.Sunk = true

	outcome := g.ResolveShot(mustParse(t, "B10"))
	if outcome.Result != ShotAlreadyProcessed {
		t.Fatalf("expected result: %s\tgot: %s", ShotAlreadyProcessed, outcome.Result)
	}
	if g.ShipsRemaining != FleetSize {
		t.Fatalf("expected ships remaining: %d\tgot: %d", FleetSize, g.ShipsRemaining)
	}
}

func TestResolveShotInvariantViolation(t *testing.T) {
	tests := []struct {
		name string
		cell byte
	}{
		{name: "unknown upper case letter", cell: 'Q'},
		{name: "unknown lower case letter", cell: 'q'},
		{name: "non letter", cell: '#'},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := newTestGame(t)
			c := mustParse(t, "E5")
			g.OceanGrid.Set(c, test.cell)

			outcome := g.ResolveShot(c)
			if outcome.Result != ShotError {
				t.Fatalf("expected result: %s\tgot: %s", ShotError, outcome.Result)
			}
			if !errors.Is(outcome.Err, cerr.ErrInvariant) {
				t.Fatalf("expected invariant violation\tgot: %v", outcome.Err)
			}
		})
	}
}
