package battleship

import (
	"errors"
	"math/rand"
	"testing"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

func TestStartPlacesFleet(t *testing.T) {
	g := NewGame()
	if g.State() != GameStateNotStarted {
		t.Fatalf("expected state: %s\tgot: %s", GameStateNotStarted, g.State())
	}

	if err := g.Start(rand.New(rand.NewSource(7))); err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	if !g.IsInProgress() {
		t.Fatalf("expected state: %s\tgot: %s", GameStateInProgress, g.State())
	}
	if g.ShipsRemaining != FleetSize || g.MissilesFired != 0 {
		t.Fatalf("unexpected counters: remaining=%d missiles=%d", g.ShipsRemaining, g.MissilesFired)
	}
	for _, ship := range g.Fleet {
		if !ship.IsPlaced() {
			t.Fatalf("ship %c not placed", ship.Letter)
		}
	}

	if err := g.Start(rand.New(rand.NewSource(7))); !errors.Is(err, cerr.ErrGameNotInProgress) {
		t.Fatalf("expected a second start to fail\tgot: %v", err)
	}
}

func TestFireParseErrorDoesNotConsumeTurn(t *testing.T) {
	g := newTestGame(t)
	g.LastShotValid = true

	_, err := g.Fire("K5")
	if !errors.Is(err, cerr.ErrCoordColumnRange) {
		t.Fatalf("expected column range error\tgot: %v", err)
	}
	if g.MissilesFired != 0 {
		t.Fatalf("expected missiles: 0\tgot: %d", g.MissilesFired)
	}
	if g.LastShotValid {
		t.Fatal("last shot must be invalidated by a parse error")
	}
}

func TestFireUpdatesTargetGrid(t *testing.T) {
	g := newTestGame(t)

	outcome, err := g.Fire("e5")
	if err != nil || outcome.Result != ShotMiss {
		t.Fatalf("expected miss\tgot: %s %v", outcome.Result, err)
	}
	if g.TargetGrid.At(mustParse(t, "E5")) != CellMiss {
		t.Fatal("miss not marked on target grid")
	}

	outcome, err = g.Fire("A10")
	if err != nil || outcome.Result != ShotHit {
		t.Fatalf("expected hit\tgot: %s %v", outcome.Result, err)
	}
	if g.TargetGrid.At(mustParse(t, "A10")) != CellHit {
		t.Fatal("hit not marked on target grid")
	}
	if g.LastShot != mustParse(t, "A10") || !g.LastShotValid {
		t.Fatalf("unexpected last shot: %+v valid=%t", g.LastShot, g.LastShotValid)
	}

	outcome, err = g.Fire("B10")
	if err != nil || outcome.Result != ShotSunk {
		t.Fatalf("expected sunk\tgot: %s %v", outcome.Result, err)
	}
	for _, text := range []string{"A10", "B10"} {
		if cell := g.TargetGrid.At(mustParse(t, text)); cell != 'D' {
			t.Fatalf("expected revealed letter D at %s\tgot: %q", text, cell)
		}
	}
	if g.MissilesFired != 3 {
		t.Fatalf("expected missiles: 3\tgot: %d", g.MissilesFired)
	}
}

func TestFireRedundantShot(t *testing.T) {
	tests := []struct {
		name  string
		shots []string
		again string
	}{
		{name: "repeat miss", shots: []string{"E5"}, again: "E5"},
		{name: "repeat sunk segment", shots: []string{"A10", "B10"}, again: "A10"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := newTestGame(t)
			for _, s := range test.shots {
				if _, err := g.Fire(s); err != nil {
					t.Fatalf("unexpected error firing %s: %v", s, err)
				}
			}
			missiles := g.MissilesFired
			fleet := g.Fleet

			outcome, err := g.Fire(test.again)
			if !errors.Is(err, cerr.ErrRedundant) {
				t.Fatalf("expected redundant shot error\tgot: %v", err)
			}
			if outcome.Result != ShotAlreadyProcessed {
				t.Fatalf("expected result: %s\tgot: %s", ShotAlreadyProcessed, outcome.Result)
			}
			if g.MissilesFired != missiles {
				t.Fatalf("expected missiles: %d\tgot: %d", missiles, g.MissilesFired)
			}
			for i := range fleet {
				if fleet[i].Hits != g.Fleet[i].Hits || fleet[i].Sunk != g.Fleet[i].Sunk {
					t.Fatalf("fleet state of %c changed", fleet[i].Letter)
				}
			}
		})
	}
}

func TestFireRepeatOnHitSegmentCostsMissile(t *testing.T) {
	g := newTestGame(t)
	g.Fire("A1")

	outcome, err := g.Fire("A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Result != ShotAlreadyProcessed {
		t.Fatalf("expected result: %s\tgot: %s", ShotAlreadyProcessed, outcome.Result)
	}
	if g.MissilesFired != 2 {
		t.Fatalf("expected missiles: 2\tgot: %d", g.MissilesFired)
	}
}

func TestPerfectGame(t *testing.T) {
	g := newTestGame(t)

	remaining := g.ShipsRemaining
	for _, text := range testShipCells {
		if _, err := g.Fire(text); err != nil {
			t.Fatalf("unexpected error firing %s: %v", text, err)
		}
		if g.ShipsRemaining > remaining {
			t.Fatalf("ships remaining increased from %d to %d", remaining, g.ShipsRemaining)
		}
		remaining = g.ShipsRemaining
	}

	if !g.IsWon() {
		t.Fatalf("expected state: %s\tgot: %s", GameStateWon, g.State())
	}
	if g.Score() != TotalFleetCells || !g.IsPerfect() {
		t.Fatalf("expected perfect game with %d missiles\tgot: %d", TotalFleetCells, g.Score())
	}

	if _, err := g.Fire("E5"); !errors.Is(err, cerr.ErrGameNotInProgress) {
		t.Fatalf("expected game not in progress\tgot: %v", err)
	}
}

func TestShipsRemainingMatchesFleet(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := NewGame()
		if err := g.Start(rng); err != nil {
			t.Fatalf("unexpected start error: %v", err)
		}

		remaining := g.ShipsRemaining
		for _, idx := range rng.Perm(GridSize * GridSize) {
			if !g.IsInProgress() {
				break
			}
			c := NewCoordinates(idx/GridSize, idx%GridSize)
			if _, err := g.Fire(c.String()); err != nil {
				t.Fatalf("seed %d: unexpected error at %s: %v", seed, c, err)
			}
			if g.ShipsRemaining > remaining {
				t.Fatalf("seed %d: ships remaining increased", seed)
			}
			remaining = g.ShipsRemaining

			allHit := true
			for _, ship := range g.Fleet {
				if ship.Hits != ship.Length {
					allHit = false
				}
			}
			if allHit != (g.ShipsRemaining == 0) {
				t.Fatalf("seed %d: ships remaining %d disagrees with fleet hits", seed, g.ShipsRemaining)
			}
		}

		if !g.IsWon() {
			t.Fatalf("seed %d: expected a won game after firing at every cell", seed)
		}
		if g.MissilesFired < TotalFleetCells || g.MissilesFired > GridSize*GridSize {
			t.Fatalf("seed %d: unexpected missile count %d", seed, g.MissilesFired)
		}
	}
}

func TestAbandon(t *testing.T) {
	g := newTestGame(t)
	g.Abandon()
	if g.State() != GameStateAbandoned {
		t.Fatalf("expected state: %s\tgot: %s", GameStateAbandoned, g.State())
	}
	if _, err := g.Fire("A1"); !errors.Is(err, cerr.ErrGameNotInProgress) {
		t.Fatalf("expected game not in progress\tgot: %v", err)
	}
}
