package console

import (
	"fmt"
	"strings"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	"github.com/saeidalz13/battleship-solo/models/leaderboard"
)

const (
	separator     = "---------------------------------------\n"
	wideSeparator = "-----------------------------------------------------------------\n"
)

// RenderGrid draws grid with column letters and 1-based row numbers. When
// highlight is non-nil that cell is drawn as [x].
func RenderGrid(title string, grid *mb.Grid, highlight *mb.Coordinates) string {
	var sb strings.Builder

	border := "  +" + strings.Repeat("---+", mb.GridSize) + "\n"

	fmt.Fprintf(&sb, "\n%s:\n", title)
	sb.WriteString("  |")
	for c := 0; c < mb.GridSize; c++ {
		fmt.Fprintf(&sb, " %s |", mb.ColumnLetter(c))
	}
	sb.WriteString("\n")
	sb.WriteString(border)

	for r := 0; r < mb.GridSize; r++ {
		fmt.Fprintf(&sb, "%2d|", r+1)
		for c := 0; c < mb.GridSize; c++ {
			cell := grid[r][c]
			if highlight != nil && highlight.Row == r && highlight.Col == c {
				fmt.Fprintf(&sb, "[%c]|", cell)
			} else {
				fmt.Fprintf(&sb, " %c |", cell)
			}
		}
		sb.WriteString("\n")
		sb.WriteString(border)
	}
	sb.WriteString(separator)
	return sb.String()
}

func RenderTargetGrid(g *mb.Game) string {
	var highlight *mb.Coordinates
	if g.IsInProgress() && g.LastShotValid {
		last := g.LastShot
		highlight = &last
	}
	return RenderGrid("YOUR TARGET GRID", &g.TargetGrid, highlight)
}

func RenderOceanGrid(g *mb.Game) string {
	return RenderGrid("COMPUTER'S SECRET OCEAN GRID (Revealed)", &g.OceanGrid, nil)
}

func shipStatus(ship *mb.Ship) string {
	switch {
	case ship.Sunk:
		return "SUNK"
	case ship.Hits > 0:
		return fmt.Sprintf("HIT (%d/%d)", ship.Hits, ship.Length)
	default:
		return "Undamaged"
	}
}

func RenderStatus(g *mb.Game) string {
	var sb strings.Builder

	sb.WriteString("\nGAME STATUS:\n")
	sb.WriteString(separator)
	fmt.Fprintf(&sb, "Missiles Fired: %d\n", g.MissilesFired)
	sb.WriteString("Enemy Fleet Status:\n")
	for i := range g.Fleet {
		ship := &g.Fleet[i]
		fmt.Fprintf(&sb, "  (%c) %-20s : %s\n", ship.Letter, ship.Name, shipStatus(ship))
	}
	sb.WriteString(separator)
	return sb.String()
}

// OutcomeMessage is the line shown after a resolved shot.
func OutcomeMessage(g *mb.Game, outcome mb.ShotOutcome) string {
	switch outcome.Result {
	case mb.ShotMiss:
		return "***** M I S S *****"
	case mb.ShotHit:
		return "***** H I T ! *****"
	case mb.ShotSunk:
		ship, ok := g.ShipByLetter(outcome.ShipLetter)
		if !ok {
			return "***** YOU SUNK A SHIP! *****"
		}
		return fmt.Sprintf("***** YOU SUNK THE %s! (%c) *****", strings.ToUpper(ship.Name), ship.Letter)
	case mb.ShotAlreadyProcessed:
		return fmt.Sprintf("You already hit that spot. It's part of a ship (%c).", g.TargetGrid.At(outcome.Coordinates))
	default:
		return "Error processing shot. Please report this."
	}
}

func RenderLeaderboard(lb leaderboard.Leaderboard) string {
	var sb strings.Builder

	sb.WriteString("--- TOP 10 SCORES ---\n")
	if len(lb) == 0 {
		sb.WriteString("No scores recorded yet. Be the first!\n")
	} else {
		sb.WriteString("Rank | Name | Score (Missiles) | Date Achieved\n")
		sb.WriteString("-----|------|------------------|--------------------\n")
		for i, e := range lb {
			fmt.Fprintf(&sb, "%-4d | %-4s | %-16d | %s\n", i+1, e.Initials, e.Score, e.AchievedAt)
		}
	}
	sb.WriteString("------------------------------------------------------\n")
	return sb.String()
}

func RenderMenu() string {
	var sb strings.Builder

	sb.WriteString("=======================================\n")
	sb.WriteString("    B A T T L E S H I P    \n")
	sb.WriteString("=======================================\n\n")
	sb.WriteString("MAIN MENU\n")
	sb.WriteString(separator)
	sb.WriteString("1. Start New Game\n")
	sb.WriteString("2. Resume Game\n")
	sb.WriteString("3. View Top 10 Scores\n")
	sb.WriteString("4. How to Play\n")
	sb.WriteString("5. Quit Game\n")
	sb.WriteString(separator)
	return sb.String()
}

func RenderHelp() string {
	var sb strings.Builder

	sb.WriteString(wideSeparator)
	sb.WriteString("                       HOW TO PLAY BATTLESHIP                    \n")
	sb.WriteString(wideSeparator)
	sb.WriteString("OBJECTIVE:\n")
	fmt.Fprintf(&sb, "  Sink all %d of the computer's hidden ships.\n\n", mb.FleetSize)
	sb.WriteString("THE FLEET (Name, Letter on Grid when Sunk, Size):\n")
	for _, class := range mb.ShipClasses {
		fmt.Fprintf(&sb, "  - %-20s (%c) - %d holes\n", class.Name, class.Letter, class.Length)
	}
	sb.WriteString("\nGAMEPLAY:\n")
	sb.WriteString("  1. On your turn, call out a shot by entering coordinates (e.g., A5, J10).\n")
	sb.WriteString("  2. The grid will update with the result of your shot:\n")
	fmt.Fprintf(&sb, "     '%c' : Unknown water\n", mb.CellEmpty)
	fmt.Fprintf(&sb, "     '%c' : Miss\n", mb.CellMiss)
	fmt.Fprintf(&sb, "     '%c' : Hit on a ship (that is not yet sunk)\n", mb.CellHit)
	sb.WriteString("     'S,A,V,E,D': Indicates a segment of that specific sunk ship.\n")
	sb.WriteString("  3. A ship is sunk when all its segments have been hit.\n")
	fmt.Fprintf(&sb, "  4. The game ends when all %d ships are sunk.\n\n", mb.FleetSize)
	sb.WriteString("SCORING:\n")
	fmt.Fprintf(&sb, "  Try to use the fewest missiles possible. A perfect game uses %d missiles.\n", mb.TotalFleetCells)
	sb.WriteString("  Your score (missiles fired) might make the Top 10 list!\n\n")
	sb.WriteString("SAVING/LOADING:\n")
	sb.WriteString("  Enter 'quit' during a game to save your progress and resume it later.\n")
	sb.WriteString(wideSeparator)
	return sb.String()
}
