package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	"github.com/saeidalz13/battleship-solo/models/leaderboard"
)

const (
	MenuNewGame uint8 = iota + 1
	MenuResumeGame
	MenuTopScores
	MenuHowToPlay
	MenuQuit
)

const (
	quitCommand = "quit"
	screenBreak = "\n=======================================\n"
)

var errEndOfInput = errors.New("end of input")

// Processor drives the menu and turn loops of one player session.
type Processor struct {
	console     Console
	gameManager mb.GameManager
	scores      *leaderboard.Manager
	logger      zerolog.Logger
}

func NewProcessor(c Console, gameManager mb.GameManager, scores *leaderboard.Manager, logger zerolog.Logger) *Processor {
	return &Processor{
		console:     c,
		gameManager: gameManager,
		scores:      scores,
		logger:      logger.With().Str("component", "processor").Logger(),
	}
}

// Run shows the main menu until the player quits, input ends or ctx is
// cancelled. Only a cancelled context is reported as an error.
func (p *Processor) Run(ctx context.Context) error {
	p.console.Print("Welcome to Battleship!\n")

	for {
		if err := ctx.Err(); err != nil {
			p.leave(true)
			return err
		}

		p.console.Print(screenBreak + RenderMenu())
		line, err := p.readLine(ctx, "Enter your choice (1-5): ")
		if errors.Is(err, errEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}

		switch parseMenuChoice(line) {
		case MenuNewGame:
			err = p.newGame(ctx)
		case MenuResumeGame:
			err = p.resumeGame(ctx)
		case MenuTopScores:
			p.showTopScores(ctx)
		case MenuHowToPlay:
			p.console.Print(RenderHelp())
		case MenuQuit:
			p.quit(ctx)
			return nil
		default:
			p.console.Print("Invalid choice. Please try again.\n")
		}

		if errors.Is(err, errEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func parseMenuChoice(line string) uint8 {
	line = strings.TrimSpace(line)
	if len(line) != 1 || line[0] < '0'+MenuNewGame || line[0] > '0'+MenuQuit {
		return 0
	}
	return line[0] - '0'
}

func (p *Processor) newGame(ctx context.Context) error {
	game, err := p.gameManager.CreateGame()
	if err != nil {
		var warning *cerr.PlacementWarning
		if !errors.As(err, &warning) {
			p.logger.Error().Err(err).Msg("failed to create game")
			p.console.Print("Could not start a new game.\n")
			return nil
		}
		p.logger.Warn().Err(warning).Str("game_uuid", game.Uuid).Msg("fleet placement incomplete")
		p.console.Print(fmt.Sprintf("Warning: %s. Game might be unplayable.\n", warning))
	}

	p.logger.Debug().Str("game_uuid", game.Uuid).Msg("new game")
	p.console.Print("New game initialized. The computer has secretly placed its ships.\n")
	return p.playGame(ctx, game)
}

func (p *Processor) resumeGame(ctx context.Context) error {
	game, err := p.gameManager.ResumeGame()
	if err != nil {
		if !errors.Is(err, cerr.ErrNoSave) {
			p.logger.Warn().Err(err).Msg("failed to resume game")
		}
		p.console.Print("No saved game found or error loading.\nStarting a new game instead.\n")
		return p.newGame(ctx)
	}

	p.logger.Debug().Str("game_uuid", game.Uuid).Int("missiles", game.MissilesFired).Msg("game resumed")
	p.console.Print("Game resumed.\n")
	return p.playGame(ctx, game)
}

func (p *Processor) playGame(ctx context.Context, game *mb.Game) error {
	for game.IsInProgress() {
		if err := ctx.Err(); err != nil {
			p.leave(true)
			return err
		}

		p.console.Print(screenBreak + RenderTargetGrid(game) + RenderStatus(game))
		p.console.Print("Enter 'quit' to return to main menu.\n")

		line, err := p.readLine(ctx, "Your command (e.g., A5 or quit): ")
		if err != nil {
			p.leave(true)
			return err
		}
		if strings.EqualFold(strings.TrimSpace(line), quitCommand) {
			p.console.Print("Are you sure you want to quit this game session?\n")
			save, err := p.askYesNo(ctx, "Save current game before returning to menu? (Y/N): ")
			if err != nil {
				p.leave(true)
				return err
			}
			p.leave(save)
			p.console.Print("Returning to Main Menu...\n")
			return nil
		}

		p.takeTurn(game, line)
	}

	if game.IsWon() {
		return p.finishGame(ctx, game)
	}
	return nil
}

func (p *Processor) takeTurn(game *mb.Game, line string) {
	outcome, err := game.Fire(line)
	switch {
	case err == nil:
	case cerr.IsUserInput(err):
		p.console.Print(fmt.Sprintf("Error: %s.\n", err))
		return
	case errors.Is(err, cerr.ErrRedundant):
		p.console.Print(fmt.Sprintf(
			"You've already conclusively fired at %s (%c). Try a different spot.\n",
			outcome.Coordinates, game.TargetGrid.At(outcome.Coordinates),
		))
		return
	default:
		p.logger.Error().Err(err).Str("game_uuid", game.Uuid).Msg("shot rejected")
		p.console.Print(fmt.Sprintf("Error: %s.\n", err))
		return
	}

	if outcome.Result == mb.ShotError {
		p.logger.Error().
			Err(outcome.Err).
			Str("game_uuid", game.Uuid).
			Str("coordinates", outcome.Coordinates.String()).
			Msg(cerr.ConstErrShotFailed)
	}
	p.console.Print("\n" + OutcomeMessage(game, outcome) + "\n")
}

func (p *Processor) finishGame(ctx context.Context, game *mb.Game) error {
	p.console.Print(screenBreak + RenderTargetGrid(game) + RenderStatus(game))
	p.console.Print("\n====================================================\n")
	p.console.Print("    CONGRATULATIONS! You sunk all enemy ships!    \n")
	p.console.Print("====================================================\n")
	p.console.Print(fmt.Sprintf("Total missiles fired: %d\n", game.Score()))
	if game.IsPerfect() {
		p.console.Print("A PERFECT GAME! You used the minimum possible missiles!\n")
	}

	if err := p.gameManager.FinishGame(); err != nil {
		p.logger.Error().Err(err).Str("game_uuid", game.Uuid).Msg("failed to clear save slot")
	}
	p.logger.Info().Str("game_uuid", game.Uuid).Int("score", game.Score()).Msg("game won")

	if err := p.recordScore(ctx, game.Score()); err != nil {
		return err
	}

	reveal, err := p.askYesNo(ctx, "\nWould you like to see the computer's ship placements? (Y/N): ")
	if err != nil {
		return err
	}
	if reveal {
		p.console.Print(RenderOceanGrid(game))
	}
	return nil
}

func (p *Processor) recordScore(ctx context.Context, score int) error {
	qualifies, err := p.scores.Qualifies(ctx, score)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to read top scores")
		p.console.Print("Could not read the top scores. Your score was not recorded.\n")
		return nil
	}
	if !qualifies {
		p.console.Print(fmt.Sprintf(
			"Good game! Your score of %d missiles was not quite enough for the Top 10 this time.\n", score,
		))
		return nil
	}

	p.console.Print("\nCongratulations! You've made the Top 10 high scores!\n")
	for {
		initials, err := p.readLine(ctx,
			fmt.Sprintf("Enter your initials (%d characters, e.g., ACE): ", leaderboard.InitialsLength),
		)
		if err != nil {
			return err
		}

		_, err = p.scores.Submit(ctx, initials, score)
		if cerr.IsUserInput(err) {
			p.console.Print(fmt.Sprintf(
				"Error: Initials must be exactly %d characters. Please try again.\n", leaderboard.InitialsLength,
			))
			continue
		}
		if err != nil {
			p.logger.Error().Err(err).Msg("failed to record score")
			p.console.Print("Error recording your score.\n")
			return nil
		}

		p.console.Print("Your score has been recorded!\n")
		return nil
	}
}

func (p *Processor) showTopScores(ctx context.Context) {
	lb, err := p.scores.TopScores(ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to read top scores")
		p.console.Print("Could not read the top scores.\n")
		return
	}
	p.console.Print(RenderLeaderboard(lb))
}

func (p *Processor) quit(ctx context.Context) {
	if game := p.gameManager.CurrentGame(); game != nil && game.IsInProgress() {
		p.console.Print("A game is currently in progress.\n")
		save, err := p.askYesNo(ctx, "Save current game before quitting? (Y/N): ")
		p.leave(save || err != nil)
	}
	p.console.Print("Exiting game. Goodbye!\n")
}

// leave abandons the current game, saving it first when save is set.
func (p *Processor) leave(save bool) {
	if p.gameManager.CurrentGame() == nil {
		return
	}

	err := p.gameManager.AbandonGame(save)
	switch {
	case !save:
	case err != nil:
		p.logger.Error().Err(err).Msg("failed to save game")
		p.console.Print("Error saving game.\n")
	default:
		p.console.Print("Game saved.\n")
	}
}

// readLine returns ctx.Err() once ctx is done, even when a line arrived,
// so nothing typed after a cancellation is acted on.
func (p *Processor) readLine(ctx context.Context, prompt string) (string, error) {
	line, ok := p.console.ReadLine(prompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !ok {
		return "", errEndOfInput
	}
	return line, nil
}

// askYesNo reads one answer; anything starting with y or Y is a yes.
func (p *Processor) askYesNo(ctx context.Context, prompt string) (bool, error) {
	line, err := p.readLine(ctx, prompt)
	if err != nil {
		return false, err
	}
	line = strings.TrimSpace(line)
	return line != "" && (line[0] == 'y' || line[0] == 'Y'), nil
}
