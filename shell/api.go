package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/inarow/automatic"
	"github.com/domino14/inarow/board"
	"github.com/domino14/inarow/game"
	"github.com/domino14/inarow/move"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

// badMoveError is a move the user typed that could not be parsed or played.
type badMoveError struct {
	err error
}

func (e *badMoveError) Error() string { return e.err.Error() }
func (e *badMoveError) Unwrap() error { return e.err }

// fatalError ends the session no matter how lenient the shell is.
type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	if looksLikeMove(cmd) {
		return sc.humanMove(cmd)
	}
	switch cmd.cmd {
	case "new":
		return sc.newGame(cmd)
	case "show":
		return sc.show(cmd)
	case "history":
		return sc.history(cmd)
	case "stats":
		return sc.stats(cmd)
	case "depth":
		return sc.setDepth(cmd)
	case "load":
		return sc.load(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "help":
		return msg(usageText), nil
	case "exit", "quit":
		return nil, errQuit
	default:
		log.Info().Msgf("command %v not found", strconv.Quote(cmd.cmd))
		return nil, fmt.Errorf("unknown command %q; type help for a list", cmd.cmd)
	}
}

// humanMove plays the user's move and, if the game goes on, the bot's
// reply.
func (sc *ShellController) humanMove(cmd *shellcmd) (*Response, error) {
	if len(cmd.options) > 0 {
		return nil, &badMoveError{errMalformedMove}
	}
	row, col, err := parseCoords(append([]string{cmd.cmd}, cmd.args...))
	if err != nil {
		return nil, &badMoveError{err}
	}
	if sc.game.Playing() == game.GameOver {
		return nil, game.ErrGameOver
	}
	if err := sc.game.PlayMove(move.NewAction(row, col, move.Player)); err != nil {
		if errors.Is(err, game.ErrNotYourTurn) {
			return nil, err
		}
		return nil, &badMoveError{err}
	}
	var sb strings.Builder
	sb.WriteString("=== Your move: ===\n")
	sb.WriteString(sc.game.Board().ToDisplayText(sc.colored))
	if sc.game.Playing() == game.GameOver {
		sb.WriteString(sc.game.OutcomeText())
		return msg(sb.String()), nil
	}
	botText, err := sc.botMove()
	sb.WriteString(botText)
	return msg(sb.String()), err
}

// botMove asks the solver for the bot's move and plays it.
func (sc *ShellController) botMove() (string, error) {
	b := sc.game.Board()
	if sc.progress {
		sc.solver.SetProgress(newSearchBar(len(b.LegalMoves(move.Bot))))
		defer sc.solver.SetProgress(nil)
	}
	a, err := sc.solver.BestAction(sc.depth, b)
	if err != nil {
		return "", &fatalError{err}
	}
	if err := sc.game.PlayMove(a); err != nil {
		return "", &fatalError{err}
	}
	var sb strings.Builder
	sb.WriteString("=== Bot's move: ===\n")
	sb.WriteString(sc.game.Board().ToDisplayText(sc.colored))
	if sc.game.Playing() == game.GameOver {
		sb.WriteString(sc.game.OutcomeText())
	}
	return sb.String(), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	g, err := game.NewGame(sc.config)
	if err != nil {
		return nil, err
	}
	sc.game = g
	return msg(sc.banner()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	text := sc.game.Board().ToDisplayText(sc.colored)
	if out := sc.game.OutcomeText(); out != "" {
		text += out
	} else {
		text += fmt.Sprintf("%v to move", sc.game.OnTurn())
	}
	return msg(text), nil
}

func (sc *ShellController) history(cmd *shellcmd) (*Response, error) {
	if len(sc.game.History()) == 0 {
		return msg("no moves yet"), nil
	}
	return msg(sc.game.HistoryText()), nil
}

func (sc *ShellController) stats(cmd *shellcmd) (*Response, error) {
	st := sc.solver.Stats()
	return msg(fmt.Sprintf(
		"depth: %d\nthreads: %d\nnodes: %d\ncache: %d/%d entries, %d lookups, %d hits, %d collisions",
		sc.depth, sc.solver.Threads(), st.Nodes, st.Cache.Len, st.Cache.Capacity,
		st.Cache.Lookups, st.Cache.Hits, st.Cache.Collisions)), nil
}

func (sc *ShellController) setDepth(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(fmt.Sprintf("depth: %d", sc.depth)), nil
	}
	d, err := strconv.Atoi(cmd.args[0])
	if err != nil || d < 0 {
		return nil, fmt.Errorf("depth must be a non-negative integer, got %q", cmd.args[0])
	}
	sc.depth = d
	return msg(fmt.Sprintf("depth set to %d", d)), nil
}

// load sets up a position from one argument per row. With -turn bot the
// bot moves at once.
func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	onturn := move.Player
	switch cmd.options["turn"] {
	case "", "player":
	case "bot":
		onturn = move.Bot
	default:
		return nil, fmt.Errorf("turn must be player or bot, got %q", cmd.options["turn"])
	}
	cur := sc.game.Board()
	sym := cur.Symbols()
	b, err := board.MakeBoard(cur.Dim(), sym.Player, sym.Bot, sym.Empty, cur.WinLen())
	if err != nil {
		return nil, err
	}
	if err := b.SetFromRows(cmd.args); err != nil {
		return nil, err
	}
	sc.game = game.NewGameFromBoard(b, onturn)

	text := sc.banner()
	if out := sc.game.OutcomeText(); out != "" {
		return msg(text + out), nil
	}
	if onturn == move.Bot {
		botText, err := sc.botMove()
		return msg(text + botText), err
	}
	return msg(text), nil
}

// autoplay plays the bot against a scripted opponent with the current
// board settings and reports the tally. The current game is left alone.
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	numGames := 10
	if len(cmd.args) > 0 {
		n, err := strconv.Atoi(cmd.args[0])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("number of games must be a positive integer, got %q", cmd.args[0])
		}
		numGames = n
	}
	depth := sc.depth
	if d, ok := cmd.options["depth"]; ok {
		var err error
		depth, err = strconv.Atoi(d)
		if err != nil || depth < 0 {
			return nil, fmt.Errorf("depth must be a non-negative integer, got %q", d)
		}
	}
	opponent := automatic.RandomPlayer
	if o, ok := cmd.options["opponent"]; ok {
		opponent = o
	}
	tally, err := automatic.PlayGames(context.Background(), sc.config, sc.solver,
		numGames, depth, opponent, nil)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%d games at depth %d vs %s: bot %d, player %d, draws %d",
		tally.Games, depth, opponent, tally.BotWins, tally.PlayerWins, tally.Draws)), nil
}
