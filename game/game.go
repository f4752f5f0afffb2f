// Package game encapsulates a single n-in-a-row game: the board, whose turn
// it is, and the moves played so far. A Game doesn't care how it is played;
// the shell and the bot drive it from outside.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/domino14/inarow/board"
	"github.com/domino14/inarow/config"
	"github.com/domino14/inarow/move"
)

var (
	ErrGameOver    = errors.New("cannot play a move on a game that is over")
	ErrNotYourTurn = errors.New("it is not this party's turn")
)

type PlayState uint8

const (
	Playing PlayState = iota
	GameOver
)

type Game struct {
	board   *board.GameBoard
	uid     string
	onturn  move.Mark
	playing PlayState
	history []move.Action
}

// NewGame creates a game from the board settings in cfg. The Player moves
// first.
func NewGame(cfg *config.Config) (*Game, error) {
	b, err := board.MakeBoard(
		cfg.GetInt(config.ConfigBoardSize),
		cfg.Symbol(config.ConfigPlayerSymbol),
		cfg.Symbol(config.ConfigBotSymbol),
		cfg.Symbol(config.ConfigEmptySymbol),
		cfg.GetInt(config.ConfigWinLength))
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(b, move.Player), nil
}

// NewGameFromBoard starts a game on an existing position with onturn to
// move. The game takes ownership of b.
func NewGameFromBoard(b *board.GameBoard, onturn move.Mark) *Game {
	g := &Game{
		board:  b,
		uid:    uuid.NewString(),
		onturn: onturn,
	}
	if b.IsTerminal() {
		g.playing = GameOver
	}
	log.Info().Str("uid", g.uid).Int("size", b.Dim()).Int("win-length", b.WinLen()).
		Msg("game-created")
	return g
}

func (g *Game) Uid() string {
	return g.uid
}

// Board is the authoritative board. Callers must not modify it directly;
// use PlayMove, or Copy it first.
func (g *Game) Board() *board.GameBoard {
	return g.board
}

func (g *Game) OnTurn() move.Mark {
	return g.onturn
}

func (g *Game) Playing() PlayState {
	return g.playing
}

// History returns the actions played in this game, oldest first.
func (g *Game) History() []move.Action {
	h := make([]move.Action, len(g.history))
	copy(h, g.history)
	return h
}

// PlayMove validates and plays a. Board errors (out of bounds, occupied)
// are returned wrapped and leave the game untouched.
func (g *Game) PlayMove(a move.Action) error {
	if g.playing == GameOver {
		return ErrGameOver
	}
	if a.Mark() != g.onturn {
		return fmt.Errorf("%w: %v to move", ErrNotYourTurn, g.onturn)
	}
	if err := g.board.ApplyMove(a); err != nil {
		return fmt.Errorf("playing %v: %w", a.ShortDescription(), err)
	}
	g.history = append(g.history, a)
	g.onturn = g.onturn.Other()
	log.Debug().Str("uid", g.uid).Str("mark", a.Mark().String()).
		Int("row", a.Row()).Int("col", a.Col()).Msg("played-move")

	if g.board.IsTerminal() {
		g.playing = GameOver
		winner, ok := g.board.Winner()
		ev := log.Info().Str("uid", g.uid).Int("turns", len(g.history))
		if ok {
			ev = ev.Str("winner", winner.String())
		}
		ev.Msg("game-over")
	}
	return nil
}

// Winner returns the winning party once the game is over. ok is false while
// the game is going on, and for a draw.
func (g *Game) Winner() (winner move.Mark, ok bool) {
	if g.playing != GameOver {
		return 0, false
	}
	return g.board.Winner()
}

// OutcomeText is the end-of-game message, or "" while the game goes on.
func (g *Game) OutcomeText() string {
	if g.playing != GameOver {
		return ""
	}
	if winner, ok := g.board.Winner(); ok {
		return fmt.Sprintf("Game over! Winner: %v", winner)
	}
	return "Game over! Draw."
}
