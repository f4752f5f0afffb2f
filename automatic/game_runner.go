// Package automatic plays whole games between the bot and a scripted
// opponent, for measuring how well a search depth does.
package automatic

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/inarow/board"
	"github.com/domino14/inarow/config"
	"github.com/domino14/inarow/game"
	"github.com/domino14/inarow/minimax"
	"github.com/domino14/inarow/move"
)

const (
	RandomPlayer    = "random"
	FirstFreePlayer = "first"
)

var ErrUnknownOpponent = errors.New("unknown opponent")

// GameRunner plays the bot against an opponent that stands in for the
// human.
type GameRunner struct {
	game     *game.Game
	solver   *minimax.Solver
	config   *config.Config
	depth    int
	opponent string
	logchan  chan string
}

// NewGameRunner makes a runner. Turns are sent to logchan, if it is not nil.
func NewGameRunner(logchan chan string, cfg *config.Config, solver *minimax.Solver,
	depth int, opponent string) (*GameRunner, error) {

	switch opponent {
	case RandomPlayer, FirstFreePlayer:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOpponent, opponent)
	}
	return &GameRunner{
		solver:   solver,
		config:   cfg,
		depth:    depth,
		opponent: opponent,
		logchan:  logchan,
	}, nil
}

// Game returns the game being (or last) played.
func (r *GameRunner) Game() *game.Game {
	return r.game
}

func (r *GameRunner) opponentMove(b *board.GameBoard) move.Action {
	moves := b.LegalMoves(move.Player)
	if r.opponent == RandomPlayer {
		return moves[frand.Intn(len(moves))]
	}
	return moves[0]
}

// PlayTurn plays a single move for whoever is on turn.
func (r *GameRunner) PlayTurn() error {
	var a move.Action
	if r.game.OnTurn() == move.Bot {
		var err error
		a, err = r.solver.BestAction(r.depth, r.game.Board())
		if err != nil {
			return err
		}
	} else {
		a = r.opponentMove(r.game.Board())
	}
	if err := r.game.PlayMove(a); err != nil {
		return err
	}
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v\n",
			a.Mark(), r.game.Uid(), len(r.game.History()), a.ShortDescription())
	}
	return nil
}

// PlayFull starts a new game and plays it to the end.
func (r *GameRunner) PlayFull() error {
	g, err := game.NewGame(r.config)
	if err != nil {
		return err
	}
	r.game = g
	for r.game.Playing() == game.Playing {
		if err := r.PlayTurn(); err != nil {
			return err
		}
	}
	log.Debug().Str("uid", r.game.Uid()).Msg(r.game.OutcomeText())
	return nil
}
