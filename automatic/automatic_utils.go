package automatic

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/domino14/inarow/config"
	"github.com/domino14/inarow/minimax"
	"github.com/domino14/inarow/move"
)

// Tally counts the outcomes of a batch of games.
type Tally struct {
	Games      int
	BotWins    int
	PlayerWins int
	Draws      int
}

func (t *Tally) add(winner move.Mark, ok bool) {
	t.Games++
	switch {
	case !ok:
		t.Draws++
	case winner == move.Bot:
		t.BotWins++
	default:
		t.PlayerWins++
	}
}

// PlayGames plays numGames games, one after the other, stopping early if
// ctx is done. Every turn is written to w as a CSV line when w is not nil.
func PlayGames(ctx context.Context, cfg *config.Config, solver *minimax.Solver,
	numGames, depth int, opponent string, w io.Writer) (Tally, error) {

	var tally Tally
	r, err := NewGameRunner(nil, cfg, solver, depth, opponent)
	if err != nil {
		return tally, err
	}

	if w != nil {
		logChan := make(chan string, 100)
		done := make(chan struct{})
		go func() {
			defer close(done)
			io.WriteString(w, "mark,gameID,turn,move\n")
			for msg := range logChan {
				io.WriteString(w, msg)
			}
		}()
		defer func() {
			close(logChan)
			<-done
		}()
		r.logchan = logChan
	}
	log.Debug().Int("games", numGames).Int("depth", depth).Str("opponent", opponent).
		Msg("starting-games")

gameLoop:
	for i := 0; i < numGames; i++ {
		select {
		case <-ctx.Done():
			log.Info().Int("played", tally.Games).Msg("got stop signal")
			break gameLoop
		default:
		}
		if err := r.PlayFull(); err != nil {
			return tally, err
		}
		tally.add(r.Game().Winner())
	}
	log.Info().Interface("tally", tally).Msg("games-finished")
	return tally, ctx.Err()
}
