// Package minimax picks moves for the Bot with a depth-limited minimax
// search over n-in-a-row positions. Scores of searched sub-problems are
// memoized in an LRU cache owned by the Solver.
package minimax

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/inarow/board"
	"github.com/domino14/inarow/cache"
	"github.com/domino14/inarow/move"
	"github.com/domino14/inarow/zobrist"
)

var (
	ErrNoLegalMoves = errors.New("no legal move left")
)

// ProgressReporter is advanced once per root candidate. A
// *progressbar.ProgressBar satisfies it.
type ProgressReporter interface {
	Add(int) error
	Finish() error
}

// Stats are cumulative over the solver's lifetime.
type Stats struct {
	Nodes uint64
	Cache cache.Stats
}

type Solver struct {
	zobrist *zobrist.Zobrist
	zmu     sync.Mutex
	cache   *cache.ScoreCache

	threads   int
	nodes     atomic.Uint64
	logStream io.Writer
	progress  ProgressReporter
}

// NewSolver creates a solver whose cache holds cacheCapacity scores. The
// cache lives as long as the solver and is shared by all its searches.
func NewSolver(cacheCapacity int) *Solver {
	return &Solver{
		cache:   cache.New(cacheCapacity),
		threads: 1,
	}
}

// SetThreads sets how many root candidates are scored at once.
func (s *Solver) SetThreads(threads int) {
	if threads < 1 {
		threads = 1
	}
	s.threads = threads
}

func (s *Solver) Threads() int {
	return s.threads
}

// SetLogStream sets a writer that receives one YAML document per
// BestAction call.
func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

func (s *Solver) SetProgress(p ProgressReporter) {
	s.progress = p
}

// DisableCache turns off memoization. Results do not change.
func (s *Solver) DisableCache() {
	s.cache = nil
}

// ClearCache empties the cache and resets the node counter.
func (s *Solver) ClearCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
	s.nodes.Store(0)
}

func (s *Solver) Stats() Stats {
	st := Stats{Nodes: s.nodes.Load()}
	if s.cache != nil {
		st.Cache = s.cache.Stats()
	}
	return st
}

// prepare makes sure the zobrist tables fit boards of dimension dim. A
// solver searches boards of one dimension at a time; switching dimensions
// drops everything cached.
func (s *Solver) prepare(dim int) *zobrist.Zobrist {
	s.zmu.Lock()
	defer s.zmu.Unlock()
	if s.zobrist == nil || s.zobrist.BoardDim() != dim {
		if s.zobrist != nil && s.cache != nil {
			s.cache.Purge()
		}
		log.Debug().Int("dim", dim).Msg("creating zobrist hash")
		s.zobrist = &zobrist.Zobrist{}
		s.zobrist.Initialize(dim)
	}
	return s.zobrist
}

// BestAction scores every legal Bot move on b and returns the one with the
// highest score; on ties the first in row-major order wins. b is not
// modified. Calling it on a board without empty cells is a caller error
// and returns ErrNoLegalMoves.
func (s *Solver) BestAction(depth int, b *board.GameBoard) (move.Action, error) {
	candidates := b.LegalMoves(move.Bot)
	if len(candidates) == 0 {
		return move.Action{}, ErrNoLegalMoves
	}
	z := s.prepare(b.Dim())
	rootKey := z.Hash(b)
	startNodes := s.nodes.Load()
	ts := time.Now()

	scores := make([]int, len(candidates))
	score := func(i int) {
		scores[i] = s.minimax(z, depth, b, rootKey, candidates[i], move.Bot)
		if s.progress != nil {
			s.progress.Add(1)
		}
	}
	if s.threads > 1 {
		g := errgroup.Group{}
		g.SetLimit(s.threads)
		for i := range candidates {
			i := i
			g.Go(func() error {
				score(i)
				return nil
			})
		}
		// nothing in the group returns an error
		_ = g.Wait()
	} else {
		for i := range candidates {
			score(i)
		}
	}
	if s.progress != nil {
		s.progress.Finish()
	}

	bestIdx := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[bestIdx] {
			bestIdx = i
		}
	}
	best := candidates[bestIdx]
	nodes := s.nodes.Load() - startNodes

	log.Debug().
		Int("depth", depth).
		Int("candidates", len(candidates)).
		Str("best", best.ShortDescription()).
		Int("score", scores[bestIdx]).
		Uint64("nodes", nodes).
		Dur("elapsed", time.Since(ts)).
		Msg("best-action")

	if s.logStream != nil {
		if err := s.writeSearchLog(depth, b, candidates, scores, bestIdx, nodes); err != nil {
			log.Err(err).Msg("writing search log")
		}
	}
	return best, nil
}

// Minimax returns the score of m playing a on b, looking depth more plies
// ahead. Positive scores favor the Bot. b is not modified; a must be legal
// on b.
func (s *Solver) Minimax(depth int, b *board.GameBoard, a move.Action, m move.Mark) int {
	z := s.prepare(b.Dim())
	return s.minimax(z, depth, b, z.Hash(b), a, m)
}
