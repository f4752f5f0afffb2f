package minimax

import (
	"fmt"
	"math"

	"github.com/domino14/inarow/board"
	"github.com/domino14/inarow/cache"
	"github.com/domino14/inarow/move"
	"github.com/domino14/inarow/zobrist"
)

// function minimax(node, depth, maximizingPlayer) is
//     if depth = 0 or node is a terminal node then
//         return the heuristic value of node
//     if maximizingPlayer then
//         value := −∞
//         for each child of node do
//             value := max(value, minimax(child, depth − 1, FALSE))
//     else
//         value := +∞
//         for each child of node do
//             value := min(value, minimax(child, depth − 1, TRUE))
//     return value
//
// Here a node is (position, action, mark): the action is applied first and
// the resulting position is what gets evaluated. "Terminal" is any position
// with a nonzero reward, not only a won one, so the search stops at the
// first completed run it sees.

// minimax scores a played by m on b. key is the zobrist hash of b.
func (s *Solver) minimax(z *zobrist.Zobrist, depth int, b *board.GameBoard, key uint64,
	a move.Action, m move.Mark) int {

	s.nodes.Add(1)
	child := b.Copy()
	if err := child.ApplyMove(a); err != nil {
		// Every action searched comes from LegalMoves on its own board.
		panic(fmt.Sprintf("minimax: cannot apply %v: %v", a, err))
	}
	childKey := z.AddAction(key, a)

	if s.cache == nil {
		return s.evaluate(z, depth, child, childKey, m)
	}
	// The score only depends on the resulting position, the remaining depth
	// and who moved, so that is what the entry is keyed on.
	hash := z.SearchKey(childKey, depth, m)
	ckey := cache.Key{Depth: depth, Cells: child.Packed(), Mark: m}
	if score, ok := s.cache.Lookup(hash, ckey); ok {
		return score
	}
	score := s.evaluate(z, depth, child, childKey, m)
	s.cache.Store(hash, ckey, score)
	return score
}

// evaluate scores the position child, reached by m's move.
func (s *Solver) evaluate(z *zobrist.Zobrist, depth int, child *board.GameBoard, childKey uint64,
	m move.Mark) int {

	reward := child.Assess(child.WinLen()).Reward()
	next := m.Other()
	if depth == 0 || reward != 0 || !child.HasEmptyCell() {
		return reward
	}
	replies := child.LegalMoves(next)

	best := math.MinInt
	worst := math.MaxInt
	for _, reply := range replies {
		score := s.minimax(z, depth-1, child, childKey, reply, next)
		best = max(best, score)
		worst = min(worst, score)
	}
	if next == move.Bot {
		return best
	}
	return worst
}
