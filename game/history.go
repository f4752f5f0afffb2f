package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/inarow/move"
)

// HistoryText lists the moves played, one per line, numbered from 1.
func (g *Game) HistoryText() string {
	lines := lo.Map(g.history, func(a move.Action, idx int) string {
		return fmt.Sprintf("%2d. %-6v %s", idx+1, a.Mark(), a.ShortDescription())
	})
	return strings.Join(lines, "\n")
}

// MovesBy returns the actions mark m has played.
func (g *Game) MovesBy(m move.Mark) []move.Action {
	return lo.Filter(g.history, func(a move.Action, _ int) bool {
		return a.Mark() == m
	})
}
