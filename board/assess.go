package board

import "github.com/domino14/inarow/move"

// Assessment counts the completed runs of some length for each party.
type Assessment struct {
	Player int
	Bot    int
}

// Reward is the position's value from the Bot's side: positive favors Bot.
func (a Assessment) Reward() int {
	return a.Bot - a.Player
}

// Swap exchanges the two parties' counts.
func (a Assessment) Swap() Assessment {
	return Assessment{Player: a.Bot, Bot: a.Player}
}

func (a *Assessment) add(m move.Mark) {
	switch m {
	case move.Player:
		a.Player++
	case move.Bot:
		a.Bot++
	}
}

// line directions as (row step, col step). The anti-diagonal starts at the
// top-right corner of its runLen x runLen window and steps down-left.
var directions = [...][2]int{
	{1, 0},  // vertical
	{0, 1},  // horizontal
	{1, 1},  // diagonal
	{1, -1}, // anti-diagonal
}

// runOwner reports which party, if any, holds every cell of the run starting
// at (row, col) and stepping by (dr, dc).
func (g *GameBoard) runOwner(row, col, dr, dc, runLen int) (move.Mark, bool) {
	first := g.cells[row*g.dim+col]
	if first == EmptyCell {
		return 0, false
	}
	for i := 1; i < runLen; i++ {
		if g.cells[(row+i*dr)*g.dim+col+i*dc] != first {
			return 0, false
		}
	}
	return first.Mark()
}

// Assess scans the whole board for runs of exactly runLen cells in all four
// orientations, from every start position where the run fits. A run counts
// for a party only when all its cells carry that party's mark. Longer lines
// count once per window they contain, so a line of runLen+1 counts twice.
func (g *GameBoard) Assess(runLen int) Assessment {
	var result Assessment
	if runLen < 1 || runLen > g.dim {
		return result
	}
	last := g.dim - runLen
	for row := 0; row < g.dim; row++ {
		for col := 0; col < g.dim; col++ {
			rowFits := row <= last
			colFits := col <= last
			for i, d := range directions {
				switch i {
				case 0:
					if !rowFits {
						continue
					}
				case 1:
					if !colFits {
						continue
					}
				default:
					if !rowFits || !colFits {
						continue
					}
				}
				startCol := col
				if d[1] < 0 {
					startCol = col + runLen - 1
				}
				if m, ok := g.runOwner(row, startCol, d[0], d[1], runLen); ok {
					result.add(m)
				}
			}
		}
	}
	return result
}
