package board

import (
	"os"

	"github.com/logrusorgru/aurora"

	"github.com/domino14/inarow/move"
)

var (
	ColorSupport = os.Getenv("INAROW_DISABLE_COLOR") != "on"
)

// A Cell is a single square of the grid: empty, or holding one party's mark.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerCell
	BotCell
)

// CellFor returns the cell value a mark leaves on the board.
func CellFor(m move.Mark) Cell {
	switch m {
	case move.Player:
		return PlayerCell
	case move.Bot:
		return BotCell
	}
	return EmptyCell
}

// Mark returns the owner of a non-empty cell.
func (c Cell) Mark() (move.Mark, bool) {
	switch c {
	case PlayerCell:
		return move.Player, true
	case BotCell:
		return move.Bot, true
	}
	return 0, false
}

// Symbols are the display characters for each cell value. They never take
// part in comparisons or in the search.
type Symbols struct {
	Player rune
	Bot    rune
	Empty  rune
}

var DefaultSymbols = Symbols{Player: 'x', Bot: 'o', Empty: '.'}

func (s Symbols) symbol(c Cell) rune {
	switch c {
	case PlayerCell:
		return s.Player
	case BotCell:
		return s.Bot
	}
	return s.Empty
}

// cellFor is the inverse of symbol; ok is false for an unknown rune.
func (s Symbols) cellFor(r rune) (Cell, bool) {
	switch r {
	case s.Player:
		return PlayerCell, true
	case s.Bot:
		return BotCell, true
	case s.Empty:
		return EmptyCell, true
	}
	return EmptyCell, false
}

func (s Symbols) distinct() bool {
	return s.Player != s.Bot && s.Player != s.Empty && s.Bot != s.Empty
}

// DisplayString renders one cell, optionally colored.
func (s Symbols) DisplayString(c Cell, colored bool) string {
	str := string(s.symbol(c))
	if !colored || !ColorSupport {
		return str
	}
	switch c {
	case PlayerCell:
		return aurora.Cyan(str).Bold().String()
	case BotCell:
		return aurora.Red(str).Bold().String()
	}
	return aurora.Faint(str).String()
}
