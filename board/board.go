// Package board is the board model for an n-in-a-row game: a square grid of
// cells, move application, legal move enumeration and position assessment.
package board

import (
	"errors"
	"fmt"

	"github.com/domino14/inarow/move"
)

var (
	ErrOutOfBounds        = errors.New("coordinates are out of bounds")
	ErrCellOccupied       = errors.New("this cell is already occupied")
	ErrInvalidDimensions  = errors.New("invalid board dimensions")
	ErrInvalidSymbols     = errors.New("display symbols must be distinct")
	ErrInvalidMark        = errors.New("invalid mark")
	ErrUnexpectedPosition = errors.New("position does not match the board")
)

// A GameBoard is the main board structure. The grid is stored row-major in a
// single slice of dim*dim cells. dim and winLen never change after MakeBoard.
type GameBoard struct {
	cells   []Cell
	dim     int
	winLen  int
	filled  int
	symbols Symbols
}

// MakeBoard creates an empty size x size board. winLen is the run length
// that wins the game; it has to fit on the board.
func MakeBoard(size int, playerSym, botSym, emptySym rune, winLen int) (*GameBoard, error) {
	if size < 1 || winLen < 1 || winLen > size {
		return nil, fmt.Errorf("%w: size %d, winning length %d", ErrInvalidDimensions, size, winLen)
	}
	symbols := Symbols{Player: playerSym, Bot: botSym, Empty: emptySym}
	if !symbols.distinct() {
		return nil, ErrInvalidSymbols
	}
	return &GameBoard{
		cells:   make([]Cell, size*size),
		dim:     size,
		winLen:  winLen,
		symbols: symbols,
	}, nil
}

func (g *GameBoard) Dim() int {
	return g.dim
}

func (g *GameBoard) WinLen() int {
	return g.winLen
}

func (g *GameBoard) Symbols() Symbols {
	return g.symbols
}

// FilledCount is the number of occupied cells.
func (g *GameBoard) FilledCount() int {
	return g.filled
}

func (g *GameBoard) inBounds(row, col int) bool {
	return row >= 0 && row < g.dim && col >= 0 && col < g.dim
}

// CellAt returns the cell at (row, col). It panics outside the board, like
// any slice access would.
func (g *GameBoard) CellAt(row, col int) Cell {
	return g.cells[row*g.dim+col]
}

// Cells returns a copy of the grid in row-major order.
func (g *GameBoard) Cells() []Cell {
	c := make([]Cell, len(g.cells))
	copy(c, g.cells)
	return c
}

// Packed returns the grid as a string of one byte per cell, row-major. Two
// boards of the same dimension are Equal iff their packed forms are equal.
func (g *GameBoard) Packed() string {
	b := make([]byte, len(g.cells))
	for i, c := range g.cells {
		b[i] = byte(c)
	}
	return string(b)
}

// ApplyMove places the action's mark. Exactly one cell changes on success;
// nothing changes on failure.
func (g *GameBoard) ApplyMove(a move.Action) error {
	if !g.inBounds(a.Row(), a.Col()) {
		return ErrOutOfBounds
	}
	if !a.Mark().Valid() {
		return ErrInvalidMark
	}
	idx := a.Row()*g.dim + a.Col()
	if g.cells[idx] != EmptyCell {
		return ErrCellOccupied
	}
	g.cells[idx] = CellFor(a.Mark())
	g.filled++
	return nil
}

// LegalMoves returns every empty cell as an action for m, row by row.
func (g *GameBoard) LegalMoves(m move.Mark) []move.Action {
	actions := make([]move.Action, 0, len(g.cells)-g.filled)
	for row := 0; row < g.dim; row++ {
		for col := 0; col < g.dim; col++ {
			if g.cells[row*g.dim+col] == EmptyCell {
				actions = append(actions, move.NewAction(row, col, m))
			}
		}
	}
	return actions
}

// HasEmptyCell is a cheaper len(LegalMoves(m)) > 0.
func (g *GameBoard) HasEmptyCell() bool {
	return g.filled < len(g.cells)
}

// IsTerminal is true once either party has a run of the winning length, or
// when the board is full.
func (g *GameBoard) IsTerminal() bool {
	a := g.Assess(g.winLen)
	if a.Player != 0 || a.Bot != 0 {
		return true
	}
	return !g.HasEmptyCell()
}

// Winner returns the party with strictly more winning-length runs. ok is
// false for a draw and for a game still in progress.
func (g *GameBoard) Winner() (winner move.Mark, ok bool) {
	a := g.Assess(g.winLen)
	switch {
	case a.Player > a.Bot:
		return move.Player, true
	case a.Bot > a.Player:
		return move.Bot, true
	}
	return 0, false
}

// Copy returns a deep copy of the board.
func (g *GameBoard) Copy() *GameBoard {
	newg := &GameBoard{
		cells:   make([]Cell, len(g.cells)),
		dim:     g.dim,
		winLen:  g.winLen,
		filled:  g.filled,
		symbols: g.symbols,
	}
	copy(newg.cells, g.cells)
	return newg
}

// CopyFrom copies the cells of other into g. Both boards must have the same
// dimension.
func (g *GameBoard) CopyFrom(other *GameBoard) {
	if g.dim != other.dim {
		panic("cannot copy boards of different dimensions")
	}
	copy(g.cells, other.cells)
	g.filled = other.filled
}

// Equals compares the grids. Display symbols are not part of a position.
func (g *GameBoard) Equals(other *GameBoard) bool {
	if g.dim != other.dim {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clear empties every cell.
func (g *GameBoard) Clear() {
	clear(g.cells)
	g.filled = 0
}
