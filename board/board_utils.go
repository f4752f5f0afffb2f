package board

import (
	"fmt"
	"strings"
)

// ToDisplayText prints the grid one row per line, each cell followed by a
// space.
func (g *GameBoard) ToDisplayText(colored bool) string {
	var sb strings.Builder
	for row := 0; row < g.dim; row++ {
		for col := 0; col < g.dim; col++ {
			sb.WriteString(g.symbols.DisplayString(g.CellAt(row, col), colored))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SetFromRows sets the board from display rows, one string per row, using
// this board's symbols. Whitespace inside a row is ignored.
func (g *GameBoard) SetFromRows(rows []string) error {
	if len(rows) != g.dim {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrUnexpectedPosition, g.dim, len(rows))
	}
	cells := make([]Cell, 0, len(g.cells))
	filled := 0
	for i, row := range rows {
		n := 0
		for _, r := range row {
			if r == ' ' || r == '\t' {
				continue
			}
			c, ok := g.symbols.cellFor(r)
			if !ok {
				return fmt.Errorf("%w: unknown symbol %q in row %d", ErrUnexpectedPosition, r, i)
			}
			if c != EmptyCell {
				filled++
			}
			cells = append(cells, c)
			n++
		}
		if n != g.dim {
			return fmt.Errorf("%w: row %d has %d cells", ErrUnexpectedPosition, i, n)
		}
	}
	copy(g.cells, cells)
	g.filled = filled
	return nil
}
