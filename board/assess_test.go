package board

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/inarow/move"
)

func TestAssessTopRow(t *testing.T) {
	is := is.New(t)
	b := makeBoard(t, 4, 3)
	for col := 0; col < 3; col++ {
		is.NoErr(b.ApplyMove(move.NewAction(0, col, move.Player)))
	}
	a := b.Assess(3)
	is.True(a.Player >= 1)
	is.Equal(a.Bot, 0)
	is.Equal(a.Reward(), -a.Player)
}

func TestAssessOrientations(t *testing.T) {
	cases := []struct {
		name   string
		rows   []string
		runLen int
		exp    Assessment
	}{
		{"empty", []string{"....", "....", "....", "...."}, 3, Assessment{}},
		{"horizontal", []string{"....", ".ooo", "....", "...."}, 3, Assessment{Bot: 1}},
		{"vertical", []string{"...x", "...x", "...x", "...."}, 3, Assessment{Player: 1}},
		{"diagonal", []string{"o...", ".o..", "..o.", "...."}, 3, Assessment{Bot: 1}},
		{"anti-diagonal", []string{"....", "...x", "..x.", ".x.."}, 3, Assessment{Player: 1}},
		{"anti-diagonal corner", []string{"..o.", ".o..", "o...", "...."}, 3, Assessment{Bot: 1}},
		// a full row of four holds two windows of three
		{"overlapping", []string{"xxxx", "....", "....", "...."}, 3, Assessment{Player: 2}},
		{"full diagonal", []string{"o...", ".o..", "..o.", "...o"}, 3, Assessment{Bot: 2}},
		{"mixed run", []string{"xxo.", "....", "....", "...."}, 3, Assessment{}},
		{"both", []string{"xxx.", "....", "ooo.", "...."}, 3, Assessment{Player: 1, Bot: 1}},
		{"length four", []string{"xxxx", "....", "....", "...."}, 4, Assessment{Player: 1}},
		{"length two", []string{"xx..", "....", "....", "...."}, 2, Assessment{Player: 1}},
		{"too long", []string{"xxxx", "....", "....", "...."}, 5, Assessment{}},
	}
	for _, tc := range cases {
		b := fromRows(t, 3, tc.rows)
		assert.Equal(t, tc.exp, b.Assess(tc.runLen), tc.name)
	}
}

func TestAssessSymmetry(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 100; i++ {
		b := randomBoard(t, 5, 3)
		for runLen := 1; runLen <= 5; runLen++ {
			is.Equal(swapped(b).Assess(runLen), b.Assess(runLen).Swap())
		}
	}
}

func TestAssessSingleCell(t *testing.T) {
	is := is.New(t)
	b := makeBoard(t, 3, 1)
	is.NoErr(b.ApplyMove(move.NewAction(0, 0, move.Bot)))
	// every orientation sees the lone mark
	is.Equal(b.Assess(1), Assessment{Bot: 4})
}

func BenchmarkAssess(b *testing.B) {
	board, _ := MakeBoard(8, 'x', 'o', '.', 5)
	for i := 0; i < 8; i += 2 {
		board.ApplyMove(move.NewAction(i, i, move.Player))
		board.ApplyMove(move.NewAction(i, 7-i, move.Bot))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Assess(5)
	}
}
