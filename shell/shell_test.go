package shell

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/inarow/board"
	"github.com/domino14/inarow/config"
	"github.com/domino14/inarow/game"
	"github.com/domino14/inarow/move"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"1 2",
			&shellcmd{"1", []string{"2"}, map[string]string{}},
			nil},
		{"3 -1",
			&shellcmd{"3", []string{"-1"}, map[string]string{}},
			nil},
		{"load xo.. .... .... .... -turn bot",
			&shellcmd{"load",
				[]string{"xo..", "....", "....", "...."},
				map[string]string{"turn": "bot"}},
			nil,
		},
		{"depth 3 ",
			&shellcmd{"depth", []string{"3"}, map[string]string{}},
			nil},
		{"load xo.. -turn",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func TestParseCoords(t *testing.T) {
	is := is.New(t)

	row, col, err := parseCoords([]string{"2", "3"})
	is.NoErr(err)
	is.Equal(row, 2)
	is.Equal(col, 3)

	for _, fields := range [][]string{
		{"2"},
		{"2", "3", "4"},
		{"a", "1"},
		{"1", "b"},
		{"-1", "0"},
		{"0", "-2"},
	} {
		_, _, err := parseCoords(fields)
		is.True(errors.Is(err, errMalformedMove))
	}
}

func testController(t *testing.T, settings map[string]any) (*ShellController, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigSearchDepth, 1)
	for k, v := range settings {
		cfg.Set(k, v)
	}
	out := &bytes.Buffer{}
	sc, err := newController(&cfg, out)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sc.Cleanup)
	return sc, out
}

func TestHumanAndBotMove(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t, nil)

	is.NoErr(sc.Execute("1 1"))
	text := out.String()
	is.True(strings.Contains(text, "=== Your move: ==="))
	is.True(strings.Contains(text, "=== Bot's move: ==="))
	is.True(strings.Index(text, "Your move") < strings.Index(text, "Bot's move"))

	h := sc.game.History()
	is.Equal(len(h), 2)
	is.Equal(h[0], move.NewAction(1, 1, move.Player))
	is.Equal(h[1].Mark(), move.Bot)
	is.Equal(sc.game.OnTurn(), move.Player)
}

func TestBadMoveIsFatal(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, nil)

	err := sc.Execute("9 9")
	is.True(errors.Is(err, board.ErrOutOfBounds))

	err = sc.Execute("1 x")
	is.True(errors.Is(err, errMalformedMove))

	is.NoErr(sc.Execute("0 0"))
	err = sc.Execute("0 0")
	is.True(errors.Is(err, board.ErrCellOccupied))
	is.Equal(len(sc.game.History()), 2)
}

func TestLenientKeepsGoing(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t, map[string]any{config.ConfigLenient: true})

	is.NoErr(sc.Execute("9 9"))
	is.NoErr(sc.Execute("0"))
	is.True(strings.Contains(out.String(), "Error: "))
	is.Equal(len(sc.game.History()), 0)

	is.NoErr(sc.Execute("0 0"))
	is.Equal(len(sc.game.History()), 2)
}

func TestUnknownCommandNotFatal(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t, nil)
	is.NoErr(sc.Execute("frobnicate"))
	is.True(strings.Contains(out.String(), "unknown command"))
	is.NoErr(sc.Execute("   "))
}

func TestExit(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, nil)
	is.True(errors.Is(sc.Execute("exit"), errQuit))
}

func TestLoadBotToMove(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t, nil)

	is.NoErr(sc.Execute("load " + strings.Join(board.BotTwoInARow, " ") + " -turn bot"))
	is.Equal(sc.game.Playing(), game.GameOver)
	is.Equal(sc.game.History(), []move.Action{move.NewAction(1, 2, move.Bot)})
	is.True(strings.Contains(out.String(), "Game over! Winner: Bot"))

	// no moves once the game is over, but the shell stays up
	out.Reset()
	is.NoErr(sc.Execute("3 3"))
	is.True(strings.Contains(out.String(), game.ErrGameOver.Error()))
	is.Equal(len(sc.game.History()), 1)
}

func TestLoadBadPosition(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, nil)
	is.NoErr(sc.Execute("load xo.. ...."))
	is.Equal(len(sc.game.History()), 0)
	is.Equal(sc.game.Board().FilledCount(), 0)
}

func TestHumanWinEndsGame(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t, nil)
	is.NoErr(sc.Execute("load xx.. oo.. .... ...."))
	is.NoErr(sc.Execute("0 2"))
	is.True(strings.Contains(out.String(), "Game over! Winner: Player"))
	is.True(!strings.Contains(out.String(), "Bot's move"))
}

func TestDepthAndStats(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t, nil)

	is.NoErr(sc.Execute("depth 3"))
	is.Equal(sc.depth, 3)
	is.NoErr(sc.Execute("depth -2"))
	is.Equal(sc.depth, 3)

	is.NoErr(sc.Execute("depth 1"))
	is.NoErr(sc.Execute("2 2"))
	out.Reset()
	is.NoErr(sc.Execute("stats"))
	is.True(strings.Contains(out.String(), "depth: 1"))
	is.True(sc.solver.Stats().Nodes > 0)
}

func TestNewGameAndHistory(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t, nil)
	is.NoErr(sc.Execute("history"))
	is.True(strings.Contains(out.String(), "no moves yet"))

	is.NoErr(sc.Execute("0 0"))
	uid := sc.game.Uid()
	out.Reset()
	is.NoErr(sc.Execute("history"))
	is.True(strings.Contains(out.String(), "Player"))

	is.NoErr(sc.Execute("new"))
	is.True(sc.game.Uid() != uid)
	is.Equal(len(sc.game.History()), 0)
}

func TestSearchLogFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "search.yaml")
	sc, _ := testController(t, map[string]any{config.ConfigSearchLog: path})

	is.NoErr(sc.Execute("0 0"))
	sc.Cleanup()
	bts, err := os.ReadFile(path)
	is.NoErr(err)
	is.True(strings.Contains(string(bts), "chosen:"))
}

func TestAutoplay(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t, map[string]any{config.ConfigBoardSize: 3})
	is.NoErr(sc.Execute("autoplay 1 -opponent first -depth 4"))
	is.True(strings.Contains(out.String(), "1 games at depth 4 vs first: bot 1, player 0, draws 0"))
	is.Equal(len(sc.game.History()), 0)

	out.Reset()
	is.NoErr(sc.Execute("autoplay 1 -opponent nobody"))
	is.True(strings.Contains(out.String(), "unknown opponent"))
}
