package shell

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/inarow/config"
	"github.com/domino14/inarow/game"
	"github.com/domino14/inarow/minimax"
)

//go:embed helptext/usage.txt
var usageText string

var errQuit = errors.New("quit")

// ShellController drives a game between the user and the bot: it reads a
// line, plays the user's move, asks the solver for the bot's answer, and
// prints the board after each.
type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	game      *game.Game
	solver    *minimax.Solver
	depth     int
	colored   bool
	progress  bool
	lenient   bool
	searchLog *os.File
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewShellController creates a controller reading from the terminal.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31minarow>\033[0m ",
		HistoryFile:     "/tmp/inarow-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc, err := newController(cfg, l.Stdout())
	if err != nil {
		l.Close()
		return nil, err
	}
	sc.l = l
	return sc, nil
}

// newController sets up everything but the terminal; output goes to out.
func newController(cfg *config.Config, out io.Writer) (*ShellController, error) {
	sc := &ShellController{
		out:      out,
		config:   cfg,
		depth:    cfg.GetInt(config.ConfigSearchDepth),
		colored:  cfg.GetBool(config.ConfigColor),
		progress: cfg.GetBool(config.ConfigProgress),
		lenient:  cfg.GetBool(config.ConfigLenient),
	}
	sc.solver = minimax.NewSolver(cfg.GetInt(config.ConfigCacheCapacity))
	sc.solver.SetThreads(cfg.GetInt(config.ConfigSearchThreads))

	if path := cfg.GetString(config.ConfigSearchLog); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening search log: %w", err)
		}
		sc.searchLog = f
		sc.solver.SetLogStream(f)
		log.Info().Str("path", path).Msg("logging searches")
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		sc.Cleanup()
		return nil, err
	}
	sc.game = g
	return sc, nil
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	if !strings.HasSuffix(msg, "\n") {
		io.WriteString(sc.out, "\n")
	}
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) banner() string {
	b := sc.game.Board()
	return fmt.Sprintf("=== %d in a row (%dx%d) ===\n%s", b.WinLen(), b.Dim(), b.Dim(),
		b.ToDisplayText(sc.colored))
}

// Loop reads and executes lines until the user quits or input ends. It
// returns an error when a malformed or illegal move ends the session (the
// default unless lenient is set) or when the bot cannot move.
func (sc *ShellController) Loop() error {
	defer sc.l.Close()
	sc.showMessage(sc.banner())

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}
		err = sc.Execute(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Execute runs a single line. Errors the user can recover from are printed
// and swallowed; the ones returned end the session.
func (sc *ShellController) Execute(line string) error {
	line = strings.TrimSpace(line)
	cmd, err := extractFields(line)
	if err == errNoData {
		return nil
	}
	if err != nil {
		sc.showError(err)
		return nil
	}
	resp, err := sc.dispatch(cmd)
	if resp != nil {
		sc.showMessage(resp.message)
	}
	if err == nil || errors.Is(err, errQuit) {
		return err
	}
	var fatal *fatalError
	if errors.As(err, &fatal) {
		log.Error().Err(err).Msg("bot-failed")
		return err
	}
	var bad *badMoveError
	if errors.As(err, &bad) && !sc.lenient {
		// a bad move ends the session
		sc.showError(err)
		return err
	}
	sc.showError(err)
	return nil
}

// Cleanup closes the search log, if any.
func (sc *ShellController) Cleanup() {
	if sc.searchLog != nil {
		if err := sc.searchLog.Close(); err != nil {
			log.Err(err).Msg("closing search log")
		}
		sc.searchLog = nil
	}
}
