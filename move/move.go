package move

import "fmt"

// Mark identifies one of the two parties in a game. The zero value is not a
// valid mark and is never placed on a board.
type Mark uint8

const (
	Player Mark = iota + 1
	Bot
)

// Other returns the opposing party.
func (m Mark) Other() Mark {
	switch m {
	case Player:
		return Bot
	case Bot:
		return Player
	}
	return m
}

func (m Mark) String() string {
	switch m {
	case Player:
		return "Player"
	case Bot:
		return "Bot"
	}
	return "UNHANDLED"
}

// Valid is true for Player and Bot only.
func (m Mark) Valid() bool {
	return m == Player || m == Bot
}

// Action is a single placement of a mark. It is a plain value; two actions
// are equal iff row, column and mark all match, so it can be compared with ==
// and used as a map key.
type Action struct {
	row  int
	col  int
	mark Mark
}

// NewAction creates an Action and returns it.
func NewAction(row, col int, mark Mark) Action {
	return Action{row: row, col: col, mark: mark}
}

func (a Action) Row() int {
	return a.row
}

func (a Action) Col() int {
	return a.col
}

func (a Action) Mark() Mark {
	return a.mark
}

func (a Action) Equals(other Action) bool {
	return a == other
}

// String provides a string just for debugging purposes.
func (a Action) String() string {
	return fmt.Sprintf("<action: %v (%d, %d)>", a.mark, a.row, a.col)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (a Action) ShortDescription() string {
	return fmt.Sprintf("%d %d", a.row, a.col)
}
