package game

import "fmt"

type CellState int
type Appearance int
type Phase int

const (
	Hidden CellState = iota
	Flagged
	Revealed
)

func (state CellState) String() string {
	switch state {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	}
	return fmt.Sprintf("CellState(%d)", int(state))
}

// Appearance is what a host should draw for a cell. The numbered values line
// up with their adjacent mine count, so Appearance(n) is NumberN for 1..8.
const (
	Unrevealed Appearance = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineUnrevealed
	MineLosing
)

var Appearances = []Appearance{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineUnrevealed,
	MineLosing,
}

// Glyph returns a single-character rendering, the same alphabet used by
// Board.String.
func (appearance Appearance) Glyph() string {
	switch {
	case appearance == Unrevealed:
		return "#"
	case appearance == Empty:
		return "."
	case appearance >= Number1 && appearance <= Number8:
		return fmt.Sprint(int(appearance))
	case appearance == Flag:
		return "f"
	case appearance == FlagWrong:
		return "x"
	case appearance == Mine, appearance == MineUnrevealed:
		return "*"
	case appearance == MineLosing:
		return "@"
	}
	return "?"
}

const (
	NotStarted Phase = iota
	InProgress
	Won
	Lost
)

func (phase Phase) String() string {
	switch phase {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("Phase(%d)", int(phase))
}

// Over reports whether the phase is terminal
func (phase Phase) Over() bool {
	return phase == Won || phase == Lost
}
