package game

import "fmt"

// Position addresses a cell by column (X) and row (Y).
type Position struct {
	X, Y int
}

func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

// Less orders positions by column, then row
func (pos Position) Less(other Position) bool {
	if pos.X != other.X {
		return pos.X < other.X
	}
	return pos.Y < other.Y
}

// Adjacent reports whether other is one of the 8 cells surrounding pos.
func (pos Position) Adjacent(other Position) bool {
	if pos == other {
		return false
	}
	return absDiff(pos.X, other.X) <= 1 && absDiff(pos.Y, other.Y) <= 1
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
