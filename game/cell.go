package game

import "fmt"

// Cell is the record stored for every grid location. Values handed out by
// Board and Result are snapshots; mutating them has no effect on the board.
type Cell struct {
	HasMine bool
	State   CellState

	// AdjacentMines counts mined neighbours. Meaningless when HasMine is set.
	AdjacentMines int

	// Exploded marks the mine whose reveal lost the game.
	Exploded bool
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%s, mine=%t, adjacent=%d)", cell.State, cell.HasMine, cell.AdjacentMines)
}

func (cell Cell) IsHidden() bool {
	return cell.State == Hidden
}

func (cell Cell) IsFlagged() bool {
	return cell.State == Flagged
}

func (cell Cell) IsRevealed() bool {
	return cell.State == Revealed
}

// Appearance derives what should be drawn for the cell. Mines and wrong flags
// are only told apart from ordinary hidden/flagged cells once the game is Lost.
func (cell Cell) Appearance(phase Phase) Appearance {
	lost := phase == Lost

	switch cell.State {
	case Flagged:
		if lost && !cell.HasMine {
			return FlagWrong
		}
		return Flag

	case Revealed:
		switch {
		case cell.Exploded:
			return MineLosing
		case cell.HasMine:
			return Mine
		default:
			return Appearance(cell.AdjacentMines)
		}

	default:
		if lost && cell.HasMine {
			return MineUnrevealed
		}
		return Unrevealed
	}
}
