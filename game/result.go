package game

import (
	"time"

	"github.com/iteam13337/gosweep/util/collections"
)

// CellChange is the state of a cell after an operation touched it
type CellChange struct {
	Pos  Position
	Cell Cell
}

// Result describes the outcome of a single Board operation.
type Result struct {
	// Changed lists every cell whose state changed, once each, in the order
	// the changes happened.
	Changed []CellChange
	Phase   Phase
	Elapsed time.Duration
	// MinesRemaining is the mine count minus placed flags; negative when the
	// player has over-flagged.
	MinesRemaining int
}

func (result Result) GameOver() bool {
	return result.Phase.Over()
}

func (result Result) Won() bool {
	return result.Phase == Won
}

func (result Result) Lost() bool {
	return result.Phase == Lost
}

// Positions returns the changed positions in change order
func (result Result) Positions() []Position {
	positions := make([]Position, len(result.Changed))
	for i, change := range result.Changed {
		positions[i] = change.Pos
	}
	return positions
}

// changeSet records touched positions, deduplicated, and snapshots their
// cells once the operation has finished.
type changeSet struct {
	order []Position
	seen  collections.Set[Position]
}

func newChangeSet() *changeSet {
	return &changeSet{seen: make(collections.Set[Position])}
}

func (changes *changeSet) add(pos Position) {
	if changes.seen.Contains(pos) {
		return
	}
	changes.seen.Add(pos)
	changes.order = append(changes.order, pos)
}

func (changes *changeSet) snapshot(grid *Grid) []CellChange {
	if changes == nil || len(changes.order) == 0 {
		return nil
	}

	snapshot := make([]CellChange, len(changes.order))
	for i, pos := range changes.order {
		snapshot[i] = CellChange{Pos: pos, Cell: *grid.cell(pos)}
	}
	return snapshot
}
