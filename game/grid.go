package game

import "github.com/pkg/errors"

// neighborOffsets lists the 8 surrounding offsets in row-major order.
var neighborOffsets = [8]Position{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a fixed-size, row-major store of cells.
type Grid struct {
	cols, rows int
	cells      []Cell
}

func NewGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, errors.Wrapf(ErrConfiguration, "grid dimensions %dx%d", cols, rows)
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}, nil
}

func (grid *Grid) Cols() int {
	return grid.cols
}

func (grid *Grid) Rows() int {
	return grid.rows
}

// Len is the total number of cells
func (grid *Grid) Len() int {
	return len(grid.cells)
}

func (grid *Grid) Contains(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < grid.cols && pos.Y < grid.rows
}

func (grid *Grid) Get(pos Position) (Cell, error) {
	if !grid.Contains(pos) {
		return Cell{}, grid.outOfBounds(pos)
	}
	return grid.cells[grid.index(pos)], nil
}

func (grid *Grid) Set(pos Position, cell Cell) error {
	if !grid.Contains(pos) {
		return grid.outOfBounds(pos)
	}
	grid.cells[grid.index(pos)] = cell
	return nil
}

// Neighbors returns the in-bounds neighbours of pos, in row-major order.
// Out-of-bounds positions have no neighbours.
func (grid *Grid) Neighbors(pos Position) []Position {
	if !grid.Contains(pos) {
		return nil
	}

	neighbors := make([]Position, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		neighbor := Position{pos.X + offset.X, pos.Y + offset.Y}
		if grid.Contains(neighbor) {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// Positions returns every position of the grid in row-major order
func (grid *Grid) Positions() []Position {
	positions := make([]Position, 0, len(grid.cells))
	for y := 0; y < grid.rows; y++ {
		for x := 0; x < grid.cols; x++ {
			positions = append(positions, Position{x, y})
		}
	}
	return positions
}

// cell returns a pointer for in-package mutation; pos must be in bounds.
func (grid *Grid) cell(pos Position) *Cell {
	return &grid.cells[grid.index(pos)]
}

func (grid *Grid) index(pos Position) int {
	return pos.Y*grid.cols + pos.X
}

func (grid *Grid) outOfBounds(pos Position) error {
	return errors.Wrapf(ErrOutOfBounds, "%v on %dx%d grid", pos, grid.cols, grid.rows)
}
