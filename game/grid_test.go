package game

import (
	"errors"
	"testing"
)

func TestNewGridRejectsEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrConfiguration) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrConfiguration", dims[0], dims[1], err)
		}
	}
}

func TestGridGetSet(t *testing.T) {
	grid, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := Cell{HasMine: true, State: Flagged}
	if err := grid.Set(Pos(3, 2), want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := grid.Get(Pos(3, 2))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != want {
		t.Errorf("Get = %v, want %v", got, want)
	}

	if other, _ := grid.Get(Pos(2, 0)); other != (Cell{}) {
		t.Errorf("untouched cell = %v, want zero", other)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	grid, _ := NewGrid(4, 3)

	for _, pos := range []Position{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}} {
		t.Run(pos.String(), func(t *testing.T) {
			if _, err := grid.Get(pos); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Get error = %v, want ErrOutOfBounds", err)
			}
			if err := grid.Set(pos, Cell{}); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Set error = %v, want ErrOutOfBounds", err)
			}
			if neighbors := grid.Neighbors(pos); len(neighbors) != 0 {
				t.Errorf("Neighbors = %v, want none", neighbors)
			}
		})
	}
}

func TestGridNeighbors(t *testing.T) {
	grid, _ := NewGrid(4, 3)

	tests := []struct {
		pos  Position
		want []Position
	}{
		{Pos(0, 0), []Position{{1, 0}, {0, 1}, {1, 1}}},
		{Pos(3, 2), []Position{{2, 1}, {3, 1}, {2, 2}}},
		{Pos(1, 0), []Position{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{Pos(1, 1), []Position{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	}

	for _, test := range tests {
		t.Run(test.pos.String(), func(t *testing.T) {
			got := grid.Neighbors(test.pos)
			if len(got) != len(test.want) {
				t.Fatalf("Neighbors = %v, want %v", got, test.want)
			}
			// Row-major order is part of the contract
			for i := range got {
				if got[i] != test.want[i] {
					t.Errorf("Neighbors[%d] = %v, want %v", i, got[i], test.want[i])
				}
				if !test.pos.Adjacent(got[i]) {
					t.Errorf("%v is not adjacent to %v", got[i], test.pos)
				}
			}
		})
	}
}

func TestGridPositionsRowMajor(t *testing.T) {
	grid, _ := NewGrid(2, 2)
	want := []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	got := grid.Positions()
	if len(got) != len(want) || grid.Len() != len(want) {
		t.Fatalf("Positions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPositionOrderingAndAdjacency(t *testing.T) {
	if !Pos(0, 5).Less(Pos(1, 0)) {
		t.Error("(0, 5) should sort before (1, 0)")
	}
	if !Pos(1, 0).Less(Pos(1, 1)) {
		t.Error("(1, 0) should sort before (1, 1)")
	}
	if Pos(2, 2).Less(Pos(2, 2)) {
		t.Error("a position is not less than itself")
	}

	if Pos(2, 2).Adjacent(Pos(2, 2)) {
		t.Error("a position is not adjacent to itself")
	}
	if !Pos(2, 2).Adjacent(Pos(3, 3)) {
		t.Error("diagonal neighbours are adjacent")
	}
	if Pos(2, 2).Adjacent(Pos(4, 2)) {
		t.Error("cells two apart are not adjacent")
	}
}
