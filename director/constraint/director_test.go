package constraint

import (
	"io"
	"math/rand"
	"testing"

	"github.com/iteam13337/gosweep/director"
	"github.com/iteam13337/gosweep/game"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

func newBoard(t *testing.T, mineMap string) *game.Board {
	t.Helper()

	cols, rows, mines, err := game.ParseLayout(mineMap)
	if err != nil {
		t.Fatal(err)
	}
	board, err := game.NewBoard(game.Config{
		Cols:   cols,
		Rows:   rows,
		Mines:  len(mines),
		Layout: mines,
		Logger: quietLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return board
}

func reveal(t *testing.T, board *game.Board, positions ...game.Position) {
	t.Helper()
	for _, pos := range positions {
		if _, err := board.Reveal(pos); err != nil {
			t.Fatalf("Reveal(%v): %v", pos, err)
		}
	}
}

func TestFlagsForcedMine(t *testing.T) {
	board := newBoard(t, "..*..")
	reveal(t, board, game.Pos(0, 0))

	d := &Director{}
	d.Init(board, rand.New(rand.NewSource(1)))

	action, ok := d.Next()
	if !ok || action != game.FlagAt(game.Pos(2, 0)) {
		t.Errorf("Next() = %v, %t, want flag at (2, 0)", action, ok)
	}
}

func TestChordsSatisfiedNumber(t *testing.T) {
	board := newBoard(t, "..*..")
	reveal(t, board, game.Pos(0, 0), game.Pos(3, 0))
	board.ToggleFlag(game.Pos(2, 0))

	d := &Director{}
	d.Init(board, rand.New(rand.NewSource(1)))

	action, ok := d.Next()
	if !ok || action != game.ChordAt(game.Pos(3, 0)) {
		t.Errorf("Next() = %v, %t, want chord at (3, 0)", action, ok)
	}
}

// In a 1-2-1 row under three hidden cells, the outer cells are mines and
// the middle is safe. No single number proves it; a pair does.
func TestPairDeduction(t *testing.T) {
	board := newBoard(t, `
		*.*
		...
	`)
	reveal(t, board, game.Pos(0, 1), game.Pos(1, 1), game.Pos(2, 1))

	d := &Director{}
	d.Init(board, rand.New(rand.NewSource(1)))
	observations := d.observe()

	if action, ok := d.actDeliberate(observations); ok {
		t.Fatalf("no single observation settles the row, got %v", action)
	}

	action, ok := d.actPairs(observations)
	if !ok || action.Kind != game.ActionFlag {
		t.Fatalf("actPairs = %v, %t, want a flag", action, ok)
	}
	if action.Pos != game.Pos(2, 0) && action.Pos != game.Pos(0, 0) {
		t.Errorf("flagged %v, which is not a mine", action.Pos)
	}
}

func TestWinsDeducibleBoards(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		first  []game.Position
	}{
		{"strip", "..*..", []game.Position{{0, 0}}},
		{"one two one", "*.*\n...", []game.Position{{0, 1}, {1, 1}, {2, 1}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				board := newBoard(t, test.layout)
				reveal(t, board, test.first...)

				outcome, err := director.Play(board, &Director{}, rand.New(rand.NewSource(seed)), 50, quietLogger())
				if err != nil {
					t.Fatal(err)
				}
				if outcome.Phase != game.Won {
					t.Errorf("seed %d: phase %v, want Won\n%s", seed, outcome.Phase, board)
				}
			}
		})
	}
}

func TestObservationProbability(t *testing.T) {
	board := newBoard(t, "*.*\n...")
	reveal(t, board, game.Pos(1, 1))

	d := &Director{}
	d.Init(board, rand.New(rand.NewSource(1)))
	observations := d.observe()

	if len(observations) != 1 {
		t.Fatalf("observations = %v, want one", observations)
	}
	if p := observations[0].MineProbability(); p != 2.0/5.0 {
		t.Errorf("MineProbability = %v, want 2/5", p)
	}
}
