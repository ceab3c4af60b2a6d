package game

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2020, 3, 10, 22, 27, 45, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

func (clock *fakeClock) Advance(d time.Duration) {
	clock.now = clock.now.Add(d)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

// newTestBoard builds a Classic board whose mines sit where the map puts '*'.
func newTestBoard(t *testing.T, mineMap string) (*Board, *fakeClock) {
	t.Helper()

	cols, rows, mines, err := ParseLayout(mineMap)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}

	clock := newFakeClock()
	board, err := NewBoard(Config{
		Cols:   cols,
		Rows:   rows,
		Mines:  len(mines),
		Mode:   Classic,
		Seed:   1,
		Layout: mines,
		Clock:  clock.Now,
		Logger: quietLogger(),
	})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return board, clock
}

func mustResult(t *testing.T, result Result, err error) Result {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func positionSet(positions []Position) map[Position]bool {
	set := make(map[Position]bool, len(positions))
	for _, pos := range positions {
		set[pos] = true
	}
	return set
}

func assertPositions(t *testing.T, got []Position, want ...Position) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d positions %v, want %d %v", len(got), got, len(want), want)
	}
	gotSet := positionSet(got)
	for _, pos := range want {
		if !gotSet[pos] {
			t.Errorf("missing %v in %v", pos, got)
		}
	}
}
