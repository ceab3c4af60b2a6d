package game

import (
	"math/rand"
	"time"

	"github.com/iteam13337/gosweep/util/collections"
	"github.com/pkg/errors"
)

// Layout decides where mines go once the first click is known. Positions in
// exclude must not receive a mine.
type Layout interface {
	Place(cols, rows, count int, exclude collections.Set[Position]) ([]Position, error)
}

// RandomLayout samples mine positions uniformly from every non-excluded cell.
type RandomLayout struct {
	Rand *rand.Rand
}

func NewRandomLayout(seed int64) RandomLayout {
	return RandomLayout{Rand: rand.New(rand.NewSource(seed))}
}

func (layout RandomLayout) Place(cols, rows, count int, exclude collections.Set[Position]) ([]Position, error) {
	eligible := make([]Position, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pos := Position{x, y}
			if !exclude.Contains(pos) {
				eligible = append(eligible, pos)
			}
		}
	}

	if count < 0 || count >= len(eligible) {
		return nil, errors.Wrapf(ErrConfiguration,
			"cannot place %d mines in %d eligible cells", count, len(eligible))
	}

	rnd := layout.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Partial Fisher-Yates: the first count entries end up a uniform sample
	for i := 0; i < count; i++ {
		j := i + rnd.Intn(len(eligible)-i)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}

	return eligible[:count], nil
}

// FixedLayout places mines exactly where listed. Useful for replays and tests.
type FixedLayout []Position

func (layout FixedLayout) Place(cols, rows, count int, exclude collections.Set[Position]) ([]Position, error) {
	if len(layout) != count {
		return nil, errors.Wrapf(ErrConfiguration, "fixed layout has %d mines, want %d", len(layout), count)
	}

	seen := make(collections.Set[Position], len(layout))
	for _, pos := range layout {
		switch {
		case pos.X < 0 || pos.Y < 0 || pos.X >= cols || pos.Y >= rows:
			return nil, errors.Wrapf(ErrConfiguration, "fixed mine %v outside %dx%d grid", pos, cols, rows)
		case seen.Contains(pos):
			return nil, errors.Wrapf(ErrConfiguration, "duplicate fixed mine %v", pos)
		case exclude.Contains(pos):
			return nil, errors.Wrapf(ErrConfiguration, "fixed mine %v on reserved cell", pos)
		}
		seen.Add(pos)
	}

	placed := make([]Position, len(layout))
	copy(placed, layout)
	return placed, nil
}
