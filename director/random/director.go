package random

import (
	"math/rand"

	"github.com/iteam13337/gosweep/director"
	"github.com/iteam13337/gosweep/game"
)

// Director reveals cells in a random order fixed at Init. It never flags.
type Director struct {
	view  director.View
	order []game.Position
	next  int
}

func (d *Director) Init(view director.View, rnd *rand.Rand) {
	d.view = view
	d.order = view.Positions()
	d.next = 0

	rnd.Shuffle(len(d.order), func(i, j int) {
		d.order[i], d.order[j] = d.order[j], d.order[i]
	})
}

func (d *Director) Next() (game.Action, bool) {
	// Cells never go back to unrevealed, so skipped ones can stay skipped
	for ; d.next < len(d.order); d.next++ {
		if pos := d.order[d.next]; director.Appearance(d.view, pos) == game.Unrevealed {
			return game.RevealAt(pos), true
		}
	}
	return game.Action{}, false
}
