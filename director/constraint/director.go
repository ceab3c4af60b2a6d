package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/iteam13337/gosweep/director"
	"github.com/iteam13337/gosweep/director/random"
	"github.com/iteam13337/gosweep/game"
	"github.com/iteam13337/gosweep/util/collections"
)

// Director plays by deduction. Every revealed number with unknown neighbours
// yields an Observation: "numMines of these cells are mines". Actors are tried
// in order, from certain moves to guesses.
type Director struct {
	view director.View
	rnd  *rand.Rand

	random random.Director
}

type Observation struct {
	origin   game.Position
	number   int // mine count shown at origin
	numMines int // mines among cells, after subtracting flagged neighbours
	cells    collections.Set[game.Position]
	order    []game.Position // cells, sorted
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, cell := range observation.order {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(cell.String())
	}
	return fmt.Sprintf("Obs[%8s, %d ε %s]", observation.origin, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.order))
}

type actor func(observations []*Observation) (game.Action, bool)

func (d *Director) Init(view director.View, rnd *rand.Rand) {
	d.view = view
	d.rnd = rnd
	d.random.Init(view, rnd)
}

func (d *Director) Next() (game.Action, bool) {
	observations := d.observe()

	actors := []actor{
		d.actDeliberate,
		d.actPairs,
		d.actLowestProbability,
	}
	for _, act := range actors {
		if action, found := act(observations); found {
			return action, true
		}
	}

	return d.random.Next()
}

// observe builds one observation per revealed number that still touches
// unknown cells, in row-major order of origin.
func (d *Director) observe() []*Observation {
	var observations []*Observation

	for _, pos := range d.view.Positions() {
		number, isNumber := director.Number(d.view, pos)
		if !isNumber {
			continue
		}

		observation := &Observation{
			origin:   pos,
			number:   number,
			numMines: number,
			cells:    make(collections.Set[game.Position]),
		}
		for _, neighbor := range d.view.Neighbors(pos) {
			switch director.Appearance(d.view, neighbor) {
			case game.Flag:
				observation.numMines--
			case game.Unrevealed:
				observation.cells.Add(neighbor)
				observation.order = append(observation.order, neighbor)
			}
		}

		if len(observation.order) > 0 {
			sortPositions(observation.order)
			observations = append(observations, observation)
		}
	}

	return observations
}

// actDeliberate handles observations that settle all their cells at once:
// every cell a mine, or none.
func (d *Director) actDeliberate(observations []*Observation) (game.Action, bool) {
	for _, observation := range observations {
		switch {
		case observation.numMines == len(observation.order):
			return game.FlagAt(observation.order[0]), true

		case observation.numMines == 0 && observation.number > 0:
			return game.ChordAt(observation.origin), true

		case observation.numMines == 0:
			return game.RevealAt(observation.order[0]), true
		}
	}
	return game.Action{}, false
}

// actPairs compares overlapping observations. With A and B overlapping, the
// shared cells hold at most min(A.numMines, |shared|) mines, so B's own cells
// may be forced to all mines, and A's own cells may be forced safe.
func (d *Director) actPairs(observations []*Observation) (game.Action, bool) {
	observationsByCell := make(map[game.Position][]*Observation)
	for _, observation := range observations {
		for _, cell := range observation.order {
			observationsByCell[cell] = append(observationsByCell[cell], observation)
		}
	}

	for _, a := range observations {
		visited := make(collections.Set[*Observation])

		for _, cell := range a.order {
			for _, b := range observationsByCell[cell] {
				if b == a || visited.Contains(b) {
					continue
				}
				visited.Add(b)

				shared := a.cells.Intersection(b.cells)
				onlyA := a.cells.Difference(b.cells)
				onlyB := b.cells.Difference(a.cells)

				maxShared := min(a.numMines, shared.Len())
				if onlyB.Len() > 0 && b.numMines-maxShared == onlyB.Len() {
					return game.FlagAt(first(onlyB)), true
				}

				minShared := max(0, b.numMines-onlyB.Len())
				if onlyA.Len() > 0 && a.numMines-minShared == 0 {
					return game.RevealAt(first(onlyA)), true
				}
			}
		}
	}

	return game.Action{}, false
}

// actLowestProbability guesses. A constrained cell is rated by the worst
// observation covering it; unconstrained cells by the overall density of the
// remaining mines. Ties are broken at random.
func (d *Director) actLowestProbability(observations []*Observation) (game.Action, bool) {
	if len(observations) == 0 {
		return game.Action{}, false
	}

	cellProbabilities := make(map[game.Position]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for _, cell := range observation.order {
			if past, hasPast := cellProbabilities[cell]; !hasPast || probability > past {
				cellProbabilities[cell] = probability
			}
		}
	}

	var unknown []game.Position
	numFlags := 0
	for _, pos := range d.view.Positions() {
		switch director.Appearance(d.view, pos) {
		case game.Unrevealed:
			unknown = append(unknown, pos)
		case game.Flag:
			numFlags++
		}
	}

	density := float64(d.view.Config().Mines-numFlags) / float64(len(unknown))
	for _, pos := range unknown {
		if _, constrained := cellProbabilities[pos]; !constrained {
			cellProbabilities[pos] = density
		}
	}

	lowestProbability := math.Inf(1)
	var lowestProbabilityCells []game.Position
	for _, pos := range unknown {
		probability := cellProbabilities[pos]
		switch {
		case probability < lowestProbability:
			lowestProbability = probability
			lowestProbabilityCells = append(lowestProbabilityCells[:0], pos)
		case probability == lowestProbability:
			lowestProbabilityCells = append(lowestProbabilityCells, pos)
		}
	}

	if len(lowestProbabilityCells) == 0 {
		return game.Action{}, false
	}
	return game.RevealAt(lowestProbabilityCells[d.rnd.Intn(len(lowestProbabilityCells))]), true
}

func first(cells collections.Set[game.Position]) game.Position {
	order := cells.Slice()
	sortPositions(order)
	return order[0]
}

func sortPositions(positions []game.Position) {
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Less(positions[j])
	})
}
