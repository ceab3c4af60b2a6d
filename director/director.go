// Package director drives a game.Board the way a player would: through its
// public actions, looking only at what a player could see.
package director

import (
	"math/rand"
	"time"

	"github.com/iteam13337/gosweep/game"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoMove is returned by Play when a director runs out of actions before
// the game ends.
var ErrNoMove = errors.New("director has no move")

// View is the read-only part of a board a director may inspect. *game.Board
// satisfies it.
type View interface {
	Config() game.Config
	Phase() game.Phase
	Cell(game.Position) (game.Cell, error)
	Neighbors(game.Position) []game.Position
	Positions() []game.Position
}

type Director interface {
	// Init prepares the director for a fresh board
	Init(view View, rnd *rand.Rand)

	// Next picks the next action, or reports false when there is none
	Next() (game.Action, bool)
}

// Appearance returns what a player sees at pos. Directors must decide from
// this alone; the raw Cell would give the mines away.
func Appearance(view View, pos game.Position) game.Appearance {
	cell, err := view.Cell(pos)
	if err != nil {
		return game.Unrevealed
	}
	return cell.Appearance(view.Phase())
}

// Number returns the mine count shown at pos, and whether pos shows one.
// Revealed empty cells count as 0.
func Number(view View, pos game.Position) (int, bool) {
	appearance := Appearance(view, pos)
	if appearance >= game.Empty && appearance <= game.Number8 {
		return int(appearance), true
	}
	return 0, false
}

// Outcome summarizes a played game
type Outcome struct {
	Phase          game.Phase
	Steps          int
	Elapsed        time.Duration
	MinesRemaining int
}

// Play asks the director for actions and applies them until the game ends or
// maxSteps actions have been taken. maxSteps <= 0 means no limit.
func Play(board *game.Board, director Director, rnd *rand.Rand, maxSteps int, log logrus.FieldLogger) (Outcome, error) {
	director.Init(board, rnd)

	outcome := Outcome{}
	for !board.Phase().Over() && (maxSteps <= 0 || outcome.Steps < maxSteps) {
		action, ok := director.Next()
		if !ok {
			return finish(board, outcome), errors.Wrapf(ErrNoMove, "after %d steps", outcome.Steps)
		}

		result, err := board.Apply(action)
		if err != nil {
			return finish(board, outcome), errors.Wrapf(err, "applying %v", action)
		}
		outcome.Steps++

		log.WithFields(logrus.Fields{
			"step":    outcome.Steps,
			"action":  action.String(),
			"changed": len(result.Changed),
			"phase":   result.Phase.String(),
		}).Debug("director acted")
	}

	return finish(board, outcome), nil
}

func finish(board *game.Board, outcome Outcome) Outcome {
	outcome.Phase = board.Phase()
	outcome.Elapsed = board.Elapsed()
	outcome.MinesRemaining = board.MinesRemaining()
	return outcome
}
