package cmd

import (
	"math/rand"

	"github.com/iteam13337/gosweep/director"
	"github.com/iteam13337/gosweep/game"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type summary struct {
	Config     game.Config          `yaml:"config"`
	Director   string               `yaml:"director"`
	Games      int                  `yaml:"games"`
	Won        int                  `yaml:"won"`
	Lost       int                  `yaml:"lost"`
	Unfinished int                  `yaml:"unfinished"`
	WinRate    float64              `yaml:"win_rate"`
	Boards     []game.BoardSnapshot `yaml:"boards,omitempty"`
}

// run plays opts.numGames games on one board, resetting it between games so
// a seeded session replays identically.
func run(config game.Config, newDirector func() director.Director, opts options, log logrus.FieldLogger) (summary, error) {
	board, err := game.NewBoard(config)
	if err != nil {
		return summary{}, err
	}

	report := summary{
		Config:   board.Config(),
		Director: opts.directorName,
	}
	rnd := rand.New(rand.NewSource(board.Seed() + 1))

	for i := 1; i <= int(opts.numGames); i++ {
		if i > 1 {
			board.Reset()
		}

		outcome, err := director.Play(board, newDirector(), rnd, int(opts.maxSteps), log)
		if err != nil {
			return report, errors.Wrapf(err, "game %d", i)
		}

		report.Games++
		switch outcome.Phase {
		case game.Won:
			report.Won++
		case game.Lost:
			report.Lost++
		default:
			report.Unfinished++
		}

		log.WithFields(logrus.Fields{
			"game":            i,
			"phase":           outcome.Phase.String(),
			"steps":           outcome.Steps,
			"elapsed":         outcome.Elapsed.String(),
			"mines_remaining": outcome.MinesRemaining,
		}).Info("game finished")

		if opts.showBoards {
			report.Boards = append(report.Boards, board.Snapshot())
		}
	}

	if report.Games > 0 {
		report.WinRate = float64(report.Won) / float64(report.Games)
	}
	return report, nil
}
