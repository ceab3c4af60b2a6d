package game

import (
	"strings"
	"time"

	"github.com/iteam13337/gosweep/util/collections"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Board is the game engine. It owns the grid, the mines and the timer, and is
// the only thing that mutates them. A Board is not safe for concurrent use;
// hosts serialize calls into it.
type Board struct {
	config Config
	layout Layout
	clock  func() time.Time
	log    logrus.FieldLogger

	grid  *Grid
	phase Phase
	timer Timer

	mines       collections.Set[Position]
	numFlags    int
	numRevealed int // revealed cells without a mine
}

// NewBoard validates config and returns a board waiting for its first reveal.
func NewBoard(config Config) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	if config.Layout == nil {
		config.Layout = NewRandomLayout(config.Seed)
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	board := &Board{
		config: config,
		layout: config.Layout,
		clock:  config.Clock,
		log: config.Logger.WithFields(logrus.Fields{
			"cols":  config.Cols,
			"rows":  config.Rows,
			"mines": config.Mines,
			"mode":  config.Mode.String(),
		}),
	}
	board.clear()

	return board, nil
}

func (board *Board) clear() {
	// Dimensions were validated by NewBoard
	board.grid, _ = NewGrid(board.config.Cols, board.config.Rows)
	board.phase = NotStarted
	board.timer.Reset()
	board.mines = nil
	board.numFlags = 0
	board.numRevealed = 0
}

func (board *Board) Config() Config {
	return board.config
}

// Seed is the seed the default random layout was created with
func (board *Board) Seed() int64 {
	return board.config.Seed
}

func (board *Board) Cols() int {
	return board.grid.Cols()
}

func (board *Board) Rows() int {
	return board.grid.Rows()
}

func (board *Board) NumCells() int {
	return board.grid.Len()
}

func (board *Board) Phase() Phase {
	return board.phase
}

// Cell returns a snapshot of the cell at pos
func (board *Board) Cell(pos Position) (Cell, error) {
	return board.grid.Get(pos)
}

func (board *Board) Neighbors(pos Position) []Position {
	return board.grid.Neighbors(pos)
}

func (board *Board) Positions() []Position {
	return board.grid.Positions()
}

func (board *Board) Elapsed() time.Duration {
	return board.timer.Elapsed(board.clock())
}

// Running reports whether the game timer is counting
func (board *Board) Running() bool {
	return board.timer.Running()
}

// MinesRemaining is the mine count minus placed flags. It goes negative when
// more flags than mines are placed.
func (board *Board) MinesRemaining() int {
	return board.config.Mines - board.numFlags
}

func (board *Board) canPlay() bool {
	return !board.phase.Over()
}

// Apply dispatches an action to Reveal, ToggleFlag or Chord.
func (board *Board) Apply(action Action) (Result, error) {
	switch action.Kind {
	case ActionReveal:
		return board.Reveal(action.Pos)
	case ActionFlag:
		return board.ToggleFlag(action.Pos)
	case ActionChord:
		return board.Chord(action.Pos)
	}
	return board.result(nil), errors.Wrapf(ErrInvalidAction, "unknown action kind %d", int(action.Kind))
}

// Reveal uncovers the cell at pos. The first reveal of a game places the
// mines, keeping pos (and, in Win7 mode, its neighbours) clear. Revealing a
// cell with no adjacent mines cascades to its neighbours. Revealing a flagged
// or already revealed cell changes nothing.
func (board *Board) Reveal(pos Position) (Result, error) {
	if err := board.checkAction(pos); err != nil {
		return board.result(nil), err
	}

	if board.grid.cell(pos).State != Hidden {
		return board.result(nil), nil
	}

	if board.phase == NotStarted {
		if err := board.startGame(pos); err != nil {
			return board.result(nil), err
		}
	}

	changes := newChangeSet()
	board.reveal(pos, changes)
	board.evaluate()

	return board.result(changes), nil
}

// ToggleFlag flips a hidden cell to flagged and back. Flags may be placed
// before the first reveal; they do not start the game.
func (board *Board) ToggleFlag(pos Position) (Result, error) {
	if err := board.checkAction(pos); err != nil {
		return board.result(nil), err
	}

	cell := board.grid.cell(pos)
	switch cell.State {
	case Hidden:
		cell.State = Flagged
		board.numFlags++
	case Flagged:
		cell.State = Hidden
		board.numFlags--
	default:
		return board.result(nil), errors.Wrapf(ErrInvalidAction, "cannot flag revealed cell %v", pos)
	}

	changes := newChangeSet()
	changes.add(pos)

	return board.result(changes), nil
}

// Chord reveals every hidden neighbour of a revealed number once the number
// of flagged neighbours matches it. A wrong flag lets a mine through, which
// loses the game. With too few or too many flags nothing changes.
func (board *Board) Chord(pos Position) (Result, error) {
	if err := board.checkAction(pos); err != nil {
		return board.result(nil), err
	}

	cell := board.grid.cell(pos)
	if cell.State != Revealed || cell.HasMine || cell.AdjacentMines == 0 {
		return board.result(nil), errors.Wrapf(ErrInvalidAction, "cannot chord %v: %v", pos, *cell)
	}

	neighbors := board.grid.Neighbors(pos)

	numFlaggedNeighbors := 0
	for _, neighbor := range neighbors {
		if board.grid.cell(neighbor).State == Flagged {
			numFlaggedNeighbors++
		}
	}
	if numFlaggedNeighbors != cell.AdjacentMines {
		return board.result(nil), nil
	}

	changes := newChangeSet()
	for _, neighbor := range neighbors {
		board.reveal(neighbor, changes)
		if board.phase == Lost {
			break
		}
	}
	board.evaluate()

	return board.result(changes), nil
}

// Reset throws the current game away. The next reveal starts a new one.
func (board *Board) Reset() Result {
	board.log.WithField("phase", board.phase.String()).Debug("resetting board")
	board.clear()
	return board.result(nil)
}

func (board *Board) checkAction(pos Position) error {
	if !board.grid.Contains(pos) {
		return board.grid.outOfBounds(pos)
	}
	if !board.canPlay() {
		return errors.Wrapf(ErrGameOver, "game %s", board.phase)
	}
	return nil
}

// startGame places the mines around the first reveal and starts the timer.
// Nothing is mutated if placement fails.
func (board *Board) startGame(first Position) error {
	reserved := board.config.Mode.reserved(board.grid, first)
	mines, err := board.layout.Place(board.grid.Cols(), board.grid.Rows(), board.config.Mines, reserved)
	if err != nil {
		return errors.Wrap(err, "placing mines")
	}

	board.fillMines(mines)
	board.phase = InProgress
	board.timer.Start(board.clock())

	board.log.WithFields(logrus.Fields{
		"first": first.String(),
		"seed":  board.config.Seed,
	}).Debug("mines placed, game started")

	return nil
}

func (board *Board) fillMines(mines []Position) {
	board.mines = collections.NewSet(mines...)

	for _, pos := range mines {
		board.grid.cell(pos).HasMine = true
		for _, neighbor := range board.grid.Neighbors(pos) {
			board.grid.cell(neighbor).AdjacentMines++
		}
	}
}

// reveal applies the single-cell reveal rule to a hidden cell: mines lose the
// game, zeros cascade, numbers open alone.
func (board *Board) reveal(pos Position, changes *changeSet) {
	cell := board.grid.cell(pos)

	switch {
	case cell.State != Hidden:
		return
	case cell.HasMine:
		board.lose(pos, changes)
	case cell.AdjacentMines == 0:
		board.cascadeEmpty(pos, changes)
	default:
		board.uncover(pos, changes)
	}
}

func (board *Board) cascadeEmpty(seed Position, changes *changeSet) {
	flood(
		seed,
		func(pos Position) bool {
			cell := board.grid.cell(pos)
			if cell.State != Hidden || cell.HasMine {
				return false
			}
			board.uncover(pos, changes)
			return cell.AdjacentMines == 0
		},
		board.grid.Neighbors,
	)
}

func (board *Board) uncover(pos Position, changes *changeSet) {
	board.grid.cell(pos).State = Revealed
	board.numRevealed++
	changes.add(pos)
}

// lose exposes the exploded mine and every other hidden mine. Flagged mines
// keep their flag.
func (board *Board) lose(exploded Position, changes *changeSet) {
	cell := board.grid.cell(exploded)
	cell.State = Revealed
	cell.Exploded = true
	changes.add(exploded)

	for _, pos := range board.grid.Positions() {
		if !board.mines.Contains(pos) {
			continue
		}
		if mine := board.grid.cell(pos); mine.State == Hidden {
			mine.State = Revealed
			changes.add(pos)
		}
	}

	board.phase = Lost
	board.timer.Stop(board.clock())

	board.log.WithFields(logrus.Fields{
		"exploded": exploded.String(),
		"elapsed":  board.Elapsed().String(),
	}).Debug("game lost")
}

// evaluate checks for a win after a state change. Flags play no part.
func (board *Board) evaluate() {
	if board.phase != InProgress {
		return
	}
	if board.numRevealed == board.grid.Len()-board.config.Mines {
		board.phase = Won
		board.timer.Stop(board.clock())

		board.log.WithField("elapsed", board.Elapsed().String()).Debug("game won")
	}
}

func (board *Board) result(changes *changeSet) Result {
	return Result{
		Changed:        changes.snapshot(board.grid),
		Phase:          board.phase,
		Elapsed:        board.Elapsed(),
		MinesRemaining: board.MinesRemaining(),
	}
}

// String draws the board one row per line using Appearance glyphs
func (board *Board) String() string {
	var builder strings.Builder
	for y := 0; y < board.grid.Rows(); y++ {
		if y > 0 {
			builder.WriteByte('\n')
		}
		for x := 0; x < board.grid.Cols(); x++ {
			cell := board.grid.cell(Position{x, y})
			builder.WriteString(cell.Appearance(board.phase).Glyph())
		}
	}
	return builder.String()
}
