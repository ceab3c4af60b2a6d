package game

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned for coordinates outside the grid. They are
	// never clamped.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidAction is returned for actions the target cell does not
	// support, like flagging a revealed cell or chording a hidden one.
	ErrInvalidAction = errors.New("invalid action")

	// ErrGameOver is returned alongside an empty Result for any action
	// issued after the game was won or lost.
	ErrGameOver = errors.New("game already over")

	// ErrConfiguration is returned when a board or mine layout cannot be
	// built from the requested dimensions and mine count.
	ErrConfiguration = errors.New("invalid configuration")
)
