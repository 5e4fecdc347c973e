package field

import "errors"

var (
	// ErrInvalidSize is returned when a grid is requested with a non-positive side length.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrInvalidMineCount is returned when the mine count is outside [0, size*size].
	ErrInvalidMineCount = errors.New("invalid mine count")
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrMinesPlaced is returned when mines are placed on a grid a second time.
	ErrMinesPlaced = errors.New("mines already placed")
)
