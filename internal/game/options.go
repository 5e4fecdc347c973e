package game

import (
	"math/rand/v2"
	"time"

	"github.com/samdwyer/termsweeper/internal/field"
)

const (
	// DefaultMines is the mine count of the classic 9x9 board.
	DefaultMines = 10
)

// Options configures a new game.
type Options struct {
	// Size is the side length of the square board. Zero means field.DefaultSize.
	Size int

	// Mines is the number of mines to scatter.
	Mines int

	// Seed for random mine placement. Used for reproducible boards.
	// A seed of 0 means a random seed will be generated.
	Seed uint64

	// Layout places mines on exactly these cells instead of at random.
	// Mines and Seed are ignored when it is set.
	Layout []field.Position
}

// withDefaults fills in zero values.
func (o Options) withDefaults() Options {
	if o.Size == 0 {
		o.Size = field.DefaultSize
	}
	return o
}

// source returns the random source for mine placement and the seed it was
// built from, so a random board can be replayed.
func (o Options) source() (*rand.Rand, uint64) {
	seed := o.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}
