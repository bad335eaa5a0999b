package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrEmptyLattice indicates rows or cols is less than one.
	ErrEmptyLattice = errors.New("lattice: rows and cols must both be at least one")
	// ErrOutOfRange indicates a coordinate or site index outside the lattice.
	ErrOutOfRange = errors.New("lattice: index out of range")
	// ErrShapeMismatch indicates a configuration whose length differs from Size().
	ErrShapeMismatch = errors.New("lattice: configuration length does not match lattice size")
)

// Spin values. A configuration is a []int8 holding only Up or Down.
const (
	Up   int8 = 1
	Down int8 = -1
)

// Bond is an unordered pair of adjacent site indices.
// AllBonds always reports the lower-coordinate end in A.
type Bond struct {
	A, B int
}

// Model is the topology and observable surface a sampler depends on.
// *Grid implements it.
type Model interface {
	// Size returns the number of sites.
	Size() int
	// Neighbors returns the in-bounds neighbors of idx in a fixed order.
	Neighbors(idx int) ([]int, error)
	// AllBonds returns every nearest-neighbor pair exactly once.
	AllBonds() []Bond
	// Energy returns the Hamiltonian of conf.
	Energy(conf []int8) (float64, error)
	// Magnetization returns the sum of spins in conf.
	Magnetization(conf []int8) (float64, error)
}

// Grid is a rows×cols lattice with open boundaries. It is immutable once built
// and safe for concurrent readers.
type Grid struct {
	rows, cols int
}

var _ Model = (*Grid)(nil)
