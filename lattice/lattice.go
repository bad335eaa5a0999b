package lattice

import "fmt"

// New constructs a rows×cols Grid.
// Returns ErrEmptyLattice if either dimension is less than one.
// Complexity: O(1).
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyLattice, rows, cols)
	}

	return &Grid{rows: rows, cols: cols}, nil
}

// Dimensions returns (rows, cols).
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Size returns rows*cols.
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// InBounds reports whether (row,col) lies within the lattice.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// ToIdx maps (row,col) to its column-major site index col*rows + row.
// Returns ErrOutOfRange if the coordinate is outside the lattice.
// Complexity: O(1).
func (g *Grid) ToIdx(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) on %d×%d lattice", ErrOutOfRange, row, col, g.rows, g.cols)
	}

	return g.index(row, col), nil
}

// ToCoord converts a site index back to (row,col).
// Returns ErrOutOfRange if idx is outside [0, Size()).
// Complexity: O(1).
func (g *Grid) ToCoord(idx int) (row, col int, err error) {
	if idx < 0 || idx >= g.Size() {
		return 0, 0, fmt.Errorf("%w: site %d on lattice of size %d", ErrOutOfRange, idx, g.Size())
	}
	row, col = g.coordinate(idx)

	return row, col, nil
}

// Neighbors returns the orthogonal neighbors of idx that exist within bounds,
// in the fixed order row-1, row+1, col-1, col+1. There is no wraparound, so
// corner sites have two neighbors and edge sites three.
// Returns ErrOutOfRange if idx is outside [0, Size()).
// Complexity: O(1).
func (g *Grid) Neighbors(idx int) ([]int, error) {
	row, col, err := g.ToCoord(idx)
	if err != nil {
		return nil, err
	}
	res := make([]int, 0, 4)
	if row >= 1 {
		res = append(res, idx-1)
	}
	if row+1 < g.rows {
		res = append(res, idx+1)
	}
	if col >= 1 {
		res = append(res, idx-g.rows)
	}
	if col+1 < g.cols {
		res = append(res, idx+g.rows)
	}

	return res, nil
}

// index assumes a valid coordinate.
func (g *Grid) index(row, col int) int {
	return col*g.rows + row
}

// coordinate assumes a valid index.
func (g *Grid) coordinate(idx int) (row, col int) {
	return idx % g.rows, idx / g.rows
}
