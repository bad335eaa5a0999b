// Package lattice models the topology of a rectangular 2D Ising lattice with
// open (non-periodic) boundaries and evaluates the two standard observables
// on a spin configuration.
//
// What:
//
//   - Grid holds fixed dimensions rows×cols; it is immutable once built.
//   - Sites are indexed column-major: idx = col*rows + row.
//   - Neighbors enumerates up to four orthogonal neighbors, never wrapping.
//   - AllBonds lists every nearest-neighbor pair exactly once.
//   - Energy is the ferromagnetic Hamiltonian Σ −s[a]·s[b] with unit coupling
//     and no field; Magnetization is Σ s[i].
//
// Why:
//
//   - Samplers (see package wolff) only need neighbor queries and
//     observables; keeping topology here avoids duplicating it.
//
// Complexity:
//
//   - ToIdx, ToCoord, Neighbors: O(1).
//   - AllBonds, Energy:          O(rows×cols), Memory: O(bonds).
//   - Magnetization:             O(rows×cols), Memory: O(1).
//
// Errors:
//
//   - ErrEmptyLattice: rows or cols is less than one.
//   - ErrOutOfRange: a coordinate or site index lies outside the lattice.
//   - ErrShapeMismatch: configuration length differs from Size().
package lattice
