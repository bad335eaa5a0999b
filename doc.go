// Package isingmc is an in-memory toolkit for sampling the two-dimensional
// Ising model with the Wolff single-cluster algorithm.
//
// What is inside?
//
//	lattice/  — rectangular open-boundary grid: site indexing, neighbors,
//	            bonds, energy and magnetization
//	wolff/    — seedable Wolff cluster sampler bound to a lattice.Model
//	exact/    — exact Boltzmann averages for small lattices, Onsager energy
//	measure/  — sample collection and thermal averages
//	ensemble/ — independent samplers run in parallel from one config
//
// Quick ASCII example of a 2×3 lattice and its column-major site indices:
//
//	0───2───4
//	│   │   │
//	1───3───5
//
// Seven bonds, no wraparound.
//
//	go get github.com/katalvlaran/isingmc
package isingmc
