// Package wolff implements the Wolff single-cluster Monte Carlo update for
// the nearest-neighbor Ising model on any lattice.Model.
//
// What:
//
//   - Sampler owns a spin configuration and a private, seedable generator.
//   - Step grows one cluster by breadth-first search from a random seed
//     site, adding each same-sign neighbor with probability
//     p = 1 − exp(−2β), then flips the whole cluster.
//   - Randomize draws a fresh configuration of independent ±1 spins.
//
// Why:
//
//   - Cluster moves decorrelate far faster than single-spin flips near the
//     critical temperature, while detailed balance holds exactly for the
//     chosen p.
//
// Lifecycle:
//
//	NewSampler ──► Uninitialized ──Randomize──► Ready ──Step*──► Ready
//
// Seed is valid in any state and never touches the configuration.
// Configuration and Step return ErrNotInitialized before Randomize.
//
// Determinism:
//
//   - The default generator is gonum's MT19937. Two samplers built with the
//     same seed and driven with the same call sequence produce identical
//     configurations, since neighbor order and the FIFO queue are fixed.
//
// Concurrency:
//
//   - A Sampler is not safe for concurrent use. Run one Sampler per
//     goroutine and derive per-worker seeds with DeriveSeed.
//
// Complexity:
//
//   - Step:      O(|cluster|·d) time, d ≤ 4; arenas sized to Size() are reused.
//   - Randomize: O(Size()).
package wolff
