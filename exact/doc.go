// Package exact computes Ising thermal averages without sampling: by full
// enumeration of the 2^N configurations of a small lattice, and by Onsager's
// closed form for the infinite square lattice.
//
// Enumeration is the ground truth the Monte Carlo samplers are checked
// against; it is limited to MaxSites spins.
//
// State encoding: configuration index k carries spin i in bit i, with a set
// bit meaning Down. SpinsFromBits and BitsFromSpins are exact inverses.
package exact
