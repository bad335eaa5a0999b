// Package ensemble runs several independent Wolff samplers on one lattice in
// parallel and summarizes each worker and the pooled sample set.
//
// Every worker owns its own wolff.Sampler, seeded with
// wolff.DeriveSeed(Config.Seed, worker), so a run is reproducible from one
// base seed regardless of scheduling. The lattice is shared read-only.
//
// Configuration comes either from DefaultConfig or from a generic map (for
// instance a decoded JSON or YAML document) through Decode.
package ensemble
