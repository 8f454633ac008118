// Package testutil provides testing utilities for kvec.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe RNG for generating vectors and datasets, a scripted index
// source for reproducing exact centroid initializations, and a sort-based
// reference top-k used to cross-check the neighbor ranker.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.RandomVectors(100, 2)          // uniform [0, 1)
//	ds := rng.ClusteredDataset(90, 2, 3, 0.05) // labeled by generating cluster
//
// # Scripted Sources
//
//	src := testutil.NewSequence(0, 2) // Intn returns 0, then 2, then 0, ...
//
// # Reference Ranking
//
//	want := testutil.ExactTopK(distances, k)
package testutil
