// Package testutil provides testing utilities for helpers.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, concurrency-safe random source for generating
// numeric arrays, complex numbers and label samples.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	vals := make([]float64, 4)
//	rng.FillUniform(vals)          // uniform [0, 1)
//	arr := ndarray.Random(rng, 2, 2)
//	z := rng.Complex128()
package testutil
