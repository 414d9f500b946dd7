// Package testutil provides testing utilities for gaussgen.
//
// This package is intended for use in tests only. It provides helpers for
// summarizing samples, reading artifacts back from a store and generating
// arbitrary input values.
//
// # Summaries
//
//	s := testutil.Summarize(ds.Cluster(0))
//	s.Mean, s.StdDev // close to the centroid and 2.0
//
// # Reading Artifacts
//
//	values := testutil.ReadValues(t, store, "dados.csv.zst", codec.CompressionZSTD)
package testutil
