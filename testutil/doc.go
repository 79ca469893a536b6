// Package testutil provides testing utilities for modelstorage.
//
// This package is intended for use in tests and examples only.
//
// # Random Models
//
//	rng := testutil.NewRNG(seed)
//	items := rng.Labels(10)     // "m0000".."m0009" in shuffled order
//	section := rng.Intn(3)
//
// # Recording Observer
//
// Recorder implements every capability of the update package and keeps the
// callbacks it received as readable event strings:
//
//	rec := testutil.NewRecorder()
//	store.SetObserver(rec)
//	store.AddItem("a")
//	rec.Events() // [begin section+ 0 item+ (0:0) end]
package testutil
