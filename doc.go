// Package modelstorage provides an in-memory, ordered, two-level model
// storage for list and grid datasources.
//
// A Storage holds an ordered list of sections. Each section holds an ordered
// list of opaque model items plus supplementary models keyed by kind, such
// as headers and footers. Items are addressed by model.Coordinate, a
// (section, item) position pair; there is no other identity scheme.
//
// # Quick Start
//
//	s := modelstorage.New[string]()
//	s.SetObserver(tableView)                    // optional
//	s.AddItems([]string{"a", "b"})              // section 0
//	s.AddItemToSection("c", 2)                  // creates sections 1 and 2
//	s.InsertItem("x", model.At(0, 1))           // a x b
//	s.SetSupplementaries("header", [][]string{{"Inbox"}, {"Archive"}})
//
//	item, ok := s.ItemAt(model.At(0, 1))        // "x", true
//	at, _ := s.CoordinateOf("c")                // (2:0)
//
// # Growth
//
// Any mutation targeting a section beyond the current count appends empty
// sections up to and including it, so the section list is never sparse.
// Queries never grow the storage.
//
// # Failure Semantics
//
// Mutations never panic or return errors for stale input. Each returns
// true if it changed the storage (or, for ReloadItem, emitted an update):
//
//   - removing, replacing or reloading an absent item is a silent no-op
//   - removing at a missing or negative coordinate is a silent no-op
//   - inserting beyond the end of a section is a no-op reported as a
//     diagnostic (see ErrInsertGap)
//   - adding, inserting, moving or setting items at a negative position,
//     and SectionAt with a negative index, are no-ops reported as a
//     diagnostic (see ErrInvalidCoordinate)
//
// Diagnostics go to the configured Logger at Warn level and can be turned
// off with WithDiagnostics(false) or SetDiagnosticsEnabled(false).
//
// # Observing Changes
//
// Each successful mutation produces one update.Update, delivered
// synchronously before the mutating call returns. Observers implement any
// subset of the capability interfaces in package update; the rest are
// skipped. SetWeakObserver registers an observer without keeping it alive.
//
// # Concurrency
//
// Storage is not safe for concurrent use. Callers that mutate from several
// goroutines must serialize access themselves.
package modelstorage
