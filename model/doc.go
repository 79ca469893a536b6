// Package model defines the addressing types used throughout modelstorage.
//
// # Addressing
//
//   - Coordinate: (Section, Item) position of a model item
//   - Move: a Coordinate pair describing a relocated item
//   - IndexSet: ordered set of section positions (Roaring Bitmap)
//
// Positions are the only identity scheme. Deleting a section shifts every
// later section down by one, so a Coordinate is only meaningful against the
// state it was computed from.
//
// # Index Sets
//
//	set := model.NewIndexSet(0, 2)
//	set.AddRange(4, 6) // 4, 5
//	for i := range set.All() {
//	    fmt.Println(i) // 0 2 4 5
//	}
package model
