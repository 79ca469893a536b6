package model

import (
	"cmp"
	"fmt"
)

// Coordinate addresses an item by section position and item position.
type Coordinate struct {
	Section int
	Item    int
}

// At is shorthand for Coordinate{Section: section, Item: item}.
func At(section, item int) Coordinate {
	return Coordinate{Section: section, Item: item}
}

// Valid reports whether both components are non-negative.
func (c Coordinate) Valid() bool {
	return c.Section >= 0 && c.Item >= 0
}

// Compare orders coordinates section-major. It returns -1, 0 or +1.
func (c Coordinate) Compare(o Coordinate) int {
	if r := cmp.Compare(c.Section, o.Section); r != 0 {
		return r
	}
	return cmp.Compare(c.Item, o.Item)
}

// String returns a string representation of the Coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d:%d)", c.Section, c.Item)
}

// Move describes an item relocated from one coordinate to another.
// To is expressed against the state after the item was taken out of From.
type Move struct {
	From Coordinate
	To   Coordinate
}

// String returns a string representation of the Move.
func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}
