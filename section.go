package modelstorage

import (
	"maps"
	"slices"
)

// Section holds the ordered items of one section plus its supplementary
// models keyed by kind (for example "header" or "footer").
//
// A section is addressed by its position in the Storage. Changing a section
// directly through SetSupplementaries does not notify the observer.
type Section[T any] struct {
	items           []T
	supplementaries map[string][]T
}

func newSection[T any]() *Section[T] {
	return &Section[T]{supplementaries: make(map[string][]T)}
}

// Len returns the number of items in the section.
func (s *Section[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the section's items.
func (s *Section[T]) Items() []T {
	return slices.Clone(s.items)
}

// Item returns the item at position i.
func (s *Section[T]) Item(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Kinds returns the supplementary kinds present in the section, sorted.
func (s *Section[T]) Kinds() []string {
	return slices.Sorted(maps.Keys(s.supplementaries))
}

// Supplementaries returns a copy of the supplementary models of kind.
func (s *Section[T]) Supplementaries(kind string) []T {
	return slices.Clone(s.supplementaries[kind])
}

// Supplementary returns the i-th supplementary model of kind.
func (s *Section[T]) Supplementary(kind string, i int) (T, bool) {
	list := s.supplementaries[kind]
	if i < 0 || i >= len(list) {
		var zero T
		return zero, false
	}
	return list[i], true
}

// SetSupplementaries replaces the supplementary models of kind.
// A nil or empty list removes the kind.
func (s *Section[T]) SetSupplementaries(kind string, models []T) {
	if len(models) == 0 {
		delete(s.supplementaries, kind)
		return
	}
	s.supplementaries[kind] = slices.Clone(models)
}

// replaceSupplementaries is SetSupplementaries reporting whether the stored
// list actually changed under eq.
func (s *Section[T]) replaceSupplementaries(kind string, models []T, eq func(a, b T) bool) bool {
	if slices.EqualFunc(s.supplementaries[kind], models, eq) {
		return false
	}
	s.SetSupplementaries(kind, models)
	return true
}

// deleteAt removes the item at i. An emptied section goes back to a nil
// item list, the same state as a section that never held items.
func (s *Section[T]) deleteAt(i int) T {
	item := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	if len(s.items) == 0 {
		s.items = nil
	}
	return item
}

func (s *Section[T]) indexFunc(match func(i int, item T) bool) int {
	for i, item := range s.items {
		if match(i, item) {
			return i
		}
	}
	return -1
}
