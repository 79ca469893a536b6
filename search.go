package modelstorage

import (
	"slices"

	"github.com/hupe1980/modelstorage/model"
)

// Len returns the number of sections.
func (s *Storage[T]) Len() int {
	return len(s.sections)
}

// Sections returns the current sections in order.
// The returned slice is a copy; the sections themselves are shared.
func (s *Storage[T]) Sections() []*Section[T] {
	return slices.Clone(s.sections)
}

// Section returns the section at index without creating it.
func (s *Storage[T]) Section(index int) (*Section[T], bool) {
	if index < 0 || index >= len(s.sections) {
		return nil, false
	}
	return s.sections[index], true
}

// ItemsInSection returns a copy of the items of a section, or false if the
// section does not exist.
func (s *Storage[T]) ItemsInSection(index int) ([]T, bool) {
	sec, ok := s.Section(index)
	if !ok {
		return nil, false
	}
	return sec.Items(), true
}

// ItemAt returns the item at coordinate, or false if either position is out
// of range.
func (s *Storage[T]) ItemAt(at model.Coordinate) (T, bool) {
	sec, ok := s.Section(at.Section)
	if !ok {
		var zero T
		return zero, false
	}
	return sec.Item(at.Item)
}

// CoordinateOf returns the coordinate of the first item equal to item,
// scanning sections in order and items within a section in order.
func (s *Storage[T]) CoordinateOf(item T) (model.Coordinate, bool) {
	return s.find(item, nil)
}

// SupplementaryAt returns the index-th supplementary model of kind in a
// section, or false if there is none.
func (s *Storage[T]) SupplementaryAt(kind string, section, index int) (T, bool) {
	sec, ok := s.Section(section)
	if !ok {
		var zero T
		return zero, false
	}
	return sec.Supplementary(kind, index)
}

// find returns the first coordinate holding item that accept admits.
// A nil accept admits every coordinate.
func (s *Storage[T]) find(item T, accept func(model.Coordinate) bool) (model.Coordinate, bool) {
	for si, sec := range s.sections {
		i := sec.indexFunc(func(i int, candidate T) bool {
			if !s.equal(candidate, item) {
				return false
			}
			return accept == nil || accept(model.At(si, i))
		})
		if i >= 0 {
			return model.At(si, i), true
		}
	}
	return model.Coordinate{}, false
}
