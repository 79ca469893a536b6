package model

import (
	"iter"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/modelstorage/internal/conv"
)

// IndexSet is an ordered set of non-negative positions.
// It wraps a 32-bit Roaring Bitmap. The zero value is not usable; use
// NewIndexSet.
type IndexSet struct {
	rb *roaring.Bitmap
}

// NewIndexSet creates a set holding the given positions.
// Negative positions are ignored.
func NewIndexSet(indices ...int) *IndexSet {
	s := &IndexSet{rb: roaring.New()}
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// IndexRange creates a set holding [lo, hi).
func IndexRange(lo, hi int) *IndexSet {
	s := NewIndexSet()
	s.AddRange(lo, hi)
	return s
}

// Add adds a position. Negative positions are ignored.
func (s *IndexSet) Add(i int) {
	v, err := conv.IntToUint32(i)
	if err != nil {
		return
	}
	s.rb.Add(v)
}

// AddRange adds every position in [lo, hi).
func (s *IndexSet) AddRange(lo, hi int) {
	start, end, ok := conv.Span(lo, hi)
	if !ok {
		return
	}
	s.rb.AddRange(start, end)
}

// Remove removes a position.
func (s *IndexSet) Remove(i int) {
	v, err := conv.IntToUint32(i)
	if err != nil {
		return
	}
	s.rb.Remove(v)
}

// Contains reports whether i is in the set.
func (s *IndexSet) Contains(i int) bool {
	if s == nil {
		return false
	}
	v, err := conv.IntToUint32(i)
	if err != nil {
		return false
	}
	return s.rb.Contains(v)
}

// IsEmpty returns true if the set is nil or empty.
func (s *IndexSet) IsEmpty() bool {
	return s == nil || s.rb.IsEmpty()
}

// Len returns the number of positions in the set.
func (s *IndexSet) Len() int {
	if s == nil {
		return 0
	}
	return int(s.rb.GetCardinality())
}

// Clone returns a deep copy of the set.
func (s *IndexSet) Clone() *IndexSet {
	if s == nil {
		return NewIndexSet()
	}
	return &IndexSet{rb: s.rb.Clone()}
}

// Or adds every position of other to s.
func (s *IndexSet) Or(other *IndexSet) {
	if other == nil {
		return
	}
	s.rb.Or(other.rb)
}

// All iterates the set in ascending order.
func (s *IndexSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if s == nil {
			return
		}
		it := s.rb.Iterator()
		for it.HasNext() {
			i, err := conv.Uint32ToInt(it.Next())
			if err != nil {
				return
			}
			if !yield(i) {
				return
			}
		}
	}
}

// Backward iterates the set in descending order.
func (s *IndexSet) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		if s == nil {
			return
		}
		it := s.rb.ReverseIterator()
		for it.HasNext() {
			i, err := conv.Uint32ToInt(it.Next())
			if err != nil {
				return
			}
			if !yield(i) {
				return
			}
		}
	}
}

// Slice returns the positions in ascending order.
func (s *IndexSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for i := range s.All() {
		out = append(out, i)
	}
	return out
}

// String returns a string representation of the set, e.g. "{0 2 5}".
func (s *IndexSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for i := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strconv.Itoa(i))
	}
	b.WriteByte('}')
	return b.String()
}
