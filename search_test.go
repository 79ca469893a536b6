package modelstorage

import (
	"testing"

	"github.com/hupe1980/modelstorage/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries(t *testing.T) {
	s, rec := newTestStorage(t)
	s.AddItems([]string{"a", "b"})
	s.AddItemToSection("c", 2)
	s.SetSupplementaries("header", [][]string{{"h0"}})
	rec.Reset()

	t.Run("ItemsInSection", func(t *testing.T) {
		items, ok := s.ItemsInSection(0)
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, items)

		items, ok = s.ItemsInSection(1)
		require.True(t, ok)
		assert.Empty(t, items)

		_, ok = s.ItemsInSection(3)
		assert.False(t, ok)
		_, ok = s.ItemsInSection(-1)
		assert.False(t, ok)
	})

	t.Run("ItemsInSectionReturnsCopy", func(t *testing.T) {
		items, _ := s.ItemsInSection(0)
		items[0] = "mutated"
		item, _ := s.ItemAt(model.At(0, 0))
		assert.Equal(t, "a", item)
	})

	t.Run("ItemAt", func(t *testing.T) {
		item, ok := s.ItemAt(model.At(2, 0))
		require.True(t, ok)
		assert.Equal(t, "c", item)

		for _, at := range []model.Coordinate{model.At(0, 2), model.At(1, 0), model.At(9, 0), model.At(0, -1)} {
			_, ok := s.ItemAt(at)
			assert.False(t, ok, at.String())
		}
	})

	t.Run("CoordinateOf", func(t *testing.T) {
		at, ok := s.CoordinateOf("c")
		require.True(t, ok)
		assert.Equal(t, model.At(2, 0), at)

		_, ok = s.CoordinateOf("missing")
		assert.False(t, ok)
	})

	t.Run("SupplementaryAt", func(t *testing.T) {
		h, ok := s.SupplementaryAt("header", 0, 0)
		require.True(t, ok)
		assert.Equal(t, "h0", h)

		_, ok = s.SupplementaryAt("header", 0, 1)
		assert.False(t, ok)
		_, ok = s.SupplementaryAt("footer", 0, 0)
		assert.False(t, ok)
		_, ok = s.SupplementaryAt("header", 7, 0)
		assert.False(t, ok)
	})

	t.Run("ReadsDoNotGrow", func(t *testing.T) {
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, 0, rec.Len())
	})
}

func TestFirstMatchSearch(t *testing.T) {
	s, _ := newTestStorage(t)
	s.AddItemToSection("dup", 1)
	s.AddItemToSection("dup", 0)

	at, ok := s.CoordinateOf("dup")
	require.True(t, ok)
	assert.Equal(t, model.At(0, 0), at)

	s.AddItemToSection("twice", 1)
	s.AddItemToSection("twice", 1)
	at, ok = s.CoordinateOf("twice")
	require.True(t, ok)
	assert.Equal(t, model.At(1, 1), at)
}

func TestSectionsSnapshot(t *testing.T) {
	s, _ := newTestStorage(t)
	s.SectionAt(1)

	sections := s.Sections()
	require.Len(t, sections, 2)
	sections[0] = nil

	sec, ok := s.Section(0)
	require.True(t, ok)
	assert.NotNil(t, sec)
}
