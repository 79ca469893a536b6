package modelstorage

import (
	"runtime"
	"sync"
	"testing"

	"github.com/hupe1980/modelstorage/model"
	"github.com/hupe1980/modelstorage/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSetObserver(t *testing.T) {
	t.Run("Replace", func(t *testing.T) {
		s := New[string](WithLogger(nil))
		first := testutil.NewRecorder()
		second := testutil.NewRecorder()

		s.SetObserver(first)
		s.AddItem("a")
		s.SetObserver(second)
		s.AddItem("b")

		assert.Equal(t, 1, first.Len())
		assert.Equal(t, 1, second.Len())
	})

	t.Run("Remove", func(t *testing.T) {
		s := New[string](WithLogger(nil))
		rec := testutil.NewRecorder()
		s.SetObserver(rec)
		s.SetObserver(nil)
		assert.False(t, s.HasObserver())

		assert.True(t, s.AddItem("a"))
		assert.Equal(t, 0, rec.Len())
	})

	t.Run("TypedNil", func(t *testing.T) {
		s := New[string](WithLogger(nil))
		var rec *testutil.Recorder
		s.SetObserver(rec)
		assert.False(t, s.HasObserver())
		assert.True(t, s.AddItem("a"))
	})
}

func TestSetWeakObserver(t *testing.T) {
	t.Run("Delivers", func(t *testing.T) {
		s := New[string](WithLogger(nil))
		rec := testutil.NewRecorder()
		SetWeakObserver(s, rec)

		s.AddItem("a")
		assert.Equal(t, 1, rec.Len())
		runtime.KeepAlive(rec)
	})

	t.Run("DoesNotKeepAlive", func(t *testing.T) {
		s := New[string](WithLogger(nil))
		func() {
			SetWeakObserver(s, testutil.NewRecorder())
		}()

		runtime.GC()
		runtime.GC()

		assert.False(t, s.HasObserver())
		assert.True(t, s.AddItem("a"))
		assert.Equal(t, []string{"a"}, itemsOf(t, s, 0))
	})

	t.Run("Nil", func(t *testing.T) {
		s := New[string](WithLogger(nil))
		SetWeakObserver[string, testutil.Recorder](s, nil)
		assert.False(t, s.HasObserver())
	})
}

// Storage does no locking of its own; concurrent writers serialize access
// externally.
func TestExternalSerialization(t *testing.T) {
	s := New[int](WithLogger(nil))
	rec := testutil.NewRecorder()
	s.SetObserver(rec)

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	for w := 0; w < 4; w++ {
		g.Go(func() error {
			for i := 0; i < 50; i++ {
				mu.Lock()
				s.AddItemToSection(w*1000+i, w)
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 4, s.Len())
	for w := 0; w < 4; w++ {
		items, ok := s.ItemsInSection(w)
		require.True(t, ok)
		require.Len(t, items, 50)
		assert.Equal(t, w*1000, items[0])
		assert.Equal(t, w*1000+49, items[49])
	}
	assert.Equal(t, 200, rec.Len())

	last, ok := s.ItemAt(model.At(3, 49))
	require.True(t, ok)
	assert.Equal(t, 3049, last)
}
