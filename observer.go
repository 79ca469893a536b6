package modelstorage

import (
	"weak"

	"github.com/hupe1980/modelstorage/update"
)

// SetObserver registers o to receive updates, replacing any previous
// observer. The storage keeps o alive; use SetWeakObserver for a non-owning
// registration. Passing nil removes the observer.
func (s *Storage[T]) SetObserver(o update.Observer) {
	if isNil(o) {
		s.observer = nil
		return
	}
	s.observer = func() update.Observer { return o }
}

// SetWeakObserver registers o without keeping it alive. Once o has been
// garbage collected, updates are no longer delivered. Passing nil removes
// the observer.
//
// The capabilities are looked up on *O, so O's methods should use pointer
// receivers or be promoted to *O.
func SetWeakObserver[T any, O any](s *Storage[T], o *O) {
	if o == nil {
		s.observer = nil
		return
	}
	wp := weak.Make(o)
	s.observer = func() update.Observer {
		if p := wp.Value(); p != nil {
			return p
		}
		return nil
	}
}

// HasObserver reports whether a live observer is registered.
func (s *Storage[T]) HasObserver() bool {
	return s.resolveObserver() != nil
}

func (s *Storage[T]) resolveObserver() update.Observer {
	if s.observer == nil {
		return nil
	}
	return s.observer()
}
