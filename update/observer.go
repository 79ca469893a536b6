package update

import "github.com/hupe1980/modelstorage/model"

// Observer is any value implementing zero or more of the capability
// interfaces below.
type Observer = any

// Performer receives every Update as a whole before the fine-grained callbacks.
type Performer interface {
	PerformUpdate(u *Update)
}

// BatchBeginner is told that a group of callbacks is about to start.
type BatchBeginner interface {
	BeginUpdates()
}

// BatchEnder is told that the group of callbacks is complete.
type BatchEnder interface {
	EndUpdates()
}

// SectionRemover is notified for every deleted section position.
type SectionRemover interface {
	SectionRemoved(section int)
}

// SectionInserter is notified for every inserted section position.
type SectionInserter interface {
	SectionInserted(section int)
}

// SectionReloader is notified for every section whose content was replaced.
type SectionReloader interface {
	SectionReloaded(section int)
}

// ItemRemover is notified for every removed item.
type ItemRemover interface {
	ItemRemoved(at model.Coordinate)
}

// ItemInserter is notified for every inserted item.
type ItemInserter interface {
	ItemInserted(at model.Coordinate)
}

// ItemUpdater is notified for every item that was replaced or reloaded in place.
type ItemUpdater interface {
	ItemUpdated(at model.Coordinate)
}

// ItemMover is notified for every moved item.
type ItemMover interface {
	ItemMoved(from, to model.Coordinate)
}

// Deliver dispatches u to whichever capabilities observer implements.
// It returns false if observer is nil, u is empty, or observer implements
// none of the capabilities.
func Deliver(observer Observer, u *Update) bool {
	if observer == nil || u.IsEmpty() {
		return false
	}

	delivered := false

	if p, ok := observer.(Performer); ok {
		p.PerformUpdate(u)
		delivered = true
	}

	if b, ok := observer.(BatchBeginner); ok {
		b.BeginUpdates()
		delivered = true
	}

	if r, ok := observer.(SectionRemover); ok {
		for i := range u.DeletedSections.Backward() {
			r.SectionRemoved(i)
			delivered = true
		}
	}

	if ins, ok := observer.(SectionInserter); ok {
		for i := range u.InsertedSections.All() {
			ins.SectionInserted(i)
			delivered = true
		}
	}

	if rl, ok := observer.(SectionReloader); ok {
		for i := range u.UpdatedSections.All() {
			rl.SectionReloaded(i)
			delivered = true
		}
	}

	if r, ok := observer.(ItemRemover); ok {
		for i := len(u.DeletedItems) - 1; i >= 0; i-- {
			r.ItemRemoved(u.DeletedItems[i])
			delivered = true
		}
	}

	if ins, ok := observer.(ItemInserter); ok {
		for _, c := range u.InsertedItems {
			ins.ItemInserted(c)
			delivered = true
		}
	}

	if up, ok := observer.(ItemUpdater); ok {
		for _, c := range u.UpdatedItems {
			up.ItemUpdated(c)
			delivered = true
		}
	}

	if m, ok := observer.(ItemMover); ok {
		for _, mv := range u.MovedItems {
			m.ItemMoved(mv.From, mv.To)
			delivered = true
		}
	}

	if e, ok := observer.(BatchEnder); ok {
		e.EndUpdates()
		delivered = true
	}

	return delivered
}
