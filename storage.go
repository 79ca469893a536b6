package modelstorage

import (
	"reflect"
	"slices"

	"github.com/hupe1980/modelstorage/model"
	"github.com/hupe1980/modelstorage/update"
)

// Operation names used in diagnostics, debug logs and RecordNoop.
const (
	OpSectionAt          = "section_at"
	OpDeleteSections     = "delete_sections"
	OpSetSupplementaries = "set_supplementaries"
	OpAddItem            = "add_item"
	OpAddItems           = "add_items"
	OpInsertItem         = "insert_item"
	OpRemoveItem         = "remove_item"
	OpRemoveItems        = "remove_items"
	OpReplaceItem        = "replace_item"
	OpReloadItem         = "reload_item"
	OpMoveItem           = "move_item"
	OpSetItems           = "set_items"
	OpRemoveAllItems     = "remove_all_items"
)

// Storage is an ordered list of sections, each holding ordered model items.
//
// Sections are created on demand by any mutation that targets them and are
// never sparse. Reads never create sections.
//
// Storage is not safe for concurrent use. All calls, including the observer
// callbacks they trigger, run synchronously on the caller's goroutine.
type Storage[T any] struct {
	sections []*Section[T]
	equal    func(a, b T) bool
	observer func() update.Observer
	logger   *Logger
	diag     *diagnostics
	metrics  MetricsCollector
}

// New creates an empty Storage comparing items with ==.
//
// Comparing interface values holding incomparable dynamic types panics, as
// with ==. Use NewFunc for such item types.
func New[T comparable](optFns ...Option) *Storage[T] {
	return NewFunc(func(a, b T) bool { return a == b }, optFns...)
}

// NewFunc creates an empty Storage comparing items with eq.
func NewFunc[T any](eq func(a, b T) bool, optFns ...Option) *Storage[T] {
	o := applyOptions(optFns)
	return &Storage[T]{
		equal:   eq,
		logger:  o.logger,
		diag:    newDiagnostics(o),
		metrics: o.metricsCollector,
	}
}

// SetDiagnosticsEnabled turns reporting of ignored operations on or off.
func (s *Storage[T]) SetDiagnosticsEnabled(enabled bool) {
	s.diag.enabled = enabled
}

// DiagnosticsEnabled reports whether ignored operations are reported.
func (s *Storage[T]) DiagnosticsEnabled() bool {
	return s.diag.enabled
}

// SectionAt returns the section at index, appending empty sections up to and
// including index if needed. Created sections are reported as inserted.
// A negative index returns nil.
func (s *Storage[T]) SectionAt(index int) *Section[T] {
	if index < 0 {
		s.reject(OpSectionAt, model.At(index, 0), ErrInvalidCoordinate)
		return nil
	}
	u := update.New()
	sec := s.grow(index, u)
	s.commit(OpSectionAt, u)
	return sec
}

// DeleteSections removes the sections in set and shifts later sections down.
// Positions beyond the current count are ignored.
func (s *Storage[T]) DeleteSections(set *model.IndexSet) bool {
	u := update.New()
	for i := range set.Backward() {
		if i >= len(s.sections) {
			continue
		}
		s.sections = slices.Delete(s.sections, i, i+1)
		u.DeletedSections.Add(i)
	}
	return s.commit(OpDeleteSections, u)
}

// SetSupplementaries replaces the supplementary models of kind in every
// section: models[i] becomes section i's list. The storage grows to
// len(models) sections; sections at or beyond len(models) lose kind.
// A nil or empty models clears kind everywhere without creating sections.
func (s *Storage[T]) SetSupplementaries(kind string, models [][]T) bool {
	u := update.New()
	existing := len(s.sections)
	if len(models) > 0 {
		s.grow(len(models)-1, u)
	}
	for i, sec := range s.sections {
		var next []T
		if i < len(models) {
			next = models[i]
		}
		if sec.replaceSupplementaries(kind, next, s.equal) && i < existing {
			u.UpdatedSections.Add(i)
		}
	}
	return s.commit(OpSetSupplementaries, u)
}

// AddItem appends item to section 0.
func (s *Storage[T]) AddItem(item T) bool {
	return s.AddItemToSection(item, 0)
}

// AddItemToSection appends item to the given section.
func (s *Storage[T]) AddItemToSection(item T, section int) bool {
	if section < 0 {
		s.reject(OpAddItem, model.At(section, 0), ErrInvalidCoordinate)
		return false
	}
	u := update.New()
	sec := s.grow(section, u)
	sec.items = append(sec.items, item)
	u.InsertedItems = append(u.InsertedItems, model.At(section, len(sec.items)-1))
	return s.commit(OpAddItem, u)
}

// AddItems appends items to section 0.
func (s *Storage[T]) AddItems(items []T) bool {
	return s.AddItemsToSection(items, 0)
}

// AddItemsToSection appends items, in order, to the given section and
// reports them in a single update.
func (s *Storage[T]) AddItemsToSection(items []T, section int) bool {
	if section < 0 {
		s.reject(OpAddItems, model.At(section, 0), ErrInvalidCoordinate)
		return false
	}
	u := update.New()
	sec := s.grow(section, u)
	for _, item := range items {
		sec.items = append(sec.items, item)
		u.InsertedItems = append(u.InsertedItems, model.At(section, len(sec.items)-1))
	}
	return s.commit(OpAddItems, u)
}

// InsertItem inserts item so that it occupies at afterwards.
//
// If at.Item is greater than the number of items in the section the call
// does nothing and reports ErrInsertGap.
func (s *Storage[T]) InsertItem(item T, at model.Coordinate) bool {
	if !at.Valid() {
		s.reject(OpInsertItem, at, ErrInvalidCoordinate)
		return false
	}
	count := s.countAt(at.Section)
	if at.Item > count {
		s.diag.report(OpInsertItem, coordinateError(OpInsertItem, at, count, ErrInsertGap))
		s.metrics.RecordNoop(OpInsertItem)
		return false
	}
	u := update.New()
	sec := s.grow(at.Section, u)
	sec.items = slices.Insert(sec.items, at.Item, item)
	u.InsertedItems = append(u.InsertedItems, at)
	return s.commit(OpInsertItem, u)
}

// RemoveItemAt removes the item at coordinate. Missing coordinates are ignored.
func (s *Storage[T]) RemoveItemAt(at model.Coordinate) bool {
	return s.removeAt(OpRemoveItem, []model.Coordinate{at})
}

// RemoveItemsAt removes the items at the given coordinates, all interpreted
// against the state before the call. Missing coordinates are ignored.
func (s *Storage[T]) RemoveItemsAt(coordinates ...model.Coordinate) bool {
	return s.removeAt(OpRemoveItems, coordinates)
}

// RemoveItem removes the first item equal to item. Absent items are ignored.
func (s *Storage[T]) RemoveItem(item T) bool {
	c, ok := s.CoordinateOf(item)
	if !ok {
		s.metrics.RecordNoop(OpRemoveItem)
		return false
	}
	return s.removeAt(OpRemoveItem, []model.Coordinate{c})
}

// RemoveItems removes each of items. Every item is matched against the state
// before the call, and equal items claim successive matches. Absent items are
// skipped. All removals are reported in one update.
func (s *Storage[T]) RemoveItems(items []T) bool {
	claimed := make(map[model.Coordinate]struct{}, len(items))
	coords := make([]model.Coordinate, 0, len(items))
	for _, item := range items {
		c, ok := s.find(item, func(c model.Coordinate) bool {
			_, taken := claimed[c]
			return !taken
		})
		if !ok {
			continue
		}
		claimed[c] = struct{}{}
		coords = append(coords, c)
	}
	return s.removeAt(OpRemoveItems, coords)
}

// ReplaceItem puts replacement at the coordinate of the first item equal to
// old. It does nothing if old is absent or replacement is nil.
func (s *Storage[T]) ReplaceItem(old, replacement T) bool {
	if isNil(replacement) {
		s.metrics.RecordNoop(OpReplaceItem)
		return false
	}
	c, ok := s.CoordinateOf(old)
	if !ok {
		s.metrics.RecordNoop(OpReplaceItem)
		return false
	}
	s.sections[c.Section].items[c.Item] = replacement
	u := update.New()
	u.UpdatedItems = append(u.UpdatedItems, c)
	return s.commit(OpReplaceItem, u)
}

// ReloadItem reports the first item equal to item as updated without
// changing the storage.
func (s *Storage[T]) ReloadItem(item T) bool {
	c, ok := s.CoordinateOf(item)
	if !ok {
		s.metrics.RecordNoop(OpReloadItem)
		return false
	}
	u := update.New()
	u.UpdatedItems = append(u.UpdatedItems, c)
	return s.commit(OpReloadItem, u)
}

// MoveItem takes the item at from and inserts it so that it occupies to.
// to is interpreted after the item was taken out. An unknown from or a to
// that would leave a gap does nothing and is reported.
func (s *Storage[T]) MoveItem(from, to model.Coordinate) bool {
	if !from.Valid() {
		s.reject(OpMoveItem, from, ErrInvalidCoordinate)
		return false
	}
	if !to.Valid() {
		s.reject(OpMoveItem, to, ErrInvalidCoordinate)
		return false
	}
	if from.Item >= s.countAt(from.Section) {
		s.diag.report(OpMoveItem, coordinateError(OpMoveItem, from, s.countAt(from.Section), ErrItemNotFound))
		s.metrics.RecordNoop(OpMoveItem)
		return false
	}
	if from == to {
		s.metrics.RecordNoop(OpMoveItem)
		return false
	}

	count := s.countAt(to.Section)
	if to.Section == from.Section {
		count--
	}
	if to.Item > count {
		s.diag.report(OpMoveItem, coordinateError(OpMoveItem, to, count, ErrInsertGap))
		s.metrics.RecordNoop(OpMoveItem)
		return false
	}

	u := update.New()
	src := s.sections[from.Section]
	item := src.deleteAt(from.Item)
	dst := s.grow(to.Section, u)
	dst.items = slices.Insert(dst.items, to.Item, item)
	u.MovedItems = append(u.MovedItems, model.Move{From: from, To: to})
	return s.commit(OpMoveItem, u)
}

// SetItems replaces all items of a section and reports it as reloaded.
func (s *Storage[T]) SetItems(items []T, section int) bool {
	if section < 0 {
		s.reject(OpSetItems, model.At(section, 0), ErrInvalidCoordinate)
		return false
	}
	u := update.New()
	existed := section < len(s.sections)
	sec := s.grow(section, u)
	if existed && slices.EqualFunc(sec.items, items, s.equal) {
		s.metrics.RecordNoop(OpSetItems)
		return false
	}
	sec.items = nil
	if len(items) > 0 {
		sec.items = slices.Clone(items)
	}
	if existed {
		u.UpdatedSections.Add(section)
	}
	return s.commit(OpSetItems, u)
}

// RemoveAllItems empties every section. Sections and their supplementary
// models are kept.
func (s *Storage[T]) RemoveAllItems() bool {
	u := update.New()
	for i, sec := range s.sections {
		if len(sec.items) == 0 {
			continue
		}
		sec.items = nil
		u.UpdatedSections.Add(i)
	}
	return s.commit(OpRemoveAllItems, u)
}

func (s *Storage[T]) removeAt(op string, coords []model.Coordinate) bool {
	valid := make([]model.Coordinate, 0, len(coords))
	for _, c := range coords {
		if c.Valid() && c.Item < s.countAt(c.Section) {
			valid = append(valid, c)
		}
	}
	slices.SortFunc(valid, model.Coordinate.Compare)
	valid = slices.Compact(valid)

	u := update.New()
	for i := len(valid) - 1; i >= 0; i-- {
		c := valid[i]
		s.sections[c.Section].deleteAt(c.Item)
	}
	u.DeletedItems = valid
	return s.commit(op, u)
}

// grow makes sure index exists, recording created sections in u.
func (s *Storage[T]) grow(index int, u *update.Update) *Section[T] {
	for len(s.sections) <= index {
		u.InsertedSections.Add(len(s.sections))
		s.sections = append(s.sections, newSection[T]())
	}
	return s.sections[index]
}

func (s *Storage[T]) countAt(section int) int {
	if section < 0 || section >= len(s.sections) {
		return 0
	}
	return len(s.sections[section].items)
}

func (s *Storage[T]) reject(op string, at model.Coordinate, cause error) {
	s.diag.report(op, coordinateError(op, at, s.countAt(at.Section), cause))
	s.metrics.RecordNoop(op)
}

// commit reports u to metrics, the debug log and the observer. Empty updates
// count as no-ops and are not delivered.
func (s *Storage[T]) commit(op string, u *update.Update) bool {
	if u.IsEmpty() {
		s.metrics.RecordNoop(op)
		return false
	}
	u.Normalize()
	recordUpdate(s.metrics, u)
	s.logger.Debug("storage updated", "op", op, "update", u)
	if obs := s.resolveObserver(); obs != nil {
		update.Deliver(obs, u)
	}
	return true
}

// isNil reports whether v is a nil pointer, interface, map, slice, func or
// channel.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
