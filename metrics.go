package modelstorage

import (
	"sync/atomic"

	"github.com/hupe1980/modelstorage/update"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Every committed update is reported once per category it contains; ignored
// operations are reported through RecordNoop.
type MetricsCollector interface {
	// RecordInsert is called with the number of inserted items.
	RecordInsert(count int)

	// RecordRemove is called with the number of removed items.
	RecordRemove(count int)

	// RecordUpdate is called with the number of items updated in place.
	RecordUpdate(count int)

	// RecordMove is called with the number of moved items.
	RecordMove(count int)

	// RecordSectionInsert is called with the number of created sections.
	RecordSectionInsert(count int)

	// RecordSectionDelete is called with the number of deleted sections.
	RecordSectionDelete(count int)

	// RecordSectionReload is called with the number of reloaded sections.
	RecordSectionReload(count int)

	// RecordNoop is called when a mutation changed nothing.
	RecordNoop(op string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(int)        {}
func (NoopMetricsCollector) RecordRemove(int)        {}
func (NoopMetricsCollector) RecordUpdate(int)        {}
func (NoopMetricsCollector) RecordMove(int)          {}
func (NoopMetricsCollector) RecordSectionInsert(int) {}
func (NoopMetricsCollector) RecordSectionDelete(int) {}
func (NoopMetricsCollector) RecordSectionReload(int) {}
func (NoopMetricsCollector) RecordNoop(string)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Counters are atomic so they can be read from another goroutine while the
// owning goroutine mutates the storage.
type BasicMetricsCollector struct {
	Inserted         atomic.Int64
	Removed          atomic.Int64
	Updated          atomic.Int64
	Moved            atomic.Int64
	SectionsInserted atomic.Int64
	SectionsDeleted  atomic.Int64
	SectionsReloaded atomic.Int64
	Noops            atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(count int) { b.Inserted.Add(int64(count)) }

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(count int) { b.Removed.Add(int64(count)) }

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(count int) { b.Updated.Add(int64(count)) }

// RecordMove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMove(count int) { b.Moved.Add(int64(count)) }

// RecordSectionInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSectionInsert(count int) {
	b.SectionsInserted.Add(int64(count))
}

// RecordSectionDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSectionDelete(count int) {
	b.SectionsDeleted.Add(int64(count))
}

// RecordSectionReload implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSectionReload(count int) {
	b.SectionsReloaded.Add(int64(count))
}

// RecordNoop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNoop(string) { b.Noops.Add(1) }

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		Inserted:         b.Inserted.Load(),
		Removed:          b.Removed.Load(),
		Updated:          b.Updated.Load(),
		Moved:            b.Moved.Load(),
		SectionsInserted: b.SectionsInserted.Load(),
		SectionsDeleted:  b.SectionsDeleted.Load(),
		SectionsReloaded: b.SectionsReloaded.Load(),
		Noops:            b.Noops.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	Inserted         int64
	Removed          int64
	Updated          int64
	Moved            int64
	SectionsInserted int64
	SectionsDeleted  int64
	SectionsReloaded int64
	Noops            int64
}

func recordUpdate(mc MetricsCollector, u *update.Update) {
	if n := len(u.InsertedItems); n > 0 {
		mc.RecordInsert(n)
	}
	if n := len(u.DeletedItems); n > 0 {
		mc.RecordRemove(n)
	}
	if n := len(u.UpdatedItems); n > 0 {
		mc.RecordUpdate(n)
	}
	if n := len(u.MovedItems); n > 0 {
		mc.RecordMove(n)
	}
	if n := u.InsertedSections.Len(); n > 0 {
		mc.RecordSectionInsert(n)
	}
	if n := u.DeletedSections.Len(); n > 0 {
		mc.RecordSectionDelete(n)
	}
	if n := u.UpdatedSections.Len(); n > 0 {
		mc.RecordSectionReload(n)
	}
}
