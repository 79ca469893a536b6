// Package update describes changes made to a modelstorage.Storage and
// delivers them to an observer.
//
// Every successful mutation produces exactly one Update. Observers opt in to
// the callbacks they care about by implementing any subset of the capability
// interfaces in this package; callbacks an observer does not implement are
// skipped.
//
// # Delivery Order
//
// Deliver invokes callbacks in a fixed order so that an observer can apply
// them one by one against its own copy of the pre-mutation state:
//
//  1. Performer.PerformUpdate (the whole Update)
//  2. BatchBeginner.BeginUpdates
//  3. SectionRemover.SectionRemoved, descending
//  4. SectionInserter.SectionInserted, ascending
//  5. SectionReloader.SectionReloaded, ascending
//  6. ItemRemover.ItemRemoved, descending
//  7. ItemInserter.ItemInserted, ascending
//  8. ItemUpdater.ItemUpdated, ascending
//  9. ItemMover.ItemMoved, in mutation order
//  10. BatchEnder.EndUpdates
//
// Removed coordinates refer to the state before the mutation, inserted and
// updated coordinates to the state after it. This matches how list and grid
// controls expect batched updates.
package update
