// Package view implements ViewProjection: a derived, read-only ordering of a
// record store's contents under a caller-supplied predicate and comparator.
//
// A projection holds record ids only, never records. At every quiescent
// point its id sequence equals sort(filter(store.All(), predicate),
// comparator), with ties broken by ascending id.
package view

import (
	"fmt"
	"sort"

	"github.com/adfharrison1/go-records/pkg/domain"
	"github.com/adfharrison1/go-records/pkg/indexing"
	"github.com/adfharrison1/go-records/pkg/notify"
)

// ViewProjection is a filtered and sorted projection over one record source.
// Several projections may observe the same store; each keeps its own
// predicate, comparator and ordering.
type ViewProjection struct {
	source     domain.RecordSource
	predicate  domain.Predicate
	comparator domain.Comparator
	index      *indexing.RowIndex
	notifier   *notify.Notifier
	handle     domain.SubscriptionHandle
	closed     bool
}

// ViewOption configures a projection at construction
type ViewOption func(*ViewProjection)

// WithFilter sets the initial predicate
func WithFilter(p domain.Predicate) ViewOption {
	return func(v *ViewProjection) {
		v.predicate = p
	}
}

// WithSort sets the initial comparator
func WithSort(c domain.Comparator) ViewOption {
	return func(v *ViewProjection) {
		v.comparator = c
	}
}

// NewViewProjection creates a projection bound to source and subscribes it
// to the source's events. Call Close to detach it.
func NewViewProjection(source domain.RecordSource, options ...ViewOption) *ViewProjection {
	v := &ViewProjection{
		source:   source,
		notifier: notify.New(),
	}

	for _, option := range options {
		option(v)
	}

	v.index = v.compute()
	v.handle = source.Subscribe(v.handleSourceEvent)
	return v
}

// Close detaches the projection from its source. The last computed ordering
// remains readable but no longer tracks the store.
func (v *ViewProjection) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.source.Unsubscribe(v.handle)
}

// SetFilter replaces the predicate and recomputes. A nil predicate accepts
// every record. ViewReset is published only if the ordering changed, so
// repeating a filter is silent.
func (v *ViewProjection) SetFilter(p domain.Predicate) {
	v.predicate = p
	v.refresh(nil)
}

// SetSort replaces the comparator and recomputes. A nil comparator orders by
// ascending id, which is insertion order.
func (v *ViewProjection) SetSort(c domain.Comparator) {
	v.comparator = c
	v.refresh(nil)
}

// RowCount returns the number of presentation rows
func (v *ViewProjection) RowCount() int {
	return v.index.Len()
}

// RecordAt returns the record shown at a presentation row
func (v *ViewProjection) RecordAt(row int) (domain.Record, error) {
	id, err := v.index.IDAt(row)
	if err != nil {
		return domain.Record{}, err
	}
	return v.source.Get(id)
}

// IDAt returns the id shown at a presentation row
func (v *ViewProjection) IDAt(row int) (domain.RecordID, error) {
	return v.index.IDAt(row)
}

// RowOf returns the presentation row of a record, or false if the record is
// filtered out or does not exist.
func (v *ViewProjection) RowOf(id domain.RecordID) (int, bool) {
	return v.index.RowOf(id)
}

// IDs returns the current presentation ordering
func (v *ViewProjection) IDs() []domain.RecordID {
	return v.index.IDs()
}

// SourceRow maps a presentation row to the record's storage row
func (v *ViewProjection) SourceRow(row int) (int, error) {
	id, err := v.index.IDAt(row)
	if err != nil {
		return 0, err
	}
	storageRow, ok := v.source.StorageIndex(id)
	if !ok {
		return 0, fmt.Errorf("record %d: %w", id, domain.ErrNotFound)
	}
	return storageRow, nil
}

// RowFromSource maps a storage row to its presentation row, or false if the
// record there is filtered out.
func (v *ViewProjection) RowFromSource(storageRow int) (int, bool) {
	id, err := v.source.IDAt(storageRow)
	if err != nil {
		return 0, false
	}
	return v.index.RowOf(id)
}

// Subscribe registers a handler for view events
func (v *ViewProjection) Subscribe(h domain.Handler) domain.SubscriptionHandle {
	return v.notifier.Subscribe(h)
}

// Unsubscribe cancels a view subscription
func (v *ViewProjection) Unsubscribe(handle domain.SubscriptionHandle) bool {
	return v.notifier.Unsubscribe(handle)
}

func (v *ViewProjection) handleSourceEvent(e domain.Event) {
	v.refresh(&e)
}

// refresh rebuilds the ordering and publishes the difference. Same ids in the
// same order yield RowsChanged for the visible records the trigger touched;
// any change of membership or order yields ViewReset.
func (v *ViewProjection) refresh(trigger *domain.Event) {
	prev := v.index
	next := v.compute()
	v.index = next

	if !prev.Equal(next) {
		v.notifier.Publish(domain.Event{
			Kind:  domain.ViewReset,
			First: 0,
			Last:  next.Len() - 1,
		})
		return
	}

	if trigger == nil || trigger.Kind != domain.RowsChanged {
		return
	}

	rows := next.Rows(trigger.IDs)
	if len(rows) == 0 {
		return
	}
	ids := make([]domain.RecordID, len(rows))
	for i, row := range rows {
		ids[i], _ = next.IDAt(row)
	}
	v.notifier.Publish(domain.Event{
		Kind:  domain.RowsChanged,
		First: rows[0],
		Last:  rows[len(rows)-1],
		Rows:  rows,
		IDs:   ids,
	})
}

// compute filters the source in storage order and sorts the survivors by the
// comparator, breaking ties by ascending id.
func (v *ViewProjection) compute() *indexing.RowIndex {
	records := v.source.All()

	kept := records[:0]
	for _, r := range records {
		if v.predicate == nil || v.predicate(r) {
			kept = append(kept, r)
		}
	}

	cmp := v.comparator
	sort.Slice(kept, func(i, j int) bool {
		if cmp != nil {
			if c := cmp(kept[i], kept[j]); c != 0 {
				return c < 0
			}
		}
		return kept[i].ID < kept[j].ID
	})

	ids := make([]domain.RecordID, len(kept))
	for i, r := range kept {
		ids[i] = r.ID
	}
	return indexing.NewRowIndex(ids)
}
