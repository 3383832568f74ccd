package storage

import (
	"fmt"
	"log"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// mutation changes the store and returns the event announcing the change.
// ok is false when a queued change no longer applies.
type mutation func() (event domain.Event, ok bool)

// apply runs m and publishes its event. Called from inside a delivery, m is
// queued and the outermost apply runs it once the current event has reached
// every subscriber.
func (rs *RecordStore) apply(m mutation) {
	rs.pending = append(rs.pending, m)
	if rs.notifier.Publishing() {
		return
	}

	// A panicking handler abandons queued mutations
	defer func() { rs.pending = nil }()

	for len(rs.pending) > 0 {
		next := rs.pending[0]
		rs.pending[0] = nil
		rs.pending = rs.pending[1:]

		if event, ok := next(); ok {
			rs.notifier.Publish(event)
		}
	}
}

// Insert validates the fields, appends a new record with a freshly minted id
// and publishes RowsInserted for its storage row. Fields missing from the
// argument take the schema default.
func (rs *RecordStore) Insert(fields domain.Fields) (domain.RecordID, error) {
	validated, err := rs.withDefaults(fields)
	if err != nil {
		return 0, err
	}

	id := rs.nextID
	rs.nextID++

	rs.apply(func() (domain.Event, bool) {
		row := len(rs.records)
		rs.records = append(rs.records, domain.Record{ID: id, Fields: validated})
		rs.index[id] = row

		return domain.Event{
			Kind:  domain.RowsInserted,
			First: row,
			Last:  row,
			IDs:   []domain.RecordID{id},
		}, true
	})
	return id, nil
}

// Update replaces a record's fields in place. Fields absent from the argument
// keep their current value; the merged record is validated as a whole before
// anything changes. The record's id and storage position never change.
func (rs *RecordStore) Update(id domain.RecordID, fields domain.Fields) error {
	row, exists := rs.index[id]
	if !exists {
		return fmt.Errorf("update record %d: %w", id, domain.ErrNotFound)
	}
	if _, err := rs.merge(row, fields); err != nil {
		return err
	}

	rs.apply(func() (domain.Event, bool) {
		row, exists := rs.index[id]
		if !exists {
			log.Printf("WARN: Dropped queued update of record %d: record was removed", id)
			return domain.Event{}, false
		}
		// Earlier queued updates may have changed the record since the check
		validated, err := rs.merge(row, fields)
		if err != nil {
			log.Printf("WARN: Dropped queued update of record %d: %v", id, err)
			return domain.Event{}, false
		}
		rs.records[row].Fields = validated

		return domain.Event{
			Kind:  domain.RowsChanged,
			First: row,
			Last:  row,
			IDs:   []domain.RecordID{id},
		}, true
	})
	return nil
}

// Remove deletes a record and compacts storage order
func (rs *RecordStore) Remove(id domain.RecordID) error {
	if _, exists := rs.index[id]; !exists {
		return fmt.Errorf("remove record %d: %w", id, domain.ErrNotFound)
	}

	rs.apply(func() (domain.Event, bool) {
		row, exists := rs.index[id]
		if !exists {
			return domain.Event{}, false
		}

		copy(rs.records[row:], rs.records[row+1:])
		rs.records[len(rs.records)-1] = domain.Record{}
		rs.records = rs.records[:len(rs.records)-1]

		delete(rs.index, id)
		for i := row; i < len(rs.records); i++ {
			rs.index[rs.records[i].ID] = i
		}

		return domain.Event{
			Kind:  domain.RowsRemoved,
			First: row,
			Last:  row,
			IDs:   []domain.RecordID{id},
		}, true
	})
	return nil
}

// Restore loads previously saved records into an empty store, keeping their
// ids and storage order. Every record is validated before anything changes:
// one rejected record rejects the whole set. The id counter resumes at
// nextID, or past the highest restored id if that is larger, so ids handed
// out before the save are never reissued. A single RowsInserted covering all
// restored rows is published.
func (rs *RecordStore) Restore(records []domain.Record, nextID domain.RecordID) error {
	if len(rs.records) > 0 || len(rs.pending) > 0 {
		return fmt.Errorf("restore into a store holding %d records", len(rs.records))
	}

	restored := make([]domain.Record, len(records))
	var last domain.RecordID
	for i, r := range records {
		if r.ID <= last {
			return fmt.Errorf("restore record %d: ids must be positive and increasing", r.ID)
		}
		validated, err := rs.withDefaults(r.Fields)
		if err != nil {
			return fmt.Errorf("restore record %d: %w", r.ID, err)
		}
		restored[i] = domain.Record{ID: r.ID, Fields: validated}
		last = r.ID
	}

	if last >= nextID {
		nextID = last + 1
	}
	if nextID > rs.nextID {
		rs.nextID = nextID
	}

	if len(restored) == 0 {
		return nil
	}

	rs.apply(func() (domain.Event, bool) {
		ids := make([]domain.RecordID, len(restored))
		for i, r := range restored {
			rs.records = append(rs.records, r)
			rs.index[r.ID] = i
			ids[i] = r.ID
		}

		return domain.Event{
			Kind:  domain.RowsInserted,
			First: 0,
			Last:  len(restored) - 1,
			IDs:   ids,
		}, true
	})
	return nil
}

// Get returns a copy of the record with the given id
func (rs *RecordStore) Get(id domain.RecordID) (domain.Record, error) {
	row, exists := rs.index[id]
	if !exists {
		return domain.Record{}, fmt.Errorf("get record %d: %w", id, domain.ErrNotFound)
	}
	return rs.records[row].Clone(), nil
}

// All returns a snapshot of every record in storage order. The result does
// not alias the store's internal state.
func (rs *RecordStore) All() []domain.Record {
	out := make([]domain.Record, len(rs.records))
	for i, r := range rs.records {
		out[i] = r.Clone()
	}
	return out
}

// FindAll returns the records, in storage order, whose fields match every
// entry of the filter. A nil or empty filter matches everything.
func (rs *RecordStore) FindAll(filter map[string]interface{}) []domain.Record {
	out := []domain.Record{}
	for _, r := range rs.records {
		if len(filter) == 0 || MatchesFilter(r, filter) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (rs *RecordStore) withDefaults(fields domain.Fields) (domain.Fields, error) {
	merged := rs.schema.Defaults()
	for k, v := range fields {
		merged[k] = v
	}
	return rs.schema.Validate(merged)
}

func (rs *RecordStore) merge(row int, fields domain.Fields) (domain.Fields, error) {
	merged := rs.records[row].Fields.Clone()
	for k, v := range fields {
		merged[k] = v
	}
	return rs.schema.Validate(merged)
}
