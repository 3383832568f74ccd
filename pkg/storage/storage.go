package storage

import (
	"fmt"

	"github.com/adfharrison1/go-records/pkg/domain"
	"github.com/adfharrison1/go-records/pkg/notify"
)

// RecordStore is the authoritative, ordered collection of records.
//
// Storage order is insertion order: Insert appends, Update never moves a
// record, and Remove compacts the sequence so every later record's storage
// index drops by one. Every mutation restores these invariants before the
// resulting event is published.
//
// A mutation requested by an event handler while the store is delivering an
// event is validated right away but applied only after that event has
// reached every subscriber, so each subscriber reads the store in the state
// its event describes.
//
// A RecordStore is driven by one logical actor at a time and is not safe
// for concurrent use.
type RecordStore struct {
	schema   domain.Schema
	records  []domain.Record
	index    map[domain.RecordID]int // id -> storage index
	nextID   domain.RecordID
	notifier *notify.Notifier
	pending  []mutation
}

// NewRecordStore creates an empty store. Without options it uses the
// student schema.
func NewRecordStore(options ...StoreOption) *RecordStore {
	store := &RecordStore{
		schema:   domain.StudentSchema(),
		index:    make(map[domain.RecordID]int),
		nextID:   1,
		notifier: notify.New(),
	}

	// Apply options
	for _, option := range options {
		option(store)
	}

	return store
}

// Schema returns the store's field schema
func (rs *RecordStore) Schema() domain.Schema {
	out := make(domain.Schema, len(rs.schema))
	copy(out, rs.schema)
	return out
}

// Len returns the number of live records
func (rs *RecordStore) Len() int {
	return len(rs.records)
}

// Subscribe registers a handler for store events
func (rs *RecordStore) Subscribe(h domain.Handler) domain.SubscriptionHandle {
	return rs.notifier.Subscribe(h)
}

// Unsubscribe cancels a store subscription
func (rs *RecordStore) Unsubscribe(handle domain.SubscriptionHandle) bool {
	return rs.notifier.Unsubscribe(handle)
}

// StorageIndex returns the storage position of a record
func (rs *RecordStore) StorageIndex(id domain.RecordID) (int, bool) {
	i, ok := rs.index[id]
	return i, ok
}

// IDAt returns the id of the record at a storage position
func (rs *RecordStore) IDAt(index int) (domain.RecordID, error) {
	if index < 0 || index >= len(rs.records) {
		return 0, fmt.Errorf("storage index %d of %d: %w", index, len(rs.records), domain.ErrIndexOutOfRange)
	}
	return rs.records[index].ID, nil
}

// NextID returns the id the next insert will mint
func (rs *RecordStore) NextID() domain.RecordID {
	return rs.nextID
}
