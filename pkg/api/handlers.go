package api

import (
	"sync"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// Handler provides HTTP handlers for the records API. The store and view are
// single-actor objects, so every handler runs under one lock.
type Handler struct {
	mu     sync.Mutex
	store  domain.RecordStore
	view   domain.RecordView
	events *EventLog
}

// NewHandler creates a new API handler over a store and a view bound to it
func NewHandler(store domain.RecordStore, view domain.RecordView) *Handler {
	h := &Handler{
		store:  store,
		view:   view,
		events: NewEventLog(DefaultEventLogSize),
	}
	view.Subscribe(h.events.Append)
	return h
}

// WithLock runs fn while holding the handler lock, for callers outside HTTP
// (snapshotting, seeding) that touch the same store.
func (h *Handler) WithLock(fn func() error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn()
}
