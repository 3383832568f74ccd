package domain

import "fmt"

// EventKind classifies a change notification
type EventKind int

const (
	// RowsInserted reports records appended to the store
	RowsInserted EventKind = iota + 1
	// RowsChanged reports records whose field values changed in place
	RowsChanged
	// RowsRemoved reports records deleted from the store
	RowsRemoved
	// ViewReset reports that a projection's whole ordering may have changed
	ViewReset
)

func (k EventKind) String() string {
	switch k {
	case RowsInserted:
		return "rows_inserted"
	case RowsChanged:
		return "rows_changed"
	case RowsRemoved:
		return "rows_removed"
	case ViewReset:
		return "view_reset"
	default:
		return fmt.Sprintf("event_kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is a change notification published by a store or a view.
//
// For store events First and Last are the inclusive storage-row range that
// was affected. For view RowsChanged events Rows lists the presentation rows
// to redraw. ViewReset spans every row of the new ordering (First 0, Last
// rowCount-1, so -1 when the view is empty): the display re-reads everything.
type Event struct {
	Kind  EventKind  `json:"kind"`
	First int        `json:"first"`
	Last  int        `json:"last"`
	Rows  []int      `json:"rows,omitempty"`
	IDs   []RecordID `json:"ids,omitempty"`
}

// Handler receives published events
type Handler func(Event)

// SubscriptionHandle identifies a subscription so it can be cancelled
type SubscriptionHandle uint64

// UnmarshalText implements encoding.TextUnmarshaler
func (k *EventKind) UnmarshalText(text []byte) error {
	for _, candidate := range []EventKind{RowsInserted, RowsChanged, RowsRemoved, ViewReset} {
		if candidate.String() == string(text) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", text)
}
