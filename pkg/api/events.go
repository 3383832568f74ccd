package api

import (
	"net/http"
	"strconv"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// DefaultEventLogSize is how many view events the API remembers
const DefaultEventLogSize = 256

// LoggedEvent is a view event with its sequence number
type LoggedEvent struct {
	Seq uint64 `json:"seq"`
	domain.Event
}

// EventLog keeps the most recent view events so polling clients can tell
// which rows to redraw. It is guarded by the handler lock.
type EventLog struct {
	capacity int
	events   []LoggedEvent
	seq      uint64
}

// NewEventLog creates a log holding at most capacity events
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultEventLogSize
	}
	return &EventLog{capacity: capacity}
}

// Append records an event, dropping the oldest once full
func (l *EventLog) Append(e domain.Event) {
	l.seq++
	l.events = append(l.events, LoggedEvent{Seq: l.seq, Event: e})
	if len(l.events) > l.capacity {
		l.events = append(l.events[:0:0], l.events[len(l.events)-l.capacity:]...)
	}
}

// Since returns the events with a sequence number greater than seq
func (l *EventLog) Since(seq uint64) []LoggedEvent {
	out := []LoggedEvent{}
	for _, e := range l.events {
		if e.Seq > seq {
			out = append(out, e)
		}
	}
	return out
}

// Last returns the newest sequence number
func (l *EventLog) Last() uint64 {
	return l.seq
}

// EventsResponse carries events newer than the requested sequence
type EventsResponse struct {
	Events []LoggedEvent `json:"events"`
	Last   uint64        `json:"last"`
}

// HandleGetEvents handles GET requests for view events after ?since=N
func (h *Handler) HandleGetEvents(w http.ResponseWriter, r *http.Request) {
	var since uint64
	if v := r.URL.Query().Get("since"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "invalid since "+strconv.Quote(v))
			return
		}
		since = n
	}

	h.mu.Lock()
	response := EventsResponse{Events: h.events.Since(since), Last: h.events.Last()}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, response)
}
