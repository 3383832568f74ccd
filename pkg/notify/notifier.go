// Package notify provides the synchronous publish/subscribe channel shared by
// record stores and view projections.
//
// Publication is reentrant-safe: a handler that publishes (directly or by
// mutating a store) while an event is being delivered does not recurse.
// The nested event is queued and delivered once the current event has
// reached every subscriber, so delivery is breadth-first and each subscriber
// sees events in publication order.
package notify

import (
	"github.com/adfharrison1/go-records/pkg/domain"
)

type subscription struct {
	handle  domain.SubscriptionHandle
	handler domain.Handler
	active  bool
}

// Notifier is a synchronous, single-actor event channel. It is not safe for
// concurrent use by multiple goroutines.
type Notifier struct {
	subs       []*subscription
	nextHandle domain.SubscriptionHandle
	queue      []domain.Event
	publishing bool
}

// New creates a notifier with no subscribers
func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers a handler. Handlers are invoked in registration order.
// A handler subscribed during delivery receives the events published after
// it subscribed.
func (n *Notifier) Subscribe(h domain.Handler) domain.SubscriptionHandle {
	n.nextHandle++
	n.subs = append(n.subs, &subscription{handle: n.nextHandle, handler: h, active: true})
	return n.nextHandle
}

// Unsubscribe cancels a subscription. It takes effect immediately, including
// for events still queued. Returns false if the handle is unknown.
func (n *Notifier) Unsubscribe(handle domain.SubscriptionHandle) bool {
	for i, s := range n.subs {
		if s.handle == handle {
			s.active = false
			n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of active subscriptions
func (n *Notifier) Len() int {
	return len(n.subs)
}

// Publish delivers an event to every subscriber before returning. When
// called from inside a handler the event is queued and Publish returns
// immediately; the outermost Publish drains the queue.
func (n *Notifier) Publish(e domain.Event) {
	n.queue = append(n.queue, e)
	if n.publishing {
		return
	}

	n.publishing = true
	defer func() {
		n.publishing = false
		// A panicking handler abandons whatever was still queued
		n.queue = nil
	}()

	for len(n.queue) > 0 {
		next := n.queue[0]
		n.queue[0] = domain.Event{}
		n.queue = n.queue[1:]

		// Snapshot so handlers may subscribe or unsubscribe while we iterate
		subs := make([]*subscription, len(n.subs))
		copy(subs, n.subs)
		for _, s := range subs {
			if s.active {
				s.handler(next)
			}
		}
	}
}

// Publishing reports whether a delivery is in progress
func (n *Notifier) Publishing() bool {
	return n.publishing
}
