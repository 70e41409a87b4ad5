// If you are AI: This file implements the Feed type that manages one publisher and its subscribers.
// A feed carries change events for a single save file with non-blocking fanout.

package bus

import (
	"sync"
)

// Feed represents the change stream of one save file.
// It manages one publisher (the watcher) and multiple subscribers.
// Lock expectations: Uses mutex for publisher/subscriber management.
type Feed struct {
	key         FeedKey
	mu          sync.RWMutex
	publisher   *Publisher
	subscribers map[uint64]*Subscriber
	nextSubID   uint64
	last        *ChangeEvent
}

// Publisher represents a feed publisher.
// Only one publisher can be attached to a feed at a time.
type Publisher struct {
	id uint64 // Unique publisher ID
}

// NewFeed creates a new feed with the given key.
func NewFeed(key FeedKey) *Feed {
	return &Feed{
		key:         key,
		subscribers: make(map[uint64]*Subscriber),
		nextSubID:   1,
	}
}

// Key returns the feed's key.
func (f *Feed) Key() FeedKey {
	return f.key
}

// AttachPublisher attaches a publisher to the feed.
// Returns true if attached, false if a publisher is already attached.
func (f *Feed) AttachPublisher(id uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.publisher != nil {
		return false
	}

	f.publisher = &Publisher{id: id}
	return true
}

// DetachPublisher detaches the current publisher from the feed.
func (f *Feed) DetachPublisher() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.publisher = nil
}

// HasPublisher returns true if a publisher is currently attached.
func (f *Feed) HasPublisher() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.publisher != nil
}

// AttachSubscriber attaches a new subscriber to the feed.
// Returns the subscriber and a unique subscriber ID.
func (f *Feed) AttachSubscriber(capacity uint32, strategy BackpressureStrategy) (*Subscriber, uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextSubID
	f.nextSubID++

	sub := NewSubscriber(id, capacity, strategy)
	f.subscribers[id] = sub
	return sub, id
}

// DetachSubscriber detaches a subscriber from the feed.
func (f *Feed) DetachSubscriber(id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subscribers, id)
}

// Publish delivers an event to all subscribers without blocking.
// Lock expectations: Lock held only while recording the event and snapshotting subscribers.
func (f *Feed) Publish(ev *ChangeEvent) {
	if ev == nil {
		return
	}

	f.mu.Lock()
	f.last = ev
	subs := make([]*Subscriber, 0, len(f.subscribers))
	for _, sub := range f.subscribers {
		subs = append(subs, sub)
	}
	f.mu.Unlock()

	// Subscribers must not modify the event
	for _, sub := range subs {
		sub.deliver(ev)
	}
}

// Last returns the most recently published event, or nil.
func (f *Feed) Last() *ChangeEvent {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.last
}

// SubscriberCount returns the number of active subscribers.
func (f *Feed) SubscriberCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscribers)
}

// IsEmpty returns true if the feed has no publisher and no subscribers.
func (f *Feed) IsEmpty() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.publisher == nil && len(f.subscribers) == 0
}
