// If you are AI: This file implements the Registry for managing feed lifecycle.
// The registry maps FeedKey to Feed instances and handles creation/teardown.

package bus

import (
	"sync"
)

// Registry manages the lifecycle of feeds.
// It maps FeedKey to Feed instances and handles creation and teardown.
// Lock expectations: Mutex-protected for concurrent access.
type Registry struct {
	mu    sync.RWMutex
	feeds map[FeedKey]*Feed
}

// NewRegistry creates a new feed registry.
func NewRegistry() *Registry {
	return &Registry{
		feeds: make(map[FeedKey]*Feed),
	}
}

// GetOrCreate retrieves an existing feed or creates a new one.
// Returns the feed and true if it was newly created, false if it already existed.
func (r *Registry) GetOrCreate(key FeedKey) (*Feed, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if feed, exists := r.feeds[key]; exists {
		return feed, false
	}

	feed := NewFeed(key)
	r.feeds[key] = feed
	return feed, true
}

// Get retrieves a feed by key, returning nil if not found.
func (r *Registry) Get(key FeedKey) *Feed {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.feeds[key]
}

// Remove removes a feed from the registry.
// The feed should be empty (no publisher, no subscribers) before removal.
func (r *Registry) Remove(key FeedKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	feed, exists := r.feeds[key]
	if !exists {
		return false
	}

	// Only remove if feed is empty
	if !feed.IsEmpty() {
		return false
	}

	delete(r.feeds, key)
	return true
}

// Count returns the number of active feeds in the registry.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.feeds)
}

// List returns all feed keys in the registry.
func (r *Registry) List() []FeedKey {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]FeedKey, 0, len(r.feeds))
	for key := range r.feeds {
		keys = append(keys, key)
	}
	return keys
}
