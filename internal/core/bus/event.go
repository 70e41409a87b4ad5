// If you are AI: This file defines ChangeEvent, the unit flowing through the change bus.
// Events are immutable once published; subscribers share the same pointer.

package bus

import (
	"time"
)

// EventType represents the kind of change observed on a save file.
type EventType uint8

const (
	// EventChanged means the file was rewritten and decoded successfully.
	EventChanged EventType = iota
	// EventRemoved means the file disappeared.
	EventRemoved
	// EventError means the file changed but could not be decoded.
	EventError
)

// ChangeEvent describes one observed change of a save file.
// Paths are dotted key paths ("v.14") in document order.
type ChangeEvent struct {
	Type    EventType `json:"-"`
	Kind    string    `json:"type"`
	Path    string    `json:"path"`
	Time    time.Time `json:"time"`
	Added   []string  `json:"added,omitempty"`
	Removed []string  `json:"removed,omitempty"`
	Changed []string  `json:"changed,omitempty"`
	Err     string    `json:"error,omitempty"`
}

// NewChangeEvent creates an event of the given type for path, stamped with now.
func NewChangeEvent(t EventType, path string, now time.Time) *ChangeEvent {
	return &ChangeEvent{Type: t, Kind: t.String(), Path: path, Time: now}
}

// Empty reports whether a changed event carries no differences.
func (e *ChangeEvent) Empty() bool {
	return e.Type == EventChanged && len(e.Added) == 0 && len(e.Removed) == 0 && len(e.Changed) == 0
}

// String returns a human-readable representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventChanged:
		return "changed"
	case EventRemoved:
		return "removed"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}
