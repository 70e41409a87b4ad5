// If you are AI: This file implements the WebSocket subscriber that reads from a feed and writes JSON.
// Subscriber manages the feed attachment and event forwarding.

package live

import (
	"context"
	"time"

	"soledit/internal/core/bus"
)

// writeTimeout bounds each frame write to a slow client.
const writeTimeout = 10 * time.Second

// Hello is the first frame sent on every connection.
type Hello struct {
	Type string           `json:"type"`
	Path string           `json:"path"`
	Last *bus.ChangeEvent `json:"last,omitempty"`
}

// Subscriber represents a change feed WebSocket client.
type Subscriber struct {
	conn          WebSocketConn
	busSubscriber *bus.Subscriber
	feed          *bus.Feed
	subscriberID  uint64
}

// WebSocketConn defines the interface for WebSocket operations.
// This allows for easier testing and abstraction.
type WebSocketConn interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// NewSubscriber creates a new change feed subscriber.
func NewSubscriber(conn WebSocketConn, feed *bus.Feed) *Subscriber {
	return &Subscriber{
		conn: conn,
		feed: feed,
	}
}

// WriteHello announces the feed and replays the last event, if any.
func (s *Subscriber) WriteHello() error {
	return s.write(Hello{Type: "subscribed", Path: s.feed.Key().String(), Last: s.feed.Last()})
}

// ProcessEvents forwards buffered events until ctx is done, closed is closed,
// or a write fails. Returns nil on a clean stop.
func (s *Subscriber) ProcessEvents(ctx context.Context, closed <-chan struct{}) error {
	if s.busSubscriber == nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-closed:
			return nil
		case <-s.busSubscriber.Ready():
		}

		for {
			ev, ok := s.busSubscriber.Buffer().Read()
			if !ok {
				break
			}
			if err := s.write(ev); err != nil {
				return err
			}
		}
	}
}

func (s *Subscriber) write(v interface{}) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return s.conn.WriteJSON(v)
}

// Attach attaches the subscriber to the feed.
// Slow clients drop the oldest events so the watcher never blocks.
func (s *Subscriber) Attach(capacity uint32) uint64 {
	busSub, id := s.feed.AttachSubscriber(capacity, bus.BackpressureDropOldest)
	s.busSubscriber = busSub
	s.subscriberID = id
	return id
}

// Detach detaches the subscriber from the feed.
func (s *Subscriber) Detach() {
	if s.feed != nil && s.subscriberID != 0 {
		s.feed.DetachSubscriber(s.subscriberID)
		s.subscriberID = 0
		s.busSubscriber = nil
	}
}

// Dropped returns how many events this client lost to backpressure.
func (s *Subscriber) Dropped() uint64 {
	if s.busSubscriber == nil {
		return 0
	}
	return s.busSubscriber.Dropped()
}
