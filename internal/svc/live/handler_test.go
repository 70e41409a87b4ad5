// If you are AI: This file contains unit tests for the change feed handler.
// Tests verify WebSocket upgrade, event forwarding and subscriber lifecycle.

package live

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"soledit/internal/core/bus"
)

const savePath = "/saves/host/JY2.sol"

func TestLiveHandlerNotFound(t *testing.T) {
	handler := NewHandler(bus.NewRegistry(), savePath, 8, nil)

	req := httptest.NewRequest("GET", "/ws/changes", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestLiveHandlerNoPublisher(t *testing.T) {
	registry := bus.NewRegistry()
	handler := NewHandler(registry, savePath, 8, nil)
	registry.GetOrCreate(bus.NewFeedKey(savePath))

	req := httptest.NewRequest("GET", "/ws/changes?path="+savePath, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 (no publisher), got %d", w.Code)
	}
}

func TestLiveHandlerNoPath(t *testing.T) {
	handler := NewHandler(bus.NewRegistry(), "", 8, nil)

	req := httptest.NewRequest("GET", "/ws/changes", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestLiveHandlerMethod(t *testing.T) {
	handler := NewHandler(bus.NewRegistry(), savePath, 8, nil)

	req := httptest.NewRequest("POST", "/ws/changes", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestLiveHandlerStreamsEvents(t *testing.T) {
	registry := bus.NewRegistry()
	handler := NewHandler(registry, savePath, 8, nil)

	feed, _ := registry.GetOrCreate(bus.NewFeedKey(savePath))
	feed.AttachPublisher(1)

	server := httptest.NewServer(http.HandlerFunc(handler.ServeHTTP))
	defer server.Close()

	wsURL := "ws" + server.URL[4:] + "/ws/changes"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect WebSocket: %v", err)
	}
	defer conn.Close()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Errorf("Expected status 101, got %d", resp.StatusCode)
	}

	var hello Hello
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("Failed to read hello: %v", err)
	}
	if hello.Type != "subscribed" || hello.Path != savePath {
		t.Errorf("Unexpected hello %+v", hello)
	}
	if feed.SubscriberCount() != 1 {
		t.Fatalf("Expected 1 subscriber, got %d", feed.SubscriberCount())
	}

	ev := bus.NewChangeEvent(bus.EventChanged, savePath, time.Unix(1700000000, 0))
	ev.Changed = []string{"v.14"}
	feed.Publish(ev)

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var got bus.ChangeEvent
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("Failed to read event: %v", err)
	}
	if got.Kind != "changed" || len(got.Changed) != 1 || got.Changed[0] != "v.14" {
		t.Errorf("Unexpected event %+v", got)
	}

	// Closing the client detaches the subscriber
	conn.Close()
	deadline := time.Now().Add(3 * time.Second)
	for feed.SubscriberCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("Subscriber was not detached after close")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

type fakeConn struct {
	written []interface{}
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.written = append(c.written, v)
	return nil
}

func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }
func (c *fakeConn) Close() error                     { return nil }

func TestSubscriberHelloReplaysLast(t *testing.T) {
	feed := bus.NewFeed(bus.NewFeedKey(savePath))
	last := bus.NewChangeEvent(bus.EventRemoved, savePath, time.Now())
	feed.Publish(last)

	conn := &fakeConn{}
	sub := NewSubscriber(conn, feed)
	if err := sub.WriteHello(); err != nil {
		t.Fatal(err)
	}
	hello := conn.written[0].(Hello)
	if hello.Last != last {
		t.Error("Hello should carry the last event")
	}

	sub.Attach(4)
	if feed.SubscriberCount() != 1 {
		t.Error("Attach should add a subscriber")
	}
	sub.Detach()
	if feed.SubscriberCount() != 0 {
		t.Error("Detach should remove the subscriber")
	}
}
