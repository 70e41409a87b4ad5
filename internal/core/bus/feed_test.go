// If you are AI: This file contains unit tests for feed fanout and publisher exclusivity.

package bus

import (
	"testing"
	"time"
)

func TestFeedPublisherExclusive(t *testing.T) {
	feed := NewFeed(NewFeedKey("/saves/JY2.sol"))

	if !feed.AttachPublisher(1) {
		t.Fatal("First publisher should attach")
	}
	if feed.AttachPublisher(2) {
		t.Error("Second publisher should be rejected")
	}

	feed.DetachPublisher()
	if feed.HasPublisher() {
		t.Error("Publisher should be detached")
	}
	if !feed.AttachPublisher(2) {
		t.Error("Publisher should attach after detach")
	}
}

func TestFeedFanout(t *testing.T) {
	feed := NewFeed(NewFeedKey("/saves/JY2.sol"))
	sub1, _ := feed.AttachSubscriber(8, BackpressureDropOldest)
	sub2, id2 := feed.AttachSubscriber(8, BackpressureDropOldest)

	ev := NewChangeEvent(EventChanged, "/saves/JY2.sol", time.Unix(0, 0))
	ev.Changed = []string{"v.14"}
	feed.Publish(ev)

	for i, sub := range []*Subscriber{sub1, sub2} {
		select {
		case <-sub.Ready():
		default:
			t.Fatalf("Subscriber %d was not woken", i)
		}
		got, ok := sub.Buffer().Read()
		if !ok || got != ev {
			t.Errorf("Subscriber %d should receive the published event", i)
		}
	}

	feed.DetachSubscriber(id2)
	if feed.SubscriberCount() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", feed.SubscriberCount())
	}
	if feed.Last() != ev {
		t.Error("Last should return the published event")
	}
}

func TestFeedPublishNil(t *testing.T) {
	feed := NewFeed(NewFeedKey("a.sol"))
	sub, _ := feed.AttachSubscriber(4, BackpressureDropOldest)
	feed.Publish(nil)

	if _, ok := sub.Buffer().Read(); ok {
		t.Error("Nil events should not be delivered")
	}
	if feed.Last() != nil {
		t.Error("Nil events should not be recorded")
	}
}

func TestSubscriberProcess(t *testing.T) {
	sub := NewSubscriber(1, 4, BackpressureDropOldest)
	var seen []string
	sub.SetEventHandler(func(ev *ChangeEvent) {
		seen = append(seen, ev.Path)
	})

	for i := 0; i < 6; i++ {
		sub.deliver(testEvent(i))
	}

	if n := sub.Process(10); n != 4 {
		t.Errorf("Expected 4 events processed, got %d", n)
	}
	if sub.Dropped() != 2 {
		t.Errorf("Expected 2 dropped events, got %d", sub.Dropped())
	}
	if seen[0] != eventPath(2) {
		t.Errorf("Oldest events should be dropped first, got %s", seen[0])
	}
}

func TestFeedKey(t *testing.T) {
	key := NewFeedKey("/saves/host/../host/JY2.sol")
	if key.Dir != "/saves/host" || key.Name != "JY2.sol" {
		t.Errorf("Unexpected key %+v", key)
	}
	if key.String() != "/saves/host/JY2.sol" {
		t.Errorf("Unexpected string %s", key.String())
	}
}

func TestChangeEventEmpty(t *testing.T) {
	ev := NewChangeEvent(EventChanged, "a.sol", time.Now())
	if !ev.Empty() {
		t.Error("Event without differences should be empty")
	}
	ev.Added = []string{"x"}
	if ev.Empty() {
		t.Error("Event with additions should not be empty")
	}
	if NewChangeEvent(EventRemoved, "a.sol", time.Now()).Empty() {
		t.Error("Removal events are never empty")
	}
	if EventError.String() != "error" {
		t.Errorf("Unexpected kind %s", EventError.String())
	}
}

func BenchmarkFeedPublish(b *testing.B) {
	feed := NewFeed(NewFeedKey("bench.sol"))
	for i := 0; i < 8; i++ {
		feed.AttachSubscriber(64, BackpressureDropOldest)
	}
	ev := testEvent(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		feed.Publish(ev)
	}
}
