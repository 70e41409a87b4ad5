// If you are AI: This file contains unit tests for the registry.

package bus

import (
	"testing"
)

func TestRegistryGetOrCreate(t *testing.T) {
	reg := NewRegistry()

	key := NewFeedKey("/saves/JY2.sol")

	// Create new feed
	feed1, created := reg.GetOrCreate(key)
	if !created {
		t.Error("First GetOrCreate should create new feed")
	}
	if feed1 == nil {
		t.Error("Feed should not be nil")
	}

	// Get existing feed
	feed2, created := reg.GetOrCreate(key)
	if created {
		t.Error("Second GetOrCreate should not create new feed")
	}
	if feed1 != feed2 {
		t.Error("GetOrCreate should return same feed instance")
	}

	if reg.Count() != 1 {
		t.Errorf("Expected 1 feed, got %d", reg.Count())
	}
}

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()

	key := NewFeedKey("/saves/JY2.sol")

	// Get non-existent feed
	feed := reg.Get(key)
	if feed != nil {
		t.Error("Get should return nil for non-existent feed")
	}

	// Create feed
	reg.GetOrCreate(key)

	// Get existing feed
	feed = reg.Get(key)
	if feed == nil {
		t.Error("Get should return feed after creation")
	}
}

func TestRegistryRemove(t *testing.T) {
	reg := NewRegistry()

	key := NewFeedKey("/saves/JY2.sol")

	// Remove non-existent feed
	if reg.Remove(key) {
		t.Error("Remove should return false for non-existent feed")
	}

	// Create empty feed
	reg.GetOrCreate(key)

	// Remove empty feed
	if !reg.Remove(key) {
		t.Error("Remove should succeed for empty feed")
	}

	if reg.Count() != 0 {
		t.Errorf("Expected 0 feeds, got %d", reg.Count())
	}
}

func TestRegistryRemoveNonEmpty(t *testing.T) {
	reg := NewRegistry()

	key := NewFeedKey("/saves/JY2.sol")
	feed, _ := reg.GetOrCreate(key)

	// Attach publisher
	feed.AttachPublisher(1)

	// Remove should fail (feed not empty)
	if reg.Remove(key) {
		t.Error("Remove should fail for non-empty feed")
	}

	if reg.Count() != 1 {
		t.Errorf("Expected 1 feed, got %d", reg.Count())
	}

	// Detach publisher
	feed.DetachPublisher()

	// Now remove should succeed
	if !reg.Remove(key) {
		t.Error("Remove should succeed after feed is empty")
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry()

	key1 := NewFeedKey("/saves/JY1.sol")
	key2 := NewFeedKey("/saves/JY2.sol")

	reg.GetOrCreate(key1)
	reg.GetOrCreate(key2)

	keys := reg.List()
	if len(keys) != 2 {
		t.Errorf("Expected 2 feeds, got %d", len(keys))
	}

	// Verify both keys are present
	found1 := false
	found2 := false
	for _, k := range keys {
		if k == key1 {
			found1 = true
		}
		if k == key2 {
			found2 = true
		}
	}

	if !found1 || !found2 {
		t.Error("List should contain both feeds")
	}
}
