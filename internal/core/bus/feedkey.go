// If you are AI: This file defines FeedKey for uniquely identifying watched save files.
// FeedKey is used as a map key in the registry.

package bus

import (
	"path/filepath"
)

// FeedKey identifies a feed by directory and file name.
// It is comparable and can be used as a map key.
type FeedKey struct {
	Dir  string // Directory holding the save (e.g., ".../#SharedObjects/4NET8CUM/host")
	Name string // File name (e.g., "JY2.sol")
}

// String returns the joined path.
func (k FeedKey) String() string {
	return filepath.Join(k.Dir, k.Name)
}

// NewFeedKey creates a FeedKey from a file path. The path is cleaned first.
func NewFeedKey(path string) FeedKey {
	path = filepath.Clean(path)
	return FeedKey{
		Dir:  filepath.Dir(path),
		Name: filepath.Base(path),
	}
}
