// If you are AI: This file computes key-level differences between two decoded documents.
// Nested objects are compared recursively and reported with dotted paths.

package watch

import (
	"soledit/internal/core/protocol/amf0"
)

// Changes lists dotted paths that differ between two documents.
type Changes struct {
	Added   []string
	Removed []string
	Changed []string
}

// Empty reports whether nothing differs.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Changed) == 0
}

// Diff compares prev and next. Added and changed paths follow next's order,
// removed paths follow prev's order. A nil document counts as empty.
func Diff(prev, next *amf0.Document) Changes {
	var c Changes
	diff(prev, next, "", &c)
	return c
}

func diff(prev, next *amf0.Document, prefix string, c *Changes) {
	next.Range(func(k string, nv amf0.Value) bool {
		path := prefix + k
		ov, ok := prev.Get(k)
		if !ok {
			c.Added = append(c.Added, path)
			return true
		}
		oo, oldObj := ov.AsObject()
		no, newObj := nv.AsObject()
		if oldObj && newObj {
			diff(oo, no, path+".", c)
			return true
		}
		if !ov.Equal(nv) {
			c.Changed = append(c.Changed, path)
		}
		return true
	})
	prev.Range(func(k string, _ amf0.Value) bool {
		if !next.Has(k) {
			c.Removed = append(c.Removed, prefix+k)
		}
		return true
	})
}
