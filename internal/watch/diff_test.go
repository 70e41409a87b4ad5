// If you are AI: This file tests document diffs used for change events.

package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"soledit/internal/core/protocol/amf0"
)

func TestDiff(t *testing.T) {
	prevV := amf0.NewDocument()
	prevV.Set("14", amf0.Number(100))
	prevV.Set("15", amf0.Number(1))
	prev := amf0.NewDocument()
	prev.Set("gold", amf0.Number(10))
	prev.Set("v", amf0.Object(prevV))
	prev.Set("old", amf0.Null())
	prev.Set("n", amf0.Number(1))

	nextV := amf0.NewDocument()
	nextV.Set("14", amf0.Number(999))
	nextV.Set("16", amf0.Number(5))
	next := amf0.NewDocument()
	next.Set("gold", amf0.Number(10))
	next.Set("v", amf0.Object(nextV))
	next.Set("n", amf0.String("1"))
	next.Set("fresh", amf0.Bool(true))

	c := Diff(prev, next)
	assert.Equal(t, []string{"v.16", "fresh"}, c.Added)
	assert.Equal(t, []string{"v.15", "old"}, c.Removed)
	assert.Equal(t, []string{"v.14", "n"}, c.Changed)
	assert.False(t, c.Empty())
}

func TestDiffIdenticalAndNil(t *testing.T) {
	doc := amf0.NewDocument()
	doc.Set("a", amf0.Number(1))
	assert.True(t, Diff(doc, doc.Clone()).Empty())

	c := Diff(nil, doc)
	assert.Equal(t, []string{"a"}, c.Added)
	c = Diff(doc, nil)
	assert.Equal(t, []string{"a"}, c.Removed)
}
