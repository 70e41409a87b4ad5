// If you are AI: This file implements the JSON export codec on top of Document.MarshalJSON.

package export

import (
	"bytes"
	"encoding/json"

	"soledit/internal/core/protocol/amf0"
)

// JSON writes documents as JSON objects in key order.
// Undefined and null both become null.
type JSON struct {
	Indent string // Empty for compact output
}

func (JSON) Name() string { return "json" }

func (j JSON) Marshal(doc *amf0.Document) ([]byte, error) {
	if doc == nil {
		doc = amf0.NewDocument()
	}
	out, err := doc.MarshalJSON()
	if err != nil || j.Indent == "" {
		return out, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, out, "", j.Indent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
