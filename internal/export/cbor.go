// If you are AI: This file implements the CBOR export codec with fxamacker/cbor/v2.
// Output is RFC 8949 core deterministic, so map keys are sorted rather than kept in document order.

package export

import (
	"github.com/fxamacker/cbor/v2"

	"soledit/internal/core/protocol/amf0"
)

// CBOR writes documents as canonical CBOR.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
type CBOR struct {
	enc cbor.EncMode
}

// NewCBOR constructs a deterministic CBOR codec.
func NewCBOR() (CBOR, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em}, nil
}

// MustCBOR is like NewCBOR but panics on error.
func MustCBOR() CBOR {
	c, err := NewCBOR()
	if err != nil {
		panic(err)
	}
	return c
}

func (CBOR) Name() string { return "cbor" }

func (c CBOR) Marshal(doc *amf0.Document) ([]byte, error) {
	return c.enc.Marshal(doc.Native())
}
