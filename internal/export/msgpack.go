// If you are AI: This file implements the MessagePack export codec with vmihailenco/msgpack/v5.
// Maps are streamed key by key so document order survives.

package export

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"soledit/internal/core/protocol/amf0"
)

// Msgpack writes documents as MessagePack maps in key order.
// Integral numbers within the safe integer range are written as integers.
// The zero value is ready to use.
type Msgpack struct{}

func (Msgpack) Name() string { return "msgpack" }

func (Msgpack) Marshal(doc *amf0.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeDocument(enc, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeDocument(enc *msgpack.Encoder, doc *amf0.Document) error {
	if err := enc.EncodeMapLen(doc.Len()); err != nil {
		return err
	}
	var err error
	doc.Range(func(k string, v amf0.Value) bool {
		if err = enc.EncodeString(k); err != nil {
			return false
		}
		err = encodeValue(enc, v)
		return err == nil
	})
	return err
}

func encodeValue(enc *msgpack.Encoder, v amf0.Value) error {
	switch v.Kind() {
	case amf0.KindNumber:
		if i, ok := v.AsInt(); ok {
			return enc.EncodeInt(i)
		}
		f, _ := v.AsNumber()
		return enc.EncodeFloat64(f)
	case amf0.KindString:
		s, _ := v.AsString()
		return enc.EncodeString(s)
	case amf0.KindBoolean:
		b, _ := v.AsBool()
		return enc.EncodeBool(b)
	case amf0.KindObject:
		sub, _ := v.AsObject()
		return encodeDocument(enc, sub)
	default:
		return enc.EncodeNil()
	}
}
