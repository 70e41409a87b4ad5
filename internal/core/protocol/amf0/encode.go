// If you are AI: This file implements AMF0 encoding of save documents.
// The document root is a bare pair sequence; nested objects carry 0x03 and the end marker.

package amf0

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Encoder writes documents to an io.Writer.
// TopLevel selects the bare root layout (string-tagged keys, no enclosing object);
// otherwise the document is written as an AMF0 object value.
type Encoder struct {
	w        io.Writer
	TopLevel bool
}

// NewEncoder creates an encoder for document roots.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, TopLevel: true}
}

// Encode writes the document root as a bare key/value sequence.
// Any oversized key or string aborts the whole encode and no bytes are returned.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeObject writes doc as an AMF0 object value: 0x03, pairs, end marker.
func EncodeObject(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := &Encoder{w: &buf}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes doc according to the TopLevel setting.
// Lengths are validated before anything is written.
func (e *Encoder) Encode(doc *Document) error {
	if err := Validate(doc); err != nil {
		return err
	}
	if e.TopLevel {
		var err error
		doc.Range(func(k string, v Value) bool {
			if err = encodeKey(e.w, k, true); err != nil {
				return false
			}
			err = EncodeValue(e.w, v)
			return err == nil
		})
		return err
	}
	return encodeObject(e.w, doc)
}

// Validate checks every key and string in doc against the 16-bit length limit.
// It returns an *EncodeError naming the first offending key.
func Validate(doc *Document) error {
	return validate(doc, "", true)
}

func validate(doc *Document, prefix string, root bool) error {
	var err error
	doc.Range(func(k string, v Value) bool {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch {
		case len(k) > MaxStringLen:
			err = &EncodeError{Key: path, Err: ErrKeyTooLong}
		case k == "" && !root:
			err = &EncodeError{Key: path, Err: ErrEmptyKey}
		case v.kind == KindString && len(v.str) > MaxStringLen:
			err = &EncodeError{Key: path, Err: ErrValueTooLong}
		case v.kind == KindObject:
			err = validate(v.obj, path, false)
		}
		return err == nil
	})
	return err
}

// EncodeValue writes one tagged value.
func EncodeValue(w io.Writer, v Value) error {
	switch v.kind {
	case KindNumber:
		return encodeNumber(w, v.num)
	case KindString:
		return encodeString(w, v.str)
	case KindBoolean:
		return encodeBoolean(w, v.b)
	case KindNull:
		return encodeMarker(w, TypeNull)
	case KindObject:
		return encodeObject(w, v.obj)
	default:
		return encodeMarker(w, TypeUndefined)
	}
}

// EncodeKey writes an untagged length-prefixed key.
func EncodeKey(w io.Writer, key string) error {
	return encodeKey(w, key, false)
}

func encodeKey(w io.Writer, key string, tagged bool) error {
	if len(key) > MaxStringLen {
		return ErrKeyTooLong
	}
	if tagged {
		if err := encodeMarker(w, TypeString); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(key))); err != nil {
		return err
	}
	_, err := io.WriteString(w, key)
	return err
}

func encodeMarker(w io.Writer, marker byte) error {
	return binary.Write(w, binary.BigEndian, marker)
}

// encodeNumber encodes an AMF0 number.
func encodeNumber(w io.Writer, num float64) error {
	if err := encodeMarker(w, TypeNumber); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, num)
}

// encodeBoolean encodes an AMF0 boolean.
func encodeBoolean(w io.Writer, b bool) error {
	if err := encodeMarker(w, TypeBoolean); err != nil {
		return err
	}
	var val byte
	if b {
		val = 1
	}
	return binary.Write(w, binary.BigEndian, val)
}

// encodeString encodes an AMF0 string.
func encodeString(w io.Writer, s string) error {
	if len(s) > MaxStringLen {
		return ErrValueTooLong
	}
	if err := encodeMarker(w, TypeString); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// encodeObject encodes an AMF0 object with untagged property names.
func encodeObject(w io.Writer, obj *Document) error {
	if err := encodeMarker(w, TypeObject); err != nil {
		return err
	}
	var err error
	obj.Range(func(k string, v Value) bool {
		if k == "" {
			err = ErrEmptyKey
			return false
		}
		if err = encodeKey(w, k, false); err != nil {
			return false
		}
		err = EncodeValue(w, v)
		return err == nil
	})
	if err != nil {
		return err
	}
	// Object end marker
	if err := binary.Write(w, binary.BigEndian, uint16(0)); err != nil {
		return err
	}
	return encodeMarker(w, TypeObjectEnd)
}
