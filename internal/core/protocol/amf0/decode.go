// If you are AI: This file implements best-effort AMF0 decoding of save bodies.
// Decoding never aborts on unknown markers and returns partial documents on truncation.

package amf0

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strconv"
)

// ErrUnknownMarker is returned by ReadValue when the marker byte is not decodable.
// The marker byte has already been consumed, so the caller can keep reading.
var ErrUnknownMarker = errors.New("amf0: unknown type marker")

// ErrTooDeep is returned when objects nest deeper than MaxDepth.
var ErrTooDeep = errors.New("amf0: objects nested too deeply")

// MaxDepth bounds object nesting below the top level.
const MaxDepth = 64

// Decoder reads AMF0 values from a byte buffer with a single cursor.
type Decoder struct {
	r     *bytes.Reader
	buf   []byte
	depth int
}

// NewDecoder creates a decoder positioned at the start of buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{r: bytes.NewReader(buf), buf: buf}
}

// Offset returns the cursor position.
func (d *Decoder) Offset() int {
	return len(d.buf) - d.r.Len()
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return d.r.Len()
}

// ReadByte reads one raw byte, such as framing padding between values.
func (d *Decoder) ReadByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, ErrTruncatedInput
	}
	return b, nil
}

// Decode parses a top-level save body: a bare sequence of string-tagged keys
// each followed by a tagged value.
// On truncation it returns the pairs decoded so far together with a *DecodeError
// wrapping ErrTruncatedInput.
func Decode(buf []byte) (*Document, error) {
	return NewDecoder(buf).DecodeDocument()
}

// DecodeDocument runs the top-level loop until the buffer is exhausted.
func (d *Decoder) DecodeDocument() (*Document, error) {
	doc := NewDocument()
	for d.r.Len() > 0 {
		start := d.Offset()
		marker, _ := d.r.ReadByte()

		switch marker {
		case TypeString:
			key, err := decodeString(d.r)
			if err != nil {
				return doc, d.fail(start, err)
			}
			if err := d.readPair(doc, key, start); err != nil {
				return doc, err
			}
		case TypeObject:
			// Enclosing root object, as some writers emit. Keys may carry their own tag.
			if err := d.decodePairs(doc, true); err != nil {
				return doc, err
			}
		case TypeObjectEnd:
			// Stray end marker at top level
		case TypeNumber, TypeBoolean, TypeNull, TypeUndefined:
			// Value without a key: keep it under a positional name
			_ = d.r.UnreadByte()
			if err := d.readPair(doc, "value_"+strconv.Itoa(doc.Len()), start); err != nil {
				return doc, err
			}
		default:
			// Recovery: the unknown marker byte is dropped and parsing resumes after it
		}
	}
	return doc, nil
}

// readPair reads one value and stores it under key.
// An unknown value marker drops the pair; a truncated nested object is kept partially.
func (d *Decoder) readPair(doc *Document, key string, start int) error {
	val, err := d.ReadValue()
	switch {
	case err == nil:
		doc.Set(key, val)
		return nil
	case errors.Is(err, ErrUnknownMarker):
		return nil
	default:
		if val.Kind() == KindObject {
			doc.Set(key, val)
		}
		return d.fail(start, err)
	}
}

// ReadValue reads one tagged value.
// Running out of bytes anywhere inside the value is reported as ErrTruncatedInput.
func (d *Decoder) ReadValue() (Value, error) {
	v, err := d.readValue()
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrTruncatedInput
	}
	return v, err
}

func (d *Decoder) readValue() (Value, error) {
	marker, err := d.r.ReadByte()
	if err != nil {
		return Value{}, ErrTruncatedInput
	}

	switch marker {
	case TypeNumber:
		num, err := decodeNumber(d.r)
		if err != nil {
			return Value{}, err
		}
		return Number(num), nil
	case TypeBoolean:
		b, err := decodeBoolean(d.r)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case TypeString:
		s, err := decodeString(d.r)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case TypeLongString:
		s, err := decodeLongString(d.r)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case TypeNull:
		return Null(), nil
	case TypeUndefined:
		return Undefined(), nil
	case TypeObject:
		return d.readObject()
	case TypeECMAArray:
		// ECMA arrays are decoded as objects; the count is advisory
		var count uint32
		if err := binary.Read(d.r, binary.BigEndian, &count); err != nil {
			return Value{}, err
		}
		return d.readObject()
	default:
		return Value{}, ErrUnknownMarker
	}
}

func (d *Decoder) readObject() (Value, error) {
	if d.depth >= MaxDepth {
		return Value{}, ErrTooDeep
	}
	d.depth++
	defer func() { d.depth-- }()
	obj := NewDocument()
	err := d.decodePairs(obj, false)
	return Object(obj), err
}

// ReadKey reads an untagged length-prefixed key.
func (d *Decoder) ReadKey() (string, error) {
	key, err := decodeString(d.r)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrTruncatedInput
	}
	return key, err
}

// decodePairs reads object properties into doc until an empty key followed by
// the end marker, or until the buffer runs out.
// With looseKeys set, a key may be preceded by a string marker.
func (d *Decoder) decodePairs(doc *Document, looseKeys bool) error {
	for d.r.Len() > 0 {
		start := d.Offset()
		if looseKeys && d.keyTagged() {
			_, _ = d.r.ReadByte()
		}
		key, err := decodeString(d.r)
		if err != nil {
			return d.fail(start, err)
		}
		if key == "" {
			marker, err := d.r.ReadByte()
			if err != nil {
				return nil
			}
			if marker == TypeObjectEnd {
				return nil
			}
			_ = d.r.UnreadByte()
		}
		val, err := d.ReadValue()
		switch {
		case err == nil:
			doc.Set(key, val)
		case errors.Is(err, ErrUnknownMarker):
			continue
		default:
			if val.Kind() == KindObject {
				doc.Set(key, val)
			}
			return d.fail(start, err)
		}
	}
	return nil
}

// keyTagged reports whether the loose key at the cursor starts with a string marker.
// That byte is also the high length byte of an untagged key of 512 to 767 bytes,
// so the untagged reading wins only when it alone is followed by a value marker.
func (d *Decoder) keyTagged() bool {
	rest := d.buf[d.Offset():]
	if len(rest) == 0 || rest[0] != TypeString {
		return false
	}
	return followedByMarker(rest[1:]) || !followedByMarker(rest)
}

// followedByMarker reports whether b holds a length-prefixed key and then a known marker.
func followedByMarker(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	end := 2 + int(binary.BigEndian.Uint16(b))
	if end >= len(b) {
		return false
	}
	switch b[end] {
	case TypeNumber, TypeBoolean, TypeString, TypeObject, TypeNull,
		TypeUndefined, TypeECMAArray, TypeObjectEnd, TypeLongString:
		return true
	}
	return false
}

// fail wraps err with the offset of the field that failed.
// End-of-buffer conditions become ErrTruncatedInput.
func (d *Decoder) fail(offset int, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrTruncatedInput
	}
	return &DecodeError{Offset: offset, Err: err}
}
