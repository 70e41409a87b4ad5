// If you are AI: This file defines AMF0 codec errors.
// Decode errors are recoverable (partial results), encode errors are not.

package amf0

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput means a fixed-size or length-declared field ran past the buffer.
	ErrTruncatedInput = errors.New("amf0: truncated input")
	// ErrKeyTooLong means a key does not fit a 16-bit length prefix.
	ErrKeyTooLong = errors.New("amf0: key exceeds 65535 bytes")
	// ErrValueTooLong means a string value does not fit a 16-bit length prefix.
	ErrValueTooLong = errors.New("amf0: string value exceeds 65535 bytes")
	// ErrEmptyKey means an object property name is empty, which would read back as the end marker.
	ErrEmptyKey = errors.New("amf0: empty key inside object")
)

// DecodeError records where in the buffer decoding stopped.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("amf0: decode at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError records which key could not be encoded. Key is a dotted path for nested values.
type EncodeError struct {
	Key string
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("amf0: encode key %q: %v", e.Key, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
