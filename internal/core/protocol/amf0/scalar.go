// If you are AI: This file implements the AMF0 scalar readers used by the decoder.
// Length-prefixed strings are validated as UTF-8 with invalid bytes replaced.

package amf0

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"
)

// decodeNumber decodes an AMF0 number (double precision float64).
func decodeNumber(r io.Reader) (float64, error) {
	var num float64
	err := binary.Read(r, binary.BigEndian, &num)
	return num, err
}

// decodeBoolean decodes an AMF0 boolean.
func decodeBoolean(r io.Reader) (bool, error) {
	var b byte
	if err := binary.Read(r, binary.BigEndian, &b); err != nil {
		return false, err
	}
	return b != 0, nil
}

// decodeString decodes a 16-bit length-prefixed string.
// Invalid UTF-8 sequences are replaced with U+FFFD.
func decodeString(r io.Reader) (string, error) {
	var length uint16
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return "", err
	}
	return readText(r, int(length))
}

// decodeLongString decodes a 32-bit length-prefixed string.
func decodeLongString(r *bytes.Reader) (string, error) {
	var length uint32
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return "", err
	}
	if int64(length) > int64(r.Len()) {
		return "", ErrTruncatedInput
	}
	return readText(r, int(length))
}

func readText(r io.Reader, n int) (string, error) {
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(buf), "\uFFFD"), nil
}
