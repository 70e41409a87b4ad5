// If you are AI: This file implements SOL file parsing and writing around the AMF0 codec.
// Framed files carry a TCSO header; bare bodies are handed to amf0.Decode unchanged.

package sol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"soledit/internal/core/protocol/amf0"
)

var (
	// ErrUnsupportedVersion means the body is AMF3 encoded.
	ErrUnsupportedVersion = errors.New("sol: unsupported AMF version")
	// ErrBadHeader means the buffer starts like a SOL file but the header is malformed.
	ErrBadHeader = errors.New("sol: malformed header")
	// ErrNameTooLong means the shared object name does not fit a 16-bit length.
	ErrNameTooLong = errors.New("sol: name exceeds 65535 bytes")
)

// File is a parsed save file.
// Framed is false for bare bodies, which are written back without a header.
type File struct {
	Name    string
	Version uint32
	Framed  bool
	Body    *amf0.Document
}

// NewFile creates a framed AMF0 file with an empty body.
func NewFile(name string) *File {
	return &File{Name: name, Version: VersionAMF0, Framed: true, Body: amf0.NewDocument()}
}

// IsFramed reports whether buf starts with a SOL header.
func IsFramed(buf []byte) bool {
	return len(buf) >= 10 && buf[0] == Magic[0] && buf[1] == Magic[1] &&
		string(buf[6:10]) == Signature
}

// Parse decodes a save file. Truncated bodies yield a partial File together with
// an error wrapping amf0.ErrTruncatedInput; header errors yield a nil File.
func Parse(buf []byte) (*File, error) {
	if !IsFramed(buf) {
		body, err := amf0.Decode(buf)
		return &File{Version: VersionAMF0, Body: body}, err
	}

	h, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}
	if h.version != VersionAMF0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.version)
	}

	f := &File{Name: h.name, Version: h.version, Framed: true}
	f.Body, err = decodeBody(buf[h.size:], h.size)
	return f, err
}

type header struct {
	name    string
	version uint32
	size    int
}

// parseHeader reads magic, length, signature, name and version.
// The declared length is not trusted; truncation surfaces while decoding the body.
func parseHeader(buf []byte) (header, error) {
	if len(buf) < MinHeaderSize {
		return header{}, ErrBadHeader
	}
	off := lengthPrefixSize + len(Signature)
	if !bytes.Equal(buf[off:off+len(signaturePad)], signaturePad[:]) {
		return header{}, ErrBadHeader
	}
	off += len(signaturePad)

	nameLen := int(binary.BigEndian.Uint16(buf[off : off+2]))
	off += 2
	if nameLen > len(buf)-off-4 {
		return header{}, ErrBadHeader
	}
	name := string(buf[off : off+nameLen])
	off += nameLen

	version := binary.BigEndian.Uint32(buf[off : off+4])
	off += 4
	return header{name: name, version: version, size: off}, nil
}

// decodeBody reads untagged key, tagged value, padding byte triples.
func decodeBody(buf []byte, base int) (*amf0.Document, error) {
	doc := amf0.NewDocument()
	d := amf0.NewDecoder(buf)
	for d.Remaining() > 0 {
		start := d.Offset()
		key, err := d.ReadKey()
		if err != nil {
			return doc, &amf0.DecodeError{Offset: base + start, Err: err}
		}
		val, err := d.ReadValue()
		switch {
		case errors.Is(err, amf0.ErrUnknownMarker):
			continue
		case err != nil:
			if val.Kind() == amf0.KindObject {
				doc.Set(key, val)
			}
			return doc, &amf0.DecodeError{Offset: base + start, Err: err}
		}
		doc.Set(key, val)
		if d.Remaining() > 0 {
			_, _ = d.ReadByte()
		}
	}
	return doc, nil
}

// Bytes encodes the file. Bare files encode through amf0.Encode.
// Nothing is returned when any key or value is too long.
func (f *File) Bytes() ([]byte, error) {
	if !f.Framed {
		return amf0.Encode(f.Body)
	}
	if f.Version != VersionAMF0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	if len(f.Name) > math.MaxUint16 {
		return nil, ErrNameTooLong
	}
	if err := amf0.Validate(f.Body); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	body.WriteString(Signature)
	body.Write(signaturePad[:])
	_ = binary.Write(&body, binary.BigEndian, uint16(len(f.Name)))
	body.WriteString(f.Name)
	_ = binary.Write(&body, binary.BigEndian, f.Version)

	var err error
	f.Body.Range(func(k string, v amf0.Value) bool {
		if err = amf0.EncodeKey(&body, k); err != nil {
			return false
		}
		if err = amf0.EncodeValue(&body, v); err != nil {
			return false
		}
		body.WriteByte(0x00)
		return true
	})
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, lengthPrefixSize+body.Len())
	out = append(out, Magic[:]...)
	out = binary.BigEndian.AppendUint32(out, uint32(body.Len()))
	return append(out, body.Bytes()...), nil
}
