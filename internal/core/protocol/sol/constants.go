// If you are AI: This file defines SOL (Flash shared object) envelope constants.

package sol

// SOL file magic at offset 0
var Magic = [2]byte{0x00, 0xBF}

// SOL signature following the length field
const Signature = "TCSO"

// Fixed bytes following the signature
var signaturePad = [6]byte{0x00, 0x04, 0x00, 0x00, 0x00, 0x00}

// Bytes before the body-length-covered region (magic + length field)
const lengthPrefixSize = 6

// Minimum header size: magic, length, signature, pad, name length, version
const MinHeaderSize = 2 + 4 + 4 + 6 + 2 + 4

// AMF encoding versions stored in the header
const (
	VersionAMF0 = 0
	VersionAMF3 = 3
)
