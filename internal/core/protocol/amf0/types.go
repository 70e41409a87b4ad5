// If you are AI: This file defines AMF0 type markers and the tagged Value union.
// Only the marker subset found in game save bodies is modelled as values.

package amf0

import (
	"fmt"
	"math"
	"strconv"
)

// AMF0 type markers
const (
	TypeNumber      = 0x00
	TypeBoolean     = 0x01
	TypeString      = 0x02
	TypeObject      = 0x03
	TypeNull        = 0x05
	TypeUndefined   = 0x06
	TypeReference   = 0x07
	TypeECMAArray   = 0x08
	TypeObjectEnd   = 0x09
	TypeStrictArray = 0x0A
	TypeDate        = 0x0B
	TypeLongString  = 0x0C
	TypeXMLDocument = 0x0F
	TypeTypedObject = 0x10
)

// MaxStringLen is the largest byte length a 16-bit length prefix can carry.
const MaxStringLen = math.MaxUint16

// MaxSafeInteger is the largest integer magnitude a Number holds without loss (2^53).
const MaxSafeInteger = 1 << 53

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNumber
	KindString
	KindBoolean
	KindNull
	KindObject
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindObject:
		return "object"
	default:
		return "undefined"
	}
}

// Value is a decoded AMF0 value. The zero Value is Undefined.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	obj  *Document
}

// Number returns a Number value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int returns a Number value holding i converted to float64.
// Magnitudes above MaxSafeInteger lose precision silently.
func Int(i int64) Value { return Number(float64(i)) }

// String returns a String value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a Boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Undefined returns the Undefined value.
func Undefined() Value { return Value{kind: KindUndefined} }

// Object returns a nested object value. A nil document is replaced by an empty one.
func Object(doc *Document) Value {
	if doc == nil {
		doc = NewDocument()
	}
	return Value{kind: KindObject, obj: doc}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsNumber returns the number and true if v is a Number.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsString returns the text and true if v is a String.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsBool returns the boolean and true if v is a Boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBoolean }

// AsObject returns the nested document and true if v is an Object.
func (v Value) AsObject() (*Document, bool) { return v.obj, v.kind == KindObject }

// AsInt returns the number as an int64 when v is an integral Number
// no larger in magnitude than MaxSafeInteger.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindNumber || v.num != math.Trunc(v.num) || math.Abs(v.num) > MaxSafeInteger {
		return 0, false
	}
	return int64(v.num), true
}

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Equal reports deep equality. Numbers compare by bit pattern so NaN equals NaN.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return math.Float64bits(v.num) == math.Float64bits(o.num)
	case KindString:
		return v.str == o.str
	case KindBoolean:
		return v.b == o.b
	case KindObject:
		return v.obj.Equal(o.obj)
	default:
		return true
	}
}

// String renders v for display.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	case KindObject:
		return fmt.Sprintf("{%d keys}", v.obj.Len())
	default:
		return "undefined"
	}
}

// Native converts v to plain Go values: float64, string, bool, nil or map[string]any.
func (v Value) Native() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindBoolean:
		return v.b
	case KindObject:
		return v.obj.Native()
	default:
		return nil
	}
}
