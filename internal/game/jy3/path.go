// If you are AI: This file implements dotted key paths ("v.14") over decoded documents,
// plus parsing of command-line values into AMF0 values.

package jy3

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"soledit/internal/core/protocol/amf0"
)

var (
	// ErrPathNotFound means a path segment does not exist.
	ErrPathNotFound = errors.New("jy3: path not found")
	// ErrNotObject means a path walks through a non-object value.
	ErrNotObject = errors.New("jy3: not an object")
	// ErrEmptyPath means no key was given.
	ErrEmptyPath = errors.New("jy3: empty path")
	// ErrBadValue means a value string does not parse as the requested type.
	ErrBadValue = errors.New("jy3: bad value")
)

// Separator splits path segments.
const Separator = "."

// SplitPath breaks a dotted path into keys.
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return strings.Split(path, Separator), nil
}

// GetPath returns the value at path.
func GetPath(doc *amf0.Document, path string) (amf0.Value, error) {
	keys, err := SplitPath(path)
	if err != nil {
		return amf0.Value{}, err
	}
	cur := doc
	for i, k := range keys {
		v, ok := cur.Get(k)
		if !ok {
			return amf0.Value{}, fmt.Errorf("%w: %s", ErrPathNotFound, strings.Join(keys[:i+1], Separator))
		}
		if i == len(keys)-1 {
			return v, nil
		}
		if cur, ok = v.AsObject(); !ok {
			return amf0.Value{}, fmt.Errorf("%w: %s is %s", ErrNotObject, strings.Join(keys[:i+1], Separator), v.Kind())
		}
	}
	return amf0.Value{}, ErrEmptyPath
}

// SetPath stores v at path, creating missing intermediate objects.
// It returns the previous value and whether one existed.
func SetPath(doc *amf0.Document, path string, v amf0.Value) (amf0.Value, bool, error) {
	keys, err := SplitPath(path)
	if err != nil {
		return amf0.Value{}, false, err
	}
	parent, err := walkParent(doc, keys, true)
	if err != nil {
		return amf0.Value{}, false, err
	}
	last := keys[len(keys)-1]
	prev, existed := parent.Get(last)
	parent.Set(last, v)
	return prev, existed, nil
}

// UnsetPath deletes the value at path.
func UnsetPath(doc *amf0.Document, path string) error {
	keys, err := SplitPath(path)
	if err != nil {
		return err
	}
	parent, err := walkParent(doc, keys, false)
	if err != nil {
		return err
	}
	if !parent.Delete(keys[len(keys)-1]) {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	return nil
}

func walkParent(doc *amf0.Document, keys []string, create bool) (*amf0.Document, error) {
	cur := doc
	for i, k := range keys[:len(keys)-1] {
		v, ok := cur.Get(k)
		if !ok {
			if !create {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, strings.Join(keys[:i+1], Separator))
			}
			sub := amf0.NewDocument()
			cur.Set(k, amf0.Object(sub))
			cur = sub
			continue
		}
		if cur, ok = v.AsObject(); !ok {
			return nil, fmt.Errorf("%w: %s is %s", ErrNotObject, strings.Join(keys[:i+1], Separator), v.Kind())
		}
	}
	return cur, nil
}

// Value type names accepted by ParseValue.
const (
	TypeAuto      = "auto"
	TypeNumber    = "number"
	TypeString    = "string"
	TypeBool      = "bool"
	TypeNull      = "null"
	TypeUndefined = "undefined"
)

// ParseValue converts s into a value of the named type.
// Auto picks number, then bool, then null, and falls back to string.
func ParseValue(s, typ string) (amf0.Value, error) {
	switch typ {
	case "", TypeAuto:
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return amf0.Number(f), nil
		}
		switch s {
		case "true", "false":
			return amf0.Bool(s == "true"), nil
		case "null":
			return amf0.Null(), nil
		}
		return amf0.String(s), nil
	case TypeNumber:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return amf0.Value{}, fmt.Errorf("%w: %q is not a number", ErrBadValue, s)
		}
		return amf0.Number(f), nil
	case TypeString:
		return amf0.String(s), nil
	case TypeBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return amf0.Value{}, fmt.Errorf("%w: %q is not a bool", ErrBadValue, s)
		}
		return amf0.Bool(b), nil
	case TypeNull:
		return amf0.Null(), nil
	case TypeUndefined:
		return amf0.Undefined(), nil
	default:
		return amf0.Value{}, fmt.Errorf("%w: unknown type %q", ErrBadValue, typ)
	}
}
