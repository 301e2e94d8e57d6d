// Package value defines the tree model shared by the parser and the printer.
//
// A JSON document is a tree of Value nodes. Every node owns its children
// exclusively: trees are built bottom-up, never share subtrees, and are
// released as a whole when the root goes out of scope.
package value

import (
	"github.com/mcncl/jsonfmt/internal/errors"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	Null Kind = iota
	String
	Number
	Bool
	Array
	Object
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "null"
	}
}

// Value is a single node in a JSON tree: one of Null, String, Number, Bool,
// Array or Object. The variant is fixed at construction and never changes.
//
// Null doubles as the universal default: it reports Kind Null and answers
// every payload accessor with a type mismatch. A nil *Value behaves exactly
// like Null, so callers may treat "value is absent" and "value is the wrong
// type" uniformly.
type Value struct {
	kind    Kind
	str     string
	num     float64
	boolean bool
	arr     []*Value
	obj     map[string]*Value
}

// NewNull creates a null value. Parsing a missing file or empty input also
// yields one, so a null result is deliberately ambiguous between "absent",
// "explicit JSON null" and "file not found".
func NewNull() *Value {
	return &Value{}
}

// NewString creates a string value holding s.
func NewString(s string) *Value {
	return &Value{kind: String, str: s}
}

// NewNumber creates a number value. All numbers are 64-bit floats; there is
// no integer/float distinction.
func NewNumber(f float64) *Value {
	return &Value{kind: Number, num: f}
}

// NewBool creates a boolean value.
func NewBool(b bool) *Value {
	return &Value{kind: Bool, boolean: b}
}

// NewArray creates an empty array value.
func NewArray() *Value {
	return &Value{kind: Array}
}

// NewObject creates an empty object value.
func NewObject() *Value {
	return &Value{kind: Object, obj: make(map[string]*Value)}
}

// Kind reports the variant held by v. A nil *Value reports Null.
func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

func (v *Value) mismatch(want Kind) error {
	return errors.NewTypeMismatchError(want.String(), v.Kind().String())
}

// StringValue returns the string payload, or a type mismatch error if v is
// not a String.
func (v *Value) StringValue() (string, error) {
	if v.Kind() != String {
		return "", v.mismatch(String)
	}
	return v.str, nil
}

// Float64 returns the number payload, or a type mismatch error if v is not a
// Number.
func (v *Value) Float64() (float64, error) {
	if v.Kind() != Number {
		return 0, v.mismatch(Number)
	}
	return v.num, nil
}

// Bool returns the boolean payload, or a type mismatch error if v is not a
// Bool.
func (v *Value) Bool() (bool, error) {
	if v.Kind() != Bool {
		return false, v.mismatch(Bool)
	}
	return v.boolean, nil
}

// Array returns the element slice, or a type mismatch error if v is not an
// Array. Callers may mutate elements in place; use Append to grow the array.
func (v *Value) Array() ([]*Value, error) {
	if v.Kind() != Array {
		return nil, v.mismatch(Array)
	}
	return v.arr, nil
}

// Object returns the member map, or a type mismatch error if v is not an
// Object. The map is the live payload: writes through it are visible to the
// value. Iteration order is unspecified.
func (v *Value) Object() (map[string]*Value, error) {
	if v.Kind() != Object {
		return nil, v.mismatch(Object)
	}
	return v.obj, nil
}

// SetString replaces the string payload in place.
func (v *Value) SetString(s string) error {
	if v.Kind() != String {
		return v.mismatch(String)
	}
	v.str = s
	return nil
}

// SetFloat64 replaces the number payload in place.
func (v *Value) SetFloat64(f float64) error {
	if v.Kind() != Number {
		return v.mismatch(Number)
	}
	v.num = f
	return nil
}

// SetBool replaces the boolean payload in place.
func (v *Value) SetBool(b bool) error {
	if v.Kind() != Bool {
		return v.mismatch(Bool)
	}
	v.boolean = b
	return nil
}

// Append adds elements to the end of an array value.
func (v *Value) Append(elems ...*Value) error {
	if v.Kind() != Array {
		return v.mismatch(Array)
	}
	v.arr = append(v.arr, elems...)
	return nil
}

// Set inserts a member into an object value. Inserting an existing key
// silently overwrites the previous value: last write wins.
func (v *Value) Set(key string, elem *Value) error {
	if v.Kind() != Object {
		return v.mismatch(Object)
	}
	v.obj[key] = elem
	return nil
}

// Len reports the number of elements of an array or members of an object.
// Every other variant has length 0.
func (v *Value) Len() int {
	switch v.Kind() {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj)
	default:
		return 0
	}
}
