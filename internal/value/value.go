// Package value implements the dynamically-typed container that CTL
// expressions evaluate to, along with the type-tag registry operator
// dispatch keys on.
package value

import "reflect"

// Value is a type-erased container holding exactly one of a small, open set
// of host types. Equality of two values' types is by identity of the
// underlying reflect.Type, never by structural comparison. A Value is never
// nil; "no value" is modeled by the evaluator returning an error instead.
type Value struct {
	data any
}

// New wraps any host value. Use the typed constructors (Int, Double, Str,
// Bool) for scalars; New wraps everything else, including List and *Object
// containers, and generic code that only has an interface{}.
func New(v any) Value { return Value{data: v} }

// TypeOf returns the type tag for T, usable as a dispatch key. Two values
// share a type tag iff TypeOf for their underlying Go types is identical.
func TypeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// Type returns the type tag of the value currently held.
func (v Value) Type() reflect.Type {
	return reflect.TypeOf(v.data)
}

// Is reports whether the value holds a T.
func (v Value) Is(t reflect.Type) bool {
	return v.Type() == t
}

// IsType reports whether the value holds a T, via the generic type
// parameter rather than an explicit reflect.Type.
func IsType[T any](v Value) bool {
	_, ok := v.data.(T)
	return ok
}

// As downcasts the value to T. ok is false if the held type doesn't match;
// downcast mismatch at a dispatch call site is otherwise impossible by
// construction, since the lookup key already implies the type.
func As[T any](v Value) (T, bool) {
	t, ok := v.data.(T)
	return t, ok
}

// MustAs downcasts the value to T, panicking if the type doesn't match.
// Operator trampolines use this: the dispatch table key already guarantees
// the type, so a mismatch here means the table was built incorrectly.
func MustAs[T any](v Value) T {
	t, ok := v.data.(T)
	if !ok {
		panic("value: type assertion failed for dispatch-table operand")
	}
	return t
}

// Swap exchanges the contents of two values.
func (v *Value) Swap(other *Value) {
	v.data, other.data = other.data, v.data
}

// Clone returns a deep copy of the value. Scalars (int64, float64, string,
// bool) are already copied by Go's value semantics; List and Object clone
// their elements recursively so that mutating a cloned container can never
// reach back into the original.
func (v Value) Clone() Value {
	switch d := v.data.(type) {
	case List:
		return Value{data: d.Clone()}
	case *Object:
		return Value{data: d.Clone()}
	default:
		return v
	}
}

// Int constructs an int64-typed value.
func Int(n int64) Value { return Value{data: n} }

// Double constructs a float64-typed value.
func Double(f float64) Value { return Value{data: f} }

// Str constructs a string-typed value.
func Str(s string) Value { return Value{data: s} }

// Bool constructs a bool-typed value.
func Bool(b bool) Value { return Value{data: b} }
