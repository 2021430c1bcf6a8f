// Package optional provides a value that may be unset.
//
// Theme elements and coordinate limits use Value to distinguish "not
// specified, inherit from elsewhere" from a zero value. Resolution
// across several sources is first-set-wins, see [First].
package optional

import "fmt"

// Value holds a T that may be unset. The zero Value is unset.
type Value[T any] struct {
	v  T
	ok bool
}

// Of returns a set Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// None returns an unset Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the held value and whether it is set.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.ok
}

// IsSet reports whether the value is set.
func (o Value[T]) IsSet() bool {
	return o.ok
}

// Or returns the held value, or fallback if unset.
func (o Value[T]) Or(fallback T) T {
	if o.ok {
		return o.v
	}
	return fallback
}

// String implements fmt.Stringer.
func (o Value[T]) String() string {
	if !o.ok {
		return "unset"
	}
	return fmt.Sprint(o.v)
}

// First returns the first set value in vals, or an unset Value if
// none is set.
func First[T any](vals ...Value[T]) Value[T] {
	for _, v := range vals {
		if v.ok {
			return v
		}
	}
	return Value[T]{}
}
