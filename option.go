// Copyright 2026 The elm-constructive Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package constructive

// Option represents a value that is either present (Some) or absent (None).
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// OrElse returns the value if present, or fallback otherwise.
func (o Option[A]) OrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[A, T any](o Option[A], onSome func(A) T, onNone func() T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}
