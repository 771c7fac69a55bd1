// Copyright 2026 The elm-constructive Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package constructive

// Msg is the message type flowing from a view back toward the program.
// Msg[O, M] is a closed two-variant union: a Replace carrying a complete
// new model of type M, or an Other carrying an opaque payload of type O
// that the combinators forward without interpreting.
//
// Replacement is total, not incremental: a receiver of Replace must
// discard its current model entirely and substitute the payload.
type Msg[O, M any] struct {
	isReplace bool
	model     M
	other     O
}

// Replace creates a message that substitutes the whole model at this
// point in the structure.
func Replace[O, M any](model M) Msg[O, M] {
	return Msg[O, M]{isReplace: true, model: model}
}

// Other creates an opaque side message. Combinators carry it through
// unchanged unless a caller intercepts it with FlatMapOther.
func Other[M, O any](payload O) Msg[O, M] {
	return Msg[O, M]{isReplace: false, other: payload}
}

// IsReplace returns true if this is a Replace message.
func (m Msg[O, M]) IsReplace() bool {
	return m.isReplace
}

// IsOther returns true if this is an Other message.
func (m Msg[O, M]) IsOther() bool {
	return !m.isReplace
}

// GetReplace returns the replacement model and true, or zero and false.
func (m Msg[O, M]) GetReplace() (M, bool) {
	if m.isReplace {
		return m.model, true
	}
	var zero M
	return zero, false
}

// GetOther returns the opaque payload and true, or zero and false.
func (m Msg[O, M]) GetOther() (O, bool) {
	if !m.isReplace {
		return m.other, true
	}
	var zero O
	return zero, false
}

// MatchMsg pattern matches on the message, calling onReplace or onOther.
func MatchMsg[O, M, T any](m Msg[O, M], onReplace func(M) T, onOther func(O) T) T {
	if m.isReplace {
		return onReplace(m.model)
	}
	return onOther(m.other)
}

// MapReplace applies a pure function to the replacement model.
// Other messages pass through unchanged. This is how a sub-model
// replacement is re-expressed as a replacement of a containing
// structure (wrapping into an Option, splicing into a collection).
func MapReplace[O, A, B any](m Msg[O, A], f func(A) B) Msg[O, B] {
	if m.isReplace {
		return Replace[O](f(m.model))
	}
	return Msg[O, B]{other: m.other}
}

// FlatMapReplace applies f to the replacement model and returns whatever
// message f produces, which may itself be a Replace or an Other.
// Other messages pass through unchanged. Strictly more general than
// MapReplace.
func FlatMapReplace[O, A, B any](m Msg[O, A], f func(A) Msg[O, B]) Msg[O, B] {
	if m.isReplace {
		return f(m.model)
	}
	return Msg[O, B]{other: m.other}
}

// FlatMapOther applies f to the opaque payload, letting a parent
// reinterpret a child's side message as its own replacement or its own
// side message. Replace messages pass through unchanged.
func FlatMapOther[P, O, M any](m Msg[O, M], f func(O) Msg[P, M]) Msg[P, M] {
	if m.isReplace {
		return Msg[P, M]{isReplace: true, model: m.model}
	}
	return f(m.other)
}

// Never is a message payload type with no constructible values.
// Msg[Never, M] can only ever be a Replace: no type implements the
// unexported method, so no non-nil Never exists. Use it for views
// whose every message is a total model substitution.
type Never interface {
	never()
}

// ExtractReplace returns the replacement model of a message that cannot
// carry a side payload.
//
// Panics if the message is an Other variant. Since Never is uninhabited
// this is unreachable from well-typed code; reaching it means a typed
// nil was smuggled past the type system and signals a defect in the
// caller, not a recoverable condition.
func ExtractReplace[M any](m Msg[Never, M]) M {
	if !m.isReplace {
		panic("constructive: message with uninhabited side payload carried one")
	}
	return m.model
}
