// Copyright 2026 The elm-constructive Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package constructive

// Chan delivers values of type A to an external receiver.
// The runtime driving the views supplies the root channel; the
// combinators only derive new channels from it via Forward and never
// buffer, drop, or reorder a delivery themselves.
type Chan[A any] func(A)

// Forward derives a channel of B from a channel of A by composing a
// pure transform in front of delivery. Each derived channel is an
// independent closure capturing only ch and f; sibling derivations
// share no mutable state.
func Forward[B, A any](ch Chan[A], f func(B) A) Chan[B] {
	return func(b B) {
		ch(f(b))
	}
}
