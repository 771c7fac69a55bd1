// Copyright 2026 The elm-constructive Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package constructive

import "slices"

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Lens pairs a getter with an updater focused on one part of a larger
// value. Lens[Big, Small] isolates a Small inside a Big.
//
// Laws the functions must satisfy: Update applies its argument only to
// the value Get returns, leaving every other part of Big structurally
// unchanged, and Get(Update(f, big)) == f(Get(big)). Violations are not
// detected at runtime and silently corrupt unrelated state.
type Lens[Big, Small any] struct {
	Get    func(Big) Small
	Update func(f func(Small) Small, big Big) Big
}

// MakeLens builds a Lens from a getter and a setter.
// The updater reads through get, transforms, and writes through set.
func MakeLens[Big, Small any](get func(Big) Small, set func(Small, Big) Big) Lens[Big, Small] {
	return Lens[Big, Small]{
		Get: get,
		Update: func(f func(Small) Small, big Big) Big {
			return set(f(get(big)), big)
		},
	}
}

// Set replaces the focused value, ignoring its previous content.
func (l Lens[Big, Small]) Set(small Small, big Big) Big {
	return l.Update(func(Small) Small { return small }, big)
}

// ComposeLens focuses through two lenses in sequence.
// The result isolates a Small inside the Mid that outer isolates
// inside the Big.
func ComposeLens[Big, Mid, Small any](outer Lens[Big, Mid], inner Lens[Mid, Small]) Lens[Big, Small] {
	return Lens[Big, Small]{
		Get: func(big Big) Small {
			return inner.Get(outer.Get(big))
		},
		Update: func(f func(Small) Small, big Big) Big {
			return outer.Update(func(mid Mid) Mid {
				return inner.Update(f, mid)
			}, big)
		},
	}
}

// First isolates the first component of a Pair.
func First[A, B any]() Lens[Pair[A, B], A] {
	return Lens[Pair[A, B], A]{
		Get: func(p Pair[A, B]) A { return p.Fst },
		Update: func(f func(A) A, p Pair[A, B]) Pair[A, B] {
			return Pair[A, B]{Fst: f(p.Fst), Snd: p.Snd}
		},
	}
}

// Second isolates the second component of a Pair.
func Second[A, B any]() Lens[Pair[A, B], B] {
	return Lens[Pair[A, B], B]{
		Get: func(p Pair[A, B]) B { return p.Snd },
		Update: func(f func(B) B, p Pair[A, B]) Pair[A, B] {
			return Pair[A, B]{Fst: p.Fst, Snd: f(p.Snd)}
		},
	}
}

// Index isolates the element at index i of a slice.
// The index must be in range; the updater copies the slice before
// writing so siblings and the original remain untouched.
func Index[A any](i int) Lens[[]A, A] {
	return Lens[[]A, A]{
		Get: func(items []A) A { return items[i] },
		Update: func(f func(A) A, items []A) []A {
			out := slices.Clone(items)
			out[i] = f(items[i])
			return out
		},
	}
}
