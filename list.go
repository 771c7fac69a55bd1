// Copyright 2026 The elm-constructive Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package constructive

// List is an immutable singly linked list with structural tail sharing.
// The zero value is the empty list. Prepending with Cons and replacing
// a head through AsTuple reuse the existing tail without copying, which
// is what makes the recursive list combinator allocation-light.
type List[A any] struct {
	node *listNode[A]
}

type listNode[A any] struct {
	head A
	tail List[A]
}

// Nil returns the empty list.
func Nil[A any]() List[A] {
	return List[A]{}
}

// Cons prepends head to tail. The tail is shared, not copied.
func Cons[A any](head A, tail List[A]) List[A] {
	return List[A]{node: &listNode[A]{head: head, tail: tail}}
}

// ListOf builds a list holding the given items in order.
func ListOf[A any](items ...A) List[A] {
	out := Nil[A]()
	for i := len(items) - 1; i >= 0; i-- {
		out = Cons(items[i], out)
	}
	return out
}

// IsEmpty returns true if the list has no elements.
func (l List[A]) IsEmpty() bool {
	return l.node == nil
}

// Uncons decomposes the list into its head and tail, or None if empty.
func (l List[A]) Uncons() Option[Pair[A, List[A]]] {
	if l.node == nil {
		return None[Pair[A, List[A]]]()
	}
	return Some(Pair[A, List[A]]{Fst: l.node.head, Snd: l.node.tail})
}

// Len returns the number of elements. Costs one traversal.
func (l List[A]) Len() int {
	n := 0
	for cur := l.node; cur != nil; cur = cur.tail.node {
		n++
	}
	return n
}

// Slice returns the elements as a fresh slice in list order.
// Returns nil for the empty list.
func (l List[A]) Slice() []A {
	if l.node == nil {
		return nil
	}
	out := make([]A, 0, l.Len())
	for cur := l.node; cur != nil; cur = cur.tail.node {
		out = append(out, cur.head)
	}
	return out
}

// AsTuple views a list as an optional (head, tail) pair.
// Get decomposes: None for the empty list, Some(head, tail) otherwise.
// Update recomposes whatever the transform returns: None yields the
// empty list, Some(h, t) yields Cons(h, t) — so a transform can grow,
// shrink, or empty the list, not just edit the head.
func AsTuple[A any]() Lens[List[A], Option[Pair[A, List[A]]]] {
	return Lens[List[A], Option[Pair[A, List[A]]]]{
		Get: func(l List[A]) Option[Pair[A, List[A]]] {
			return l.Uncons()
		},
		Update: func(f func(Option[Pair[A, List[A]]]) Option[Pair[A, List[A]]], l List[A]) List[A] {
			if p, ok := f(l.Uncons()).Get(); ok {
				return Cons(p.Fst, p.Snd)
			}
			return Nil[A]()
		},
	}
}
