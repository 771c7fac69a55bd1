// Copyright 2026 The elm-constructive Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package constructive_test

import (
	"testing"

	"github.com/exists-forall/elm-constructive"
	"github.com/google/go-cmp/cmp"
)

func TestListOfSlice(t *testing.T) {
	l := constructive.ListOf(1, 2, 3)
	if diff := cmp.Diff([]int{1, 2, 3}, l.Slice()); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
}

func TestListZeroValueIsEmpty(t *testing.T) {
	var l constructive.List[int]
	if !l.IsEmpty() {
		t.Fatal("zero value list is not empty")
	}
	if l.Len() != 0 {
		t.Fatalf("Len = %d, want 0", l.Len())
	}
	if l.Slice() != nil {
		t.Fatalf("Slice = %v, want nil", l.Slice())
	}
	if l.Uncons().IsSome() {
		t.Fatal("Uncons on empty list is Some")
	}
}

func TestConsUncons(t *testing.T) {
	l := constructive.Cons(1, constructive.ListOf(2, 3))
	p, ok := l.Uncons().Get()
	if !ok {
		t.Fatal("Uncons on non-empty list is None")
	}
	if p.Fst != 1 {
		t.Fatalf("head = %d, want 1", p.Fst)
	}
	if diff := cmp.Diff([]int{2, 3}, p.Snd.Slice()); diff != "" {
		t.Fatalf("tail (-want +got):\n%s", diff)
	}
}

func TestAsTupleGet(t *testing.T) {
	l := constructive.AsTuple[int]()
	if l.Get(constructive.Nil[int]()).IsSome() {
		t.Fatal("AsTuple.Get on empty list is Some")
	}
	p, _ := l.Get(constructive.ListOf(7, 8)).Get()
	if p.Fst != 7 {
		t.Fatalf("head = %d, want 7", p.Fst)
	}
}

func TestAsTupleReplaceHead(t *testing.T) {
	l := constructive.AsTuple[int]()
	got := l.Update(func(o constructive.Option[constructive.Pair[int, constructive.List[int]]]) constructive.Option[constructive.Pair[int, constructive.List[int]]] {
		p, _ := o.Get()
		p.Fst = 10
		return constructive.Some(p)
	}, constructive.ListOf(1, 2, 3))
	if diff := cmp.Diff([]int{10, 2, 3}, got.Slice()); diff != "" {
		t.Fatalf("head replacement (-want +got):\n%s", diff)
	}
}

// TestAsTupleSpliceOntoEmpty: replacing the "no more elements" case with
// Some(x, xs) splices a new head onto an originally empty tail.
func TestAsTupleSpliceOntoEmpty(t *testing.T) {
	l := constructive.AsTuple[int]()
	got := l.Set(
		constructive.Some(constructive.Pair[int, constructive.List[int]]{Fst: 5, Snd: constructive.ListOf(6)}),
		constructive.Nil[int](),
	)
	if diff := cmp.Diff([]int{5, 6}, got.Slice()); diff != "" {
		t.Fatalf("splice (-want +got):\n%s", diff)
	}
}

// TestAsTupleDropAll: replacing a non-empty decomposition with None
// yields the empty remaining sequence.
func TestAsTupleDropAll(t *testing.T) {
	l := constructive.AsTuple[int]()
	got := l.Set(
		constructive.None[constructive.Pair[int, constructive.List[int]]](),
		constructive.ListOf(1, 2, 3),
	)
	if !got.IsEmpty() {
		t.Fatalf("got %v, want empty list", got.Slice())
	}
}

// TestAsTupleSelfRemoval: an element replacing itself with its own tail
// (via the decomposed pair) removes itself from the sequence.
func TestAsTupleSelfRemoval(t *testing.T) {
	l := constructive.AsTuple[int]()
	got := l.Update(func(o constructive.Option[constructive.Pair[int, constructive.List[int]]]) constructive.Option[constructive.Pair[int, constructive.List[int]]] {
		p, _ := o.Get()
		return p.Snd.Uncons()
	}, constructive.ListOf(1, 2, 3))
	if diff := cmp.Diff([]int{2, 3}, got.Slice()); diff != "" {
		t.Fatalf("self removal (-want +got):\n%s", diff)
	}
}
