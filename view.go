// Copyright 2026 The elm-constructive Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package constructive

// Viewer is the unit of composition: a pure function from a message
// channel and a model to a rendered view. The view representation V is
// opaque to this package; every combinator takes one or more Viewers
// and produces a Viewer over a larger model.
type Viewer[V, O, M any] func(ch Chan[Msg[O, M]], model M) V

// MapView applies a pure function to a viewer's output.
func MapView[V1, V2, O, M any](view Viewer[V1, O, M], f func(V1) V2) Viewer[V2, O, M] {
	return func(ch Chan[Msg[O, M]], model M) V2 {
		return f(view(ch, model))
	}
}

// ViewFocus lifts a viewer of the focused part into a viewer of the
// whole. The sub-viewer receives lens.Get(big) and a derived channel on
// which a child's Replace(small) becomes, from the parent's
// perspective, Replace of big with only the focused part changed.
// Other messages pass through untouched.
//
// This is the single building block every other combinator reduces to.
func ViewFocus[V, O, Big, Small any](lens Lens[Big, Small], view Viewer[V, O, Small]) Viewer[V, O, Big] {
	return func(ch Chan[Msg[O, Big]], big Big) V {
		sub := Forward(ch, func(m Msg[O, Small]) Msg[O, Big] {
			return MapReplace(m, func(small Small) Big {
				return lens.Set(small, big)
			})
		})
		return view(sub, lens.Get(big))
	}
}

// ViewOption lifts a viewer over an optional model. An absent model
// produces an absent view and derives no channel; a present model's
// replacements are wrapped back into Some on the way upstream, so a
// present model never silently becomes absent and no present model is
// fabricated where none existed.
func ViewOption[V, O, M any](view Viewer[V, O, M]) Viewer[Option[V], O, Option[M]] {
	return func(ch Chan[Msg[O, Option[M]]], model Option[M]) Option[V] {
		m, ok := model.Get()
		if !ok {
			return None[V]()
		}
		sub := Forward(ch, func(msg Msg[O, M]) Msg[O, Option[M]] {
			return MapReplace(msg, Some[M])
		})
		return Some(view(sub, m))
	}
}

// ViewList lifts a viewer over an ordered list, producing one view per
// element in order. A replacement from any element's channel updates
// that element in place upstream, leaving neighbors untouched and
// sharing their spines.
//
// The implementation never addresses elements by integer index.
// Each recursion step focuses the AsTuple lens (list as optional
// head/tail pair), views the head through First and the tail through
// Second with ViewList itself, and lifts both over the empty case via
// ViewOption. Correctness rests only on structural decomposition and
// recomposition, so it holds under arbitrary insertion or removal done
// by an element's own replacement.
func ViewList[V, O, M any](view Viewer[V, O, M]) Viewer[List[V], O, List[M]] {
	return func(ch Chan[Msg[O, List[M]]], model List[M]) List[V] {
		var viewPair Viewer[Pair[V, List[V]], O, Pair[M, List[M]]] = func(pch Chan[Msg[O, Pair[M, List[M]]]], p Pair[M, List[M]]) Pair[V, List[V]] {
			return Pair[V, List[V]]{
				Fst: ViewFocus(First[M, List[M]](), view)(pch, p),
				Snd: ViewFocus(Second[M, List[M]](), ViewList(view))(pch, p),
			}
		}
		recompose := func(opt Option[Pair[V, List[V]]]) List[V] {
			if p, ok := opt.Get(); ok {
				return Cons(p.Fst, p.Snd)
			}
			return Nil[V]()
		}
		return MapView(ViewFocus(AsTuple[M](), ViewOption(viewPair)), recompose)(ch, model)
	}
}

// ViewSlice lifts a viewer over a slice, producing one view per index
// in order. Each element is focused through Index, so a replacement
// from element i's channel yields a copy of the slice with only index
// i changed. Direct index addressing is the deliberate trade for
// random-access collections; ViewList keeps the structural approach
// for sequential lists.
//
// Indices are stable for the duration of one render pass. A nil slice
// produces a nil view slice.
func ViewSlice[V, O, M any](view Viewer[V, O, M]) Viewer[[]V, O, []M] {
	return func(ch Chan[Msg[O, []M]], items []M) []V {
		if items == nil {
			return nil
		}
		views := make([]V, len(items))
		for i := range items {
			views[i] = ViewFocus(Index[M](i), view)(ch, items)
		}
		return views
	}
}
