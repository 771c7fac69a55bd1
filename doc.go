// Copyright 2026 The elm-constructive Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package constructive composes stateful view functions out of smaller
// stateful view functions, routing update messages between a parent
// model and its substructures through lens-like accessors.
//
// The core type [Viewer] is a pure function from a message channel and
// a model to a view. Views report changes by sending a [Msg] on their
// channel: either [Replace] (a complete new model for their point in
// the structure) or [Other] (an opaque side message the combinators
// forward without interpreting).
//
// # Design Philosophy
//
// constructive provides:
//   - A closed two-variant message union with exhaustive matching
//   - Lenses as paired getter/updater values, not reflection
//   - Channel derivation as pure closure composition, never mutation
//
// Every operation is a synchronous, side-effect-free transformation
// over immutable values. The package owns no runtime: delivery,
// scheduling, and application of replacements to the source-of-truth
// model belong to the external collaborator that supplies the root
// [Chan].
//
// # Core Operations
//
// Message transforms:
//
//   - [MapReplace]: Re-express a sub-model replacement as a replacement
//     of the containing structure
//   - [FlatMapReplace]: Intercept replacements, producing any message
//   - [FlatMapOther]: Intercept side messages, producing any message
//   - [ExtractReplace]: Degenerate extraction for Msg[Never, M], which
//     can only ever replace
//
// Lifting combinators:
//
//   - [ViewFocus]: Focus a viewer through a [Lens] onto part of a model
//   - [ViewOption]: Lift a viewer over an optional model
//   - [ViewList]: Lift a viewer over an ordered [List], by recursive
//     head/tail decomposition rather than integer indexing
//   - [ViewSlice]: Lift a viewer over a slice, by direct index
//     addressing with copy-on-write updates
//
// # Example
//
//	type counter int
//
//	viewCounter := func(ch constructive.Chan[constructive.Msg[constructive.Never, counter]], c counter) string {
//		// A real view would attach ch to an event handler; here the
//		// "view" is just the rendered label.
//		_ = ch
//		return fmt.Sprintf("count: %d", c)
//	}
//
//	pair := constructive.Pair[counter, counter]{Fst: 1, Snd: 2}
//	viewFst := constructive.ViewFocus(constructive.First[counter, counter](), viewCounter)
//
//	root := constructive.Chan[constructive.Msg[constructive.Never, constructive.Pair[counter, counter]]](
//		func(m constructive.Msg[constructive.Never, constructive.Pair[counter, counter]]) {
//			pair = constructive.ExtractReplace(m)
//		})
//	label := viewFst(root, pair)
//	// label == "count: 1"; a Replace sent on the child's channel would
//	// update only pair.Fst.
package constructive
