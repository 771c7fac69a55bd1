// Copyright 2026 The elm-constructive Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package constructive_test

import (
	"testing"

	"github.com/exists-forall/elm-constructive"
)

func TestMsgTransformAllocations(t *testing.T) {
	m := constructive.Replace[string](42)
	double := func(x int) int { return x * 2 }
	allocs := testing.AllocsPerRun(100, func() {
		_ = constructive.MapReplace(m, double)
	})
	if allocs > 0 {
		t.Errorf("MapReplace allocs = %v; want 0", allocs)
	}

	o := constructive.Other[int]("evt")
	allocs2 := testing.AllocsPerRun(100, func() {
		_ = constructive.MapReplace(o, double)
	})
	if allocs2 > 0 {
		t.Errorf("MapReplace(Other) allocs = %v; want 0", allocs2)
	}
}

func TestOptionAllocations(t *testing.T) {
	o := constructive.Some(42)
	double := func(x int) int { return x * 2 }
	allocs := testing.AllocsPerRun(100, func() {
		_ = constructive.MapOption(o, double)
	})
	if allocs > 0 {
		t.Errorf("MapOption allocs = %v; want 0", allocs)
	}
}
