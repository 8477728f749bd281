// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestTime(t *testing.T) {
	tm := NewTime()
	if tm.TimePerTick != 2e-08 {
		t.Errorf("default TimePerTick: %v\n", tm.TimePerTick)
	}
	for i := 0; i < 50; i++ {
		tm.TickInc()
	}
	tm.StepInc()
	if tm.Tick != 50 || tm.Step != 1 {
		t.Errorf("counters: Tick %v Step %v != 50 1\n", tm.Tick, tm.Step)
	}
	if math32.Abs(tm.Time-1e-06) > 1e-09 {
		t.Errorf("accumulated time: %v\n", tm.Time)
	}
	tm.Reset()
	if tm.Tick != 0 || tm.Step != 0 || tm.Time != 0 {
		t.Errorf("reset: Tick %v Step %v Time %v\n", tm.Tick, tm.Step, tm.Time)
	}
	if tm.TimePerTick != 2e-08 {
		t.Errorf("reset cleared TimePerTick\n")
	}
}
