// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

// hh.Time contains the timing state for running the simulation.  The tick
// is the only behaviorally meaningful unit -- one tick is one clock cycle
// of the chip -- but real time at the nominal clock rate is accumulated
// for display and logging.
type Time struct {
	Time        float32 `desc:"accumulated real time at the nominal clock rate, in seconds"`
	Tick        int     `desc:"tick counter: one clock cycle, one pipeline-stage advance"`
	Step        int     `desc:"integration step counter: one full membrane update, i.e. one pipeline rotation (4 ticks in the pipelined model, 1 in the LIF simplification)"`
	TimePerTick float32 `def:"2e-08" desc:"real duration of one tick: 20 ns at the nominal 50 MHz clock"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerTick = 2e-08
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Tick = 0
	tm.Step = 0
	if tm.TimePerTick == 0 {
		tm.Defaults()
	}
}

// TickInc increments at the tick level
func (tm *Time) TickInc() {
	tm.Tick++
	tm.Time += tm.TimePerTick
}

// StepInc increments at the integration-step level
func (tm *Time) StepInc() {
	tm.Step++
}
