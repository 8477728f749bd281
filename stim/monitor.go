// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"github.com/emer/etable/minmax"
)

// SpikeMonitor counts spike events on one output line and tracks the
// interspike interval range.  An edge within Debounce ticks of the last
// counted event is folded into that event, matching how the hardware
// harness filters the output pulses when sampling below the clock rate.
type SpikeMonitor struct {
	Debounce int        `def:"10" desc:"minimum ticks between separately counted events"`
	Count    int        `inactive:"+" desc:"number of events counted since Init"`
	First    int        `inactive:"+" desc:"tick of the first event, -1 if none"`
	Last     int        `inactive:"+" desc:"tick of the most recent event, -1 if none"`
	ISI      minmax.F32 `inactive:"+" desc:"range of interspike intervals observed, in ticks"`
}

func (sm *SpikeMonitor) Defaults() {
	sm.Debounce = 10
}

// Init clears all counts and intervals, keeping Debounce.
func (sm *SpikeMonitor) Init() {
	sm.Count = 0
	sm.First = -1
	sm.Last = -1
	sm.ISI.SetInfinity()
}

// Update records the spike line at the given tick, returning true if a
// new event was counted.
func (sm *SpikeMonitor) Update(tick int, spike bool) bool {
	if !spike {
		return false
	}
	if sm.Last >= 0 && tick-sm.Last <= sm.Debounce {
		return false
	}
	if sm.Count > 0 {
		sm.ISI.FitValInRange(float32(tick - sm.Last))
	} else {
		sm.First = tick
	}
	sm.Last = tick
	sm.Count++
	return true
}

// MeanISI returns the mean interspike interval in ticks, 0 if fewer than
// two events have been counted.
func (sm *SpikeMonitor) MeanISI() float32 {
	if sm.Count < 2 {
		return 0
	}
	return float32(sm.Last-sm.First) / float32(sm.Count-1)
}

// Rate returns the mean firing rate in Hz given the real duration of one
// tick in seconds, 0 if fewer than two events have been counted.
func (sm *SpikeMonitor) Rate(timePerTick float32) float32 {
	mi := sm.MeanISI()
	if mi == 0 {
		return 0
	}
	return 1 / (mi * timePerTick)
}
