// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"fmt"

	"github.com/ccnlab/hhchip/fixed"
	"github.com/chewxy/math32"
)

// hh.SynParams are the spike-timing-dependent plasticity parameters for
// the 2-stage synapse: trace dynamics, the bounded weight update, and the
// weight-to-current scaling.
type SynParams struct {
	APlus      float32 `def:"0.1" min:"0" desc:"LTP learning rate applied to the post trace when the delayed pre spike fired"`
	AMinus     float32 `def:"0.12" min:"0" desc:"LTD learning rate applied to the pre trace when the delayed post spike fired"`
	WtInit     float32 `def:"1" desc:"initial weight: unity gain"`
	WtMin      float32 `def:"0" desc:"lower weight bound"`
	WtMax      float32 `def:"2" desc:"upper weight bound"`
	Gain       float32 `def:"1" desc:"scale from weight to synaptic current on a pre spike"`
	TraceShift int     `def:"4" min:"0" desc:"trace decay right-shift: trace -= trace >> TraceShift every tick, 1/16 canonical, giving a multi-tick pairing window"`

	APlusX  fixed.Fixed `view:"-" json:"-" xml:"-" desc:"APlus in raw units"`
	AMinusX fixed.Fixed `view:"-" json:"-" xml:"-" desc:"AMinus in raw units"`
	WtInitX fixed.Fixed `view:"-" json:"-" xml:"-" desc:"WtInit in raw units"`
	WtMinX  fixed.Fixed `view:"-" json:"-" xml:"-" desc:"WtMin in raw units"`
	WtMaxX  fixed.Fixed `view:"-" json:"-" xml:"-" desc:"WtMax in raw units"`
	GainX   fixed.Fixed `view:"-" json:"-" xml:"-" desc:"Gain in raw units"`
}

func (sp *SynParams) Defaults() {
	sp.APlus = 0.1
	sp.AMinus = 0.12
	sp.WtInit = 1
	sp.WtMin = 0
	sp.WtMax = 2
	sp.Gain = 1
	sp.TraceShift = 4
}

// Update derives the raw fixed-point values from the natural-unit parameters
func (sp *SynParams) Update(fc *fixed.Config) {
	sp.APlusX = fc.FromFloat(sp.APlus)
	sp.AMinusX = fc.FromFloat(sp.AMinus)
	sp.WtInitX = fc.FromFloat(sp.WtInit)
	sp.WtMinX = fc.FromFloat(sp.WtMin)
	sp.WtMaxX = fc.FromFloat(sp.WtMax)
	sp.GainX = fc.FromFloat(sp.Gain)
}

// hh.Synapse holds the state for the 2-stage STDP synapse: the traces and
// weight, the stage-1 to stage-2 delay registers, and the depth-1 output
// latch holding the current for the postsynaptic membrane stage.  The
// weight is the only state in the whole chip that is path-dependent
// (learned) across the run.
type Synapse struct {
	Wt        fixed.Fixed `desc:"synaptic weight, bounded to [WtMin, WtMax] at every observable tick"`
	PreTrace  fixed.Fixed `desc:"presynaptic spike trace: decays every tick, +ONE on a pre spike"`
	PostTrace fixed.Fixed `desc:"postsynaptic spike trace: decays every tick, +ONE on a post spike"`

	DlyPre       bool        `desc:"delayed pre spike captured at the trace stage's input tick"`
	DlyPost      bool        `desc:"delayed post spike captured at the trace stage's input tick"`
	DlyPreTrace  fixed.Fixed `desc:"pre trace as it stood before the trace-stage update at the capture tick"`
	DlyPostTrace fixed.Fixed `desc:"post trace as it stood before the trace-stage update at the capture tick"`
	DlyValid     bool        `desc:"the delay registers hold a capture for the weight stage"`

	ISyn      fixed.Fixed `desc:"output latch: current loaded on a pre spike, held until the postsynaptic membrane stage consumes it"`
	ISynValid bool        `desc:"output latch occupied"`
	State     PipeState   `desc:"controller state"`
}

// SynapseVars are the synapse variables accessible by name, in raw
// fixed-point units as float32.
var SynapseVars = []string{"Wt", "PreTrace", "PostTrace", "ISyn"}

var SynapseVarsMap map[string]int

func init() {
	SynapseVarsMap = make(map[string]int, len(SynapseVars))
	for i, v := range SynapseVars {
		SynapseVarsMap[v] = i
	}
}

func (sy *Synapse) VarNames() []string {
	return SynapseVars
}

// SynapseVarIdxByName returns the index of the variable in the
// SynapseVars list, or error if not found
func SynapseVarIdxByName(varNm string) (int, error) {
	i, ok := SynapseVarsMap[varNm]
	if !ok {
		return -1, fmt.Errorf("Synapse VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns the variable at the given index in the SynapseVars list
func (sy *Synapse) VarByIndex(idx int) float32 {
	switch idx {
	case 0:
		return float32(sy.Wt)
	case 1:
		return float32(sy.PreTrace)
	case 2:
		return float32(sy.PostTrace)
	case 3:
		return float32(sy.ISyn)
	}
	return math32.NaN()
}

// VarByName returns the variable by name, or error
func (sy *Synapse) VarByName(varNm string) (float32, error) {
	i, err := SynapseVarIdxByName(varNm)
	if err != nil {
		return math32.NaN(), err
	}
	return sy.VarByIndex(i), nil
}

//////////////////////////////////////////////////////////////////////////////////////
//  Init

// InitWts forces all synapse state to the reset values, with the weight
// back at unity gain and all validity bits clear.
func (sp *SynParams) InitWts(sy *Synapse) {
	sy.Wt = sp.WtInitX
	sy.PreTrace = 0
	sy.PostTrace = 0
	sy.DlyPre = false
	sy.DlyPost = false
	sy.DlyPreTrace = 0
	sy.DlyPostTrace = 0
	sy.DlyValid = false
	sy.ISyn = 0
	sy.ISynValid = false
	sy.State = PipeIdle
}

//////////////////////////////////////////////////////////////////////////////////////
//  Cycle: the two pipeline stages plus the current output

// CurrentFmSpike loads the output latch on a pre spike:
// i_syn = weight * Gain, using the weight visible this tick (the weight
// stage has not committed yet).  A second pre spike cannot arrive while
// the latch is occupied: commits are at least a full neuron rotation
// apart and the latch is consumed at the next membrane stage.
func (sp *SynParams) CurrentFmSpike(fc *fixed.Config, sy *Synapse, pre bool) {
	if !pre {
		return
	}
	sy.ISyn = fc.Mul(sy.Wt, sp.GainX)
	sy.ISynValid = true
}

// WtFmTraces runs the weight stage (stage 2) on the delayed capture from
// the previous tick.  When the delayed pre spike fired into a positive
// post trace: LTP, weight += APlus * post_trace, clamped to WtMax.  Else
// when the delayed post spike fired into a positive pre trace: LTD,
// weight -= AMinus * pre_trace, clamped to WtMin.  On a simultaneous
// pre+post capture LTP wins: the pre branch is tested first.  The traces
// used are the pre-update snapshots, so a spike never pairs with its own
// same-tick trace increment.
func (sp *SynParams) WtFmTraces(fc *fixed.Config, sy *Synapse) {
	if !sy.DlyValid {
		return
	}
	if sy.DlyPre && sy.DlyPostTrace > 0 {
		dw := fc.Mul(sp.APlusX, sy.DlyPostTrace)
		sy.Wt = fc.ClampRange(fc.Clamp(sy.Wt+dw), sp.WtMinX, sp.WtMaxX)
	} else if sy.DlyPost && sy.DlyPreTrace > 0 {
		dw := fc.Mul(sp.AMinusX, sy.DlyPreTrace)
		sy.Wt = fc.ClampRange(fc.Clamp(sy.Wt-dw), sp.WtMinX, sp.WtMaxX)
	}
}

// TraceFmSpikes runs the trace stage (stage 1): snapshot both traces into
// the delay registers along with this tick's spikes, then decay both
// traces by trace >> TraceShift and add ONE for each spike that fired.
func (sp *SynParams) TraceFmSpikes(fc *fixed.Config, sy *Synapse, pre, post bool) {
	sy.DlyPre = pre
	sy.DlyPost = post
	sy.DlyPreTrace = sy.PreTrace
	sy.DlyPostTrace = sy.PostTrace
	sy.DlyValid = true
	sy.PreTrace = fc.Clamp(sy.PreTrace - (sy.PreTrace >> uint(sp.TraceShift)))
	sy.PostTrace = fc.Clamp(sy.PostTrace - (sy.PostTrace >> uint(sp.TraceShift)))
	if pre {
		sy.PreTrace = fc.Clamp(sy.PreTrace + fc.One)
	}
	if post {
		sy.PostTrace = fc.Clamp(sy.PostTrace + fc.One)
	}
}

// ConsumeCurrent empties the output latch, returning the held current or
// 0 if the latch is empty -- called by the postsynaptic membrane stage.
func (sy *Synapse) ConsumeCurrent() fixed.Fixed {
	if !sy.ISynValid {
		return 0
	}
	sy.ISynValid = false
	return sy.ISyn
}
