// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"fmt"

	"github.com/ccnlab/hhchip/fixed"
	"github.com/chewxy/math32"
)

// hh.Neuron holds all of the state for one pipelined neuron integrator:
// the committed architectural state (voltage, gates, spike), the
// per-stage pipeline registers with their validity bits, and the rate
// calculator's delay registers.  All numeric state is raw fixed-point.
// One Neuron is one hardware instance; the parameters live in HHParams
// and are shared by both instances in the network.
type Neuron struct {
	Vm    fixed.Fixed `desc:"committed membrane potential"`
	N     fixed.Fixed `desc:"committed K activation gate"`
	M     fixed.Fixed `desc:"committed Na activation gate"`
	H     fixed.Fixed `desc:"committed Na inactivation gate"`
	Spike bool        `desc:"spike pulse: true for exactly one tick after a commit crosses the voltage above zero"`
	Inet  fixed.Fixed `desc:"total current from the last membrane stage, for monitoring"`

	IStim fixed.Fixed `desc:"stimulus current latched at the membrane stage"`
	ISyn  fixed.Fixed `desc:"synaptic current latched at the membrane stage"`
	INa   fixed.Fixed `desc:"Na current register written by the currents stage"`
	IK    fixed.Fixed `desc:"K current register written by the currents stage"`
	IL    fixed.Fixed `desc:"leak current register written by the currents stage"`
	VmNew fixed.Fixed `desc:"new voltage register written by the membrane stage"`
	NNew  fixed.Fixed `desc:"new N register written by the gates stage"`
	MNew  fixed.Fixed `desc:"new M register written by the gates stage"`
	HNew  fixed.Fixed `desc:"new H register written by the gates stage"`

	RateOut RateVals `view:"inline" desc:"rate calculator output register: the rates visible this tick, one tick stale relative to the voltage they came from"`
	RateNxt RateVals `view:"inline" desc:"rate calculator input register: recomputed from the committed voltage every tick"`

	Stage     NeuronStage `desc:"active pipeline stage for the next non-stalled tick"`
	State     PipeState   `desc:"controller state: idle until the first cycle, then running or stalled"`
	CurrValid bool        `desc:"currents-stage output registers hold fresh data"`
	VmValid   bool        `desc:"membrane-stage output register holds fresh data"`
	GateValid bool        `desc:"gates-stage output registers hold fresh data"`
	OutValid  bool        `desc:"a commit completed on the last rotation"`
	SpikeLast bool        `view:"-" desc:"the previous commit spiked -- forces the VmRest commit that discards the computed voltage"`
}

// NeuronVars are the neuron variables accessible by name for logging and
// display, all returned in raw fixed-point units as float32.
var NeuronVars = []string{"Vm", "N", "M", "H", "Spike", "Inet", "IStim", "ISyn", "INa", "IK", "IL", "VmNew", "AlphaN", "BetaN", "AlphaM", "BetaM", "AlphaH", "BetaH"}

var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// NeuronVarIdxByName returns the index of the variable in the NeuronVars
// list, or error if not found
func NeuronVarIdxByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return -1, fmt.Errorf("Neuron VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns the variable at the given index in the NeuronVars
// list.  The neuron mixes fixed-point, boolean, and rate-bundle fields,
// so this is an explicit dispatch rather than an offset computation.
func (nrn *Neuron) VarByIndex(idx int) float32 {
	switch idx {
	case 0:
		return float32(nrn.Vm)
	case 1:
		return float32(nrn.N)
	case 2:
		return float32(nrn.M)
	case 3:
		return float32(nrn.H)
	case 4:
		if nrn.Spike {
			return 1
		}
		return 0
	case 5:
		return float32(nrn.Inet)
	case 6:
		return float32(nrn.IStim)
	case 7:
		return float32(nrn.ISyn)
	case 8:
		return float32(nrn.INa)
	case 9:
		return float32(nrn.IK)
	case 10:
		return float32(nrn.IL)
	case 11:
		return float32(nrn.VmNew)
	case 12:
		return float32(nrn.RateOut.AlphaN)
	case 13:
		return float32(nrn.RateOut.BetaN)
	case 14:
		return float32(nrn.RateOut.AlphaM)
	case 15:
		return float32(nrn.RateOut.BetaM)
	case 16:
		return float32(nrn.RateOut.AlphaH)
	case 17:
		return float32(nrn.RateOut.BetaH)
	}
	return math32.NaN()
}

// VarByName returns the variable by name, or error
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarIdxByName(varNm)
	if err != nil {
		return math32.NaN(), err
	}
	return nrn.VarByIndex(i), nil
}

// HasValid returns true if any pipeline stage register holds fresh data
func (nrn *Neuron) HasValid() bool {
	return nrn.CurrValid || nrn.VmValid || nrn.GateValid || nrn.OutValid
}
