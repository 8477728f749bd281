// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"github.com/ccnlab/hhchip/fixed"
)

// hh.HHParams contains all the parameters for the Hodgkin-Huxley membrane
// integration: channel conductances, the six kinetic rate functions, the
// step size, and the reset state.  Everything is specified in natural
// units and derived into raw fixed-point values by Update, which is how
// the same parameter set serves the full-width and reduced-width hardware
// variants.
type HHParams struct {
	Chans    ChanParams `view:"inline" desc:"channel conductances and reversal potentials"`
	Rates    RateParams `desc:"the six kinetic rate functions computed by the rate calculator"`
	Dt       float32    `def:"0.0625" min:"0" desc:"integration step size in ONE-relative units -- canonical ONE/16"`
	VmRest   float32    `def:"-65" desc:"reset and post-spike membrane potential (mV)"`
	NInit    float32    `def:"0.25" min:"0" max:"1" desc:"reset value for the K activation gate"`
	MInit    float32    `def:"0.25" min:"0" max:"1" desc:"reset value for the Na activation gate"`
	HInit    float32    `def:"0.016" min:"0" max:"1" desc:"reset value for the Na inactivation gate -- ONE>>6 in the hardware, which truncates to 0 in the narrowest variant"`
	Pipeline bool       `def:"true" desc:"advance one pipeline stage per tick (the hardware FSM, one integration step per 4 ticks) -- false computes a full step every tick, the leaky-integrate-and-fire simplification"`

	DtX     fixed.Fixed `view:"-" json:"-" xml:"-" desc:"Dt in raw units"`
	VmRestX fixed.Fixed `view:"-" json:"-" xml:"-" desc:"VmRest in raw units"`
	NInitX  fixed.Fixed `view:"-" json:"-" xml:"-" desc:"NInit in raw units"`
	MInitX  fixed.Fixed `view:"-" json:"-" xml:"-" desc:"MInit in raw units"`
	HInitX  fixed.Fixed `view:"-" json:"-" xml:"-" desc:"HInit in raw units"`
}

func (ac *HHParams) Defaults() {
	ac.Chans.Defaults()
	ac.Rates.Defaults()
	ac.Dt = 0.0625
	ac.VmRest = -65
	ac.NInit = 0.25
	ac.MInit = 0.25
	ac.HInit = 0.016
	ac.Pipeline = true
}

// Update derives all raw fixed-point values from the natural-unit parameters
func (ac *HHParams) Update(fc *fixed.Config) {
	ac.Chans.Update(fc)
	ac.Rates.Update(fc)
	ac.DtX = fc.FromFloat(ac.Dt)
	ac.VmRestX = fc.FromFloat(ac.VmRest)
	ac.NInitX = fc.FromFloat(ac.NInit)
	ac.MInitX = fc.FromFloat(ac.MInit)
	ac.HInitX = fc.FromFloat(ac.HInit)
}

//////////////////////////////////////////////////////////////////////////////////////
//  Init

// InitActs forces all neuron state to the reset values: the committed
// voltage and gates to their initial constants, every pipeline register
// to zero with its validity bit clear, and the stage controller to idle.
func (ac *HHParams) InitActs(nrn *Neuron) {
	nrn.Vm = ac.VmRestX
	nrn.N = ac.NInitX
	nrn.M = ac.MInitX
	nrn.H = ac.HInitX
	nrn.Spike = false
	nrn.SpikeLast = false
	nrn.Inet = 0
	nrn.IStim = 0
	nrn.ISyn = 0
	nrn.INa = 0
	nrn.IK = 0
	nrn.IL = 0
	nrn.VmNew = 0
	nrn.NNew = 0
	nrn.MNew = 0
	nrn.HNew = 0
	nrn.RateOut.Zero()
	nrn.RateNxt.Zero()
	nrn.Stage = StageCurrents
	nrn.State = PipeIdle
	nrn.CurrValid = false
	nrn.VmValid = false
	nrn.GateValid = false
	nrn.OutValid = false
}

//////////////////////////////////////////////////////////////////////////////////////
//  Cycle: the four pipeline stages

// CurrentsFmState computes the three ion currents from the committed
// voltage and gating variables (stage 1).  The multiplication trees are
// fixed so truncation is reproducible: m3 = Mul3(m,m,m),
// INa = Mul3(Mul(gNa,h), m3, V-ENa), n4 = Mul(Mul(n,n), Mul(n,n)),
// IK = Mul3(gK, n4, V-EK), IL = Mul(gL, V-EL).  The V-E differences go
// through the saturating adder like everything else.
func (ac *HHParams) CurrentsFmState(fc *fixed.Config, nrn *Neuron) {
	m3 := fc.Mul3(nrn.M, nrn.M, nrn.M)
	gnah := fc.Mul(ac.Chans.GNaX, nrn.H)
	nrn.INa = fc.Mul3(gnah, m3, fc.Clamp(nrn.Vm-ac.Chans.ENaX))
	n2 := fc.Mul(nrn.N, nrn.N)
	n4 := fc.Mul(n2, n2)
	nrn.IK = fc.Mul3(ac.Chans.GKX, n4, fc.Clamp(nrn.Vm-ac.Chans.EKX))
	nrn.IL = fc.Mul(ac.Chans.GLX, fc.Clamp(nrn.Vm-ac.Chans.ELX))
}

// VmFmI integrates the membrane voltage from the total current (stage 2):
// total = stimulus + synaptic - Na - K - leak, accumulated left to right
// with each partial sum saturating, then VmNew = clamp(Vm + total * Dt).
// The stimulus and synaptic inputs must already be latched into IStim and
// ISyn for this tick.
func (ac *HHParams) VmFmI(fc *fixed.Config, nrn *Neuron) {
	tot := fc.Clamp(nrn.IStim + nrn.ISyn)
	tot = fc.Clamp(tot - nrn.INa)
	tot = fc.Clamp(tot - nrn.IK)
	tot = fc.Clamp(tot - nrn.IL)
	nrn.Inet = tot
	nrn.VmNew = fc.Clamp(nrn.Vm + fc.Mul(tot, ac.DtX))
}

// GateFmRate computes one bounded gate update:
// clamp(x + (alpha*(ONE-x) - beta*x) * Dt) limited to [0, ONE].  The
// bound is part of the update function itself, never external
// enforcement, so a saturated rate (e.g. the LinExp divide-by-zero case)
// still yields an in-range gate.
func (ac *HHParams) GateFmRate(fc *fixed.Config, x, alpha, beta fixed.Fixed) fixed.Fixed {
	dx := fc.Clamp(fc.Mul(alpha, fc.Clamp(fc.One-x)) - fc.Mul(beta, x))
	nx := fc.Clamp(x + fc.Mul(dx, ac.DtX))
	return fc.ClampRange(nx, 0, fc.One)
}

// GatesFmRates updates all three gates (stage 3) using the current rate
// register outputs, which reflect the voltage from one tick prior.
func (ac *HHParams) GatesFmRates(fc *fixed.Config, nrn *Neuron) {
	rv := &nrn.RateOut
	nrn.NNew = ac.GateFmRate(fc, nrn.N, rv.AlphaN, rv.BetaN)
	nrn.MNew = ac.GateFmRate(fc, nrn.M, rv.AlphaM, rv.BetaM)
	nrn.HNew = ac.GateFmRate(fc, nrn.H, rv.AlphaH, rv.BetaH)
}

// CommitOutput commits the computed step (stage 4): the new voltage and
// gates become the architectural state, and spike is set if the committed
// voltage crossed above zero.  The commit after a spike discards the
// computed voltage and forces VmRest instead, which also guarantees the
// spike is a single pulse per crossing.  Gates are never force-reset.
func (ac *HHParams) CommitOutput(fc *fixed.Config, nrn *Neuron) {
	if nrn.SpikeLast {
		nrn.Vm = ac.VmRestX
	} else {
		nrn.Vm = nrn.VmNew
	}
	nrn.N = nrn.NNew
	nrn.M = nrn.MNew
	nrn.H = nrn.HNew
	nrn.Spike = nrn.Vm > 0
	nrn.SpikeLast = nrn.Spike
}
