// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"github.com/ccnlab/hhchip/exptab"
	"github.com/ccnlab/hhchip/fixed"
	"github.com/goki/ki/kit"
)

//////////////////////////////////////////////////////////////////////////////////////
//  RateForm

// RateForm is the algebraic form of a kinetic rate function.  All three
// forms are built from the same pieces: u = (V + Bias) / Tau through the
// safe divide, exp(-u) through the lookup table, and a Scale factor.
type RateForm int

//go:generate stringer -type=RateForm

var KiT_RateForm = kit.Enums.AddEnum(RateFormN, kit.NotBitFlag, nil)

func (ev RateForm) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *RateForm) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The rate function forms
const (
	// RateExp is Scale * exp(-u): a pure exponential of voltage
	RateExp RateForm = iota

	// RateLinExp is Scale * (V + Bias) / (ONE - exp(-u)): the
	// linear-over-exponential form of the classic alpha functions.  At
	// V = -Bias the denominator is exactly zero and the safe divide
	// saturates to Max; the gate update's [0, ONE] clamp bounds it.
	RateLinExp

	// RateSig is Scale / (ONE + exp(-u)): a sigmoid of voltage
	RateSig

	RateFormN
)

//////////////////////////////////////////////////////////////////////////////////////
//  RateFn

// RateFn specifies one kinetic rate function of membrane voltage.
type RateFn struct {
	Form  RateForm `desc:"algebraic form of the function"`
	Scale float32  `desc:"output scale factor"`
	Bias  float32  `desc:"voltage offset (mV) added before dividing by Tau"`
	Tau   float32  `min:"0.001" desc:"voltage divisor (mV) setting the exponential slope"`

	ScaleX fixed.Fixed `view:"-" json:"-" xml:"-" desc:"Scale in raw units"`
	BiasX  fixed.Fixed `view:"-" json:"-" xml:"-" desc:"Bias in raw units"`
	TauX   fixed.Fixed `view:"-" json:"-" xml:"-" desc:"Tau in raw units"`
}

// Set sets the function parameters (call Update after)
func (rf *RateFn) Set(form RateForm, scale, bias, tau float32) {
	rf.Form = form
	rf.Scale = scale
	rf.Bias = bias
	rf.Tau = tau
}

// Update derives the raw fixed-point values from the natural-unit parameters
func (rf *RateFn) Update(fc *fixed.Config) {
	rf.ScaleX = fc.FromFloat(rf.Scale)
	rf.BiasX = fc.FromFloat(rf.Bias)
	rf.TauX = fc.FromFloat(rf.Tau)
}

// RateFmV evaluates the function at raw membrane voltage vm.  Every
// intermediate goes through the saturating kernel, so the result is
// bounded for any input.
func (rf *RateFn) RateFmV(fc *fixed.Config, et *exptab.Table, vm fixed.Fixed) fixed.Fixed {
	vb := fc.Clamp(vm + rf.BiasX)
	u := fc.Div(vb, rf.TauX)
	e := et.ExpNeg(u)
	switch rf.Form {
	case RateLinExp:
		return fc.Div(fc.Mul(rf.ScaleX, vb), fc.Clamp(fc.One-e))
	case RateSig:
		return fc.Div(rf.ScaleX, fc.Clamp(fc.One+e))
	default:
		return fc.Mul(rf.ScaleX, e)
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  RateParams

// RateParams are the six kinetic rate functions of the Hodgkin-Huxley
// model, in the chip's simplified closed forms.  The voltage dependence
// (Bias and Tau per gate) follows the classic parameterization; the
// Scale factors are retuned for the coarse integration step and the
// narrow gate words.  With the textbook scales the inactivation gate h
// cannot recover between commits: its raw increment truncates to zero
// while its decrement floors to at least one, so h grinds down to the
// bottom of the word and the sodium channel dies after the first spike.
// The defaults below speed alpha_h and slow beta_h and beta_m enough
// that h survives the upstroke, and speed beta_n so the K gate closes
// between spikes instead of ratcheting into depolarization block.
type RateParams struct {
	AlphaN RateFn `view:"inline" desc:"K activation opening rate"`
	BetaN  RateFn `view:"inline" desc:"K activation closing rate"`
	AlphaM RateFn `view:"inline" desc:"Na activation opening rate"`
	BetaM  RateFn `view:"inline" desc:"Na activation closing rate"`
	AlphaH RateFn `view:"inline" desc:"Na inactivation recovery rate"`
	BetaH  RateFn `view:"inline" desc:"Na inactivation rate"`
}

func (rp *RateParams) Defaults() {
	rp.AlphaN.Set(RateLinExp, 0.01, 55, 10)
	rp.BetaN.Set(RateExp, 0.5, 65, 80)
	rp.AlphaM.Set(RateLinExp, 0.2, 40, 10)
	rp.BetaM.Set(RateExp, 8, 65, 18)
	rp.AlphaH.Set(RateExp, 0.5, 65, 20)
	rp.BetaH.Set(RateSig, 0.25, 35, 10)
}

// Update derives all the raw values
func (rp *RateParams) Update(fc *fixed.Config) {
	rp.AlphaN.Update(fc)
	rp.BetaN.Update(fc)
	rp.AlphaM.Update(fc)
	rp.BetaM.Update(fc)
	rp.AlphaH.Update(fc)
	rp.BetaH.Update(fc)
}

// RatesFmV computes all six rates from raw membrane voltage vm.
// In the hardware these feed a one-tick register stage: see
// Network.CycleNeuron for the RateNxt -> RateOut pipeline that makes a
// rate observation one tick stale relative to the voltage it came from.
func (rp *RateParams) RatesFmV(fc *fixed.Config, et *exptab.Table, vm fixed.Fixed) RateVals {
	return RateVals{
		AlphaN: rp.AlphaN.RateFmV(fc, et, vm),
		BetaN:  rp.BetaN.RateFmV(fc, et, vm),
		AlphaM: rp.AlphaM.RateFmV(fc, et, vm),
		BetaM:  rp.BetaM.RateFmV(fc, et, vm),
		AlphaH: rp.AlphaH.RateFmV(fc, et, vm),
		BetaH:  rp.BetaH.RateFmV(fc, et, vm),
	}
}

// RateVals holds one set of six computed rate constants -- the payload of
// the rate calculator's pipeline register.
type RateVals struct {
	AlphaN fixed.Fixed `desc:"K activation opening rate"`
	BetaN  fixed.Fixed `desc:"K activation closing rate"`
	AlphaM fixed.Fixed `desc:"Na activation opening rate"`
	BetaM  fixed.Fixed `desc:"Na activation closing rate"`
	AlphaH fixed.Fixed `desc:"Na inactivation recovery rate"`
	BetaH  fixed.Fixed `desc:"Na inactivation rate"`
}

// Zero sets all values to 0 -- the reset state of the rate registers
func (rv *RateVals) Zero() {
	*rv = RateVals{}
}
