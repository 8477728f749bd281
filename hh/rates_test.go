// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"testing"

	"github.com/ccnlab/hhchip/exptab"
	"github.com/ccnlab/hhchip/fixed"
)

func newRateEnv() (*fixed.Config, *exptab.Table, *RateParams) {
	fc := &fixed.Config{}
	fc.Defaults()
	et := &exptab.Table{}
	et.Defaults()
	et.FC = *fc
	et.Build()
	rp := &RateParams{}
	rp.Defaults()
	rp.Update(fc)
	return fc, et, rp
}

func TestRateRawParams(t *testing.T) {
	_, _, rp := newRateEnv()
	fns := []*RateFn{&rp.AlphaN, &rp.BetaN, &rp.AlphaM, &rp.BetaM, &rp.AlphaH, &rp.BetaH}
	nms := []string{"AlphaN", "BetaN", "AlphaM", "BetaM", "AlphaH", "BetaH"}
	forms := []RateForm{RateLinExp, RateExp, RateLinExp, RateExp, RateExp, RateSig}
	scales := []fixed.Fixed{1, 64, 26, 1024, 64, 32}
	biases := []fixed.Fixed{7040, 8320, 5120, 8320, 8320, 4480}
	taus := []fixed.Fixed{1280, 10240, 1280, 2304, 2560, 1280}
	for i, rf := range fns {
		if rf.Form != forms[i] {
			t.Errorf("%s Form: %v != %v\n", nms[i], rf.Form, forms[i])
		}
		if rf.ScaleX != scales[i] || rf.BiasX != biases[i] || rf.TauX != taus[i] {
			t.Errorf("%s raw: Scale %v Bias %v Tau %v != %v %v %v\n", nms[i], rf.ScaleX, rf.BiasX, rf.TauX, scales[i], biases[i], taus[i])
		}
	}
}

// TestRatesFmV pins the six rate outputs at voltages spanning rest to
// spike peak.  Every value bakes in the truncating divide, the floor
// shift, and the interpolated exponential table, so any change to the
// arithmetic kernel shows up here.
func TestRatesFmV(t *testing.T) {
	fc, et, rp := newRateEnv()
	vms := []fixed.Fixed{-8320, -6400, -2560, 0, 1280}
	wants := []RateVals{
		{5, 64, 58, 1024, 64, 1},
		{12, 52, 151, 448, 30, 5},
		{36, 36, 599, 88, 6, 26},
		{55, 28, 1056, 24, 2, 31},
		{65, 25, 1310, 16, 1, 31},
	}
	for i, vm := range vms {
		rv := rp.RatesFmV(fc, et, vm)
		if rv != wants[i] {
			t.Errorf("rates at Vm %v: %+v != %+v\n", vm, rv, wants[i])
		}
	}
}

// TestRateSingular checks the LinExp denominator-zero band.  The divide
// of V + Bias by Tau truncates toward zero, so u is 0 for the whole band
// |V + Bias| < Tau/ONE, the exponential is exactly ONE there, and the
// denominator is zero: the safe divide saturates to Max rather than
// trapping, and the gate update's [0, ONE] bound absorbs it.
func TestRateSingular(t *testing.T) {
	fc, et, rp := newRateEnv()
	for vm := fixed.Fixed(-7049); vm <= -7031; vm++ {
		if an := rp.AlphaN.RateFmV(fc, et, vm); an != fc.Max {
			t.Errorf("AlphaN at %v should saturate to Max, got %v\n", vm, an)
		}
	}
	if an := rp.AlphaN.RateFmV(fc, et, -7050); an != 128 {
		t.Errorf("AlphaN below the singular band: %v != 128\n", an)
	}
	if an := rp.AlphaN.RateFmV(fc, et, -7030); an != 0 {
		t.Errorf("AlphaN above the singular band: %v != 0\n", an)
	}
	if am := rp.AlphaM.RateFmV(fc, et, -5120); am != fc.Max {
		t.Errorf("AlphaM at -5120 should saturate to Max, got %v\n", am)
	}
}

func TestRateFormString(t *testing.T) {
	if RateExp.String() != "RateExp" || RateLinExp.String() != "RateLinExp" || RateSig.String() != "RateSig" {
		t.Errorf("RateForm strings wrong: %v %v %v\n", RateExp, RateLinExp, RateSig)
	}
}
