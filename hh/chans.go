// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import "github.com/ccnlab/hhchip/fixed"

// ChanParams are the ion-channel conductances and reversal potentials for
// the three channel types (Na, K, leak), specified in natural units
// (conductances relative to ONE, potentials in mV) with the raw
// fixed-point values derived by Update.  The canonical values are the
// classic Hodgkin-Huxley squid-axon constants as the chip truncates them.
type ChanParams struct {
	GbarNa float32 `def:"120" min:"0" desc:"maximal sodium conductance"`
	GbarK  float32 `def:"36" min:"0" desc:"maximal potassium (delayed rectifier) conductance"`
	GbarL  float32 `def:"0.3" min:"0" desc:"leak conductance"`
	ENa    float32 `def:"50" desc:"sodium reversal potential (mV)"`
	EK     float32 `def:"-77" desc:"potassium reversal potential (mV)"`
	EL     float32 `def:"-54.387" desc:"leak reversal potential (mV) -- the chip's resting point is set by leak, slightly depolarized from the reset voltage"`

	GNaX fixed.Fixed `view:"-" json:"-" xml:"-" desc:"GbarNa in raw units"`
	GKX  fixed.Fixed `view:"-" json:"-" xml:"-" desc:"GbarK in raw units"`
	GLX  fixed.Fixed `view:"-" json:"-" xml:"-" desc:"GbarL in raw units"`
	ENaX fixed.Fixed `view:"-" json:"-" xml:"-" desc:"ENa in raw units"`
	EKX  fixed.Fixed `view:"-" json:"-" xml:"-" desc:"EK in raw units"`
	ELX  fixed.Fixed `view:"-" json:"-" xml:"-" desc:"EL in raw units"`
}

func (ch *ChanParams) Defaults() {
	ch.GbarNa = 120
	ch.GbarK = 36
	ch.GbarL = 0.3
	ch.ENa = 50
	ch.EK = -77
	ch.EL = -54.387
}

// Update derives the raw fixed-point values from the natural-unit
// parameters -- out-of-range values saturate, which is what the narrower
// hardware variants do too.
func (ch *ChanParams) Update(fc *fixed.Config) {
	ch.GNaX = fc.FromFloat(ch.GbarNa)
	ch.GKX = fc.FromFloat(ch.GbarK)
	ch.GLX = fc.FromFloat(ch.GbarL)
	ch.ENaX = fc.FromFloat(ch.ENa)
	ch.EKX = fc.FromFloat(ch.EK)
	ch.ELX = fc.FromFloat(ch.EL)
}

// SetAll sets all the conductances and reversals
func (ch *ChanParams) SetAll(gna, gk, gl, ena, ek, el float32) {
	ch.GbarNa = gna
	ch.GbarK = gk
	ch.GbarL = gl
	ch.ENa = ena
	ch.EK = ek
	ch.EL = el
}
