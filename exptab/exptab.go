// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package exptab provides the precomputed exp(-x) lookup table used by the
kinetic rate functions, together with the linear interpolation between
adjacent entries that the hardware performs on every lookup.

The table is built once before simulation begins and is immutable and
read-only afterwards, so it is shared freely without synchronization.
Entry 0 is pinned to exactly One and the last entry to exactly 0: these
two boundary values are explicit policy in the hardware (they do not
fall out of uniform sampling, which would saturate at the low end and
leave a small residual at the high end).
*/
package exptab

import (
	"fmt"

	"github.com/ccnlab/hhchip/fixed"
	"github.com/chewxy/math32"
	"github.com/goki/ki/ints"
	"github.com/goki/mat32"
)

// Table is the sampled exp(-x) function over [XMin, XMax] in a given
// fixed-point format.  Call Defaults then Build (or set fields and call
// Build) before any lookups.
type Table struct {
	Size   int           `def:"256" desc:"number of table entries"`
	XMin   float32       `def:"-10" desc:"x value sampled at entry 0"`
	XMax   float32       `def:"10" desc:"upper end of the sampled range -- entries step by (XMax-XMin)/Size so the last entry sits one step below XMax"`
	FC     fixed.Config  `view:"inline" desc:"fixed-point format the samples are stored in"`
	Vals   []fixed.Fixed `view:"-" desc:"the samples: Vals[i] = round(exp(-x_i) * One) saturated to range, with entries 0 and Size-1 pinned"`
	XMinX  fixed.Fixed   `inactive:"+" desc:"XMin in raw fixed-point units"`
	RangeX int           `inactive:"+" desc:"XMax - XMin in raw units, kept at full precision -- the scaled-index computation is wider than the datapath"`
}

func (et *Table) Defaults() {
	et.Size = 256
	et.XMin = -10
	et.XMax = 10
	et.FC.Defaults()
	et.Build()
}

// Validate returns an error if the table parameters cannot produce a
// usable table.
func (et *Table) Validate() error {
	if err := et.FC.Validate(); err != nil {
		return err
	}
	if et.Size < 2 {
		return fmt.Errorf("exptab.Table: Size %d must be at least 2", et.Size)
	}
	if et.XMax <= et.XMin {
		return fmt.Errorf("exptab.Table: XMax %g must exceed XMin %g", et.XMax, et.XMin)
	}
	return nil
}

// Build constructs the table for the current parameters.  Out-of-range
// samples saturate naturally (exp(10) at entry 0 would clamp to Max) and
// are then overwritten by the pinned boundary values.
func (et *Table) Build() {
	et.FC.Update()
	et.XMinX = et.FC.FromFloat(et.XMin)
	et.RangeX = int(mat32.Round((et.XMax - et.XMin) * float32(et.FC.One)))
	step := (et.XMax - et.XMin) / float32(et.Size)
	et.Vals = make([]fixed.Fixed, et.Size)
	for i := range et.Vals {
		x := et.XMin + float32(i)*step
		et.Vals[i] = et.FC.FromFloat(math32.Exp(-x))
	}
	et.Vals[0] = et.FC.One
	et.Vals[et.Size-1] = 0
}

// ExpNeg returns exp(-x) for a raw fixed-point x, linearly interpolated
// between the two adjacent entries.  The scaled index (integer entry
// index plus Frac fractional bits of interpolation weight) is clamped to
// the table before the split, so out-of-range x returns the boundary
// entry rather than wrapping; idx+1 at the top entry clamps to the top
// entry.
func (et *Table) ExpNeg(x fixed.Fixed) fixed.Fixed {
	one := int64(et.FC.One)
	idxFull := int((int64(x) - int64(et.XMinX)) * int64(et.Size) * one / int64(et.RangeX))
	idxFull = ints.MaxInt(0, ints.MinInt(idxFull, et.Size*int(et.FC.One)-1))
	idx := idxFull >> uint(et.FC.Frac)
	frac := int64(idxFull) & (one - 1)
	nxt := ints.MinInt(idx+1, et.Size-1)
	v := (int64(et.Vals[idx])*(one-frac) + int64(et.Vals[nxt])*frac) >> uint(et.FC.Frac)
	return et.FC.Clamp(fixed.Fixed(v))
}
