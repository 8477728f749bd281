// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exptab

import (
	"testing"

	"github.com/ccnlab/hhchip/fixed"
)

func TestBuild(t *testing.T) {
	et := Table{}
	et.Defaults()
	if err := et.Validate(); err != nil {
		t.Error(err)
	}
	if len(et.Vals) != 256 {
		t.Errorf("table size %d != 256\n", len(et.Vals))
	}
	if et.Vals[0] != et.FC.One {
		t.Errorf("entry 0 = %v not pinned to One %v\n", et.Vals[0], et.FC.One)
	}
	if et.Vals[255] != 0 {
		t.Errorf("last entry = %v not pinned to 0\n", et.Vals[255])
	}
	// natural values below the pin saturate: exp(9.92) * 128 >> Max
	if et.Vals[1] != et.FC.Max {
		t.Errorf("entry 1 = %v expected saturated Max %v\n", et.Vals[1], et.FC.Max)
	}
	// x = 0 lands exactly on entry 128, exp(0) = One
	if et.Vals[128] != et.FC.One {
		t.Errorf("entry 128 = %v != One %v\n", et.Vals[128], et.FC.One)
	}
	// monotone non-increasing everywhere past the pinned entry
	for i := 1; i < 255; i++ {
		if et.Vals[i] < et.Vals[i+1] {
			t.Errorf("table not monotone at %d: %v < %v\n", i, et.Vals[i], et.Vals[i+1])
		}
	}
}

// TestExpNeg checks exact lookups: raw query step between adjacent entries
// is 10 in Q16.7 (0.078125 * 128), so x = -1280 + 10*i hits entry i with a
// zero interpolation weight.
func TestExpNeg(t *testing.T) {
	et := Table{}
	et.Defaults()
	xs := []fixed.Fixed{-1280, 0, -320, 320, 1270}
	want := []fixed.Fixed{128, 128, 1559, 11, 0}
	for i := range xs {
		got := et.ExpNeg(xs[i])
		if got != want[i] {
			t.Errorf("ExpNeg(%v) = %v != %v\n", xs[i], got, want[i])
		}
	}
}

// TestInterp checks the interpolation weighting halfway between entries
// 96 (1559) and 97 (1442): (1559*64 + 1442*64) >> 7 = 1500.
func TestInterp(t *testing.T) {
	et := Table{}
	et.Defaults()
	if got := et.ExpNeg(-315); got != 1500 {
		t.Errorf("ExpNeg(-315) = %v != 1500\n", got)
	}
	// a non-node query below x=1: idx 140 frac 102 over entries 50, 46
	if got := et.ExpNeg(128); got != 46 {
		t.Errorf("ExpNeg(128) = %v != 46\n", got)
	}
}

// TestClip: queries outside [XMin, XMax] saturate to the boundary entries
// instead of wrapping.
func TestClip(t *testing.T) {
	et := Table{}
	et.Defaults()
	xs := []fixed.Fixed{-2000, -32768, 1280, 32767}
	want := []fixed.Fixed{128, 128, 0, 0}
	for i := range xs {
		got := et.ExpNeg(xs[i])
		if got != want[i] {
			t.Errorf("ExpNeg(%v) = %v != %v\n", xs[i], got, want[i])
		}
	}
}

func TestReducedWidth(t *testing.T) {
	et := Table{}
	et.Size = 256
	et.XMin = -10
	et.XMax = 10
	et.FC = fixed.Config{Width: 12, Frac: 4}
	et.Build()
	if et.Vals[0] != 16 || et.Vals[255] != 0 {
		t.Errorf("Q12.4 pins wrong: %v %v\n", et.Vals[0], et.Vals[255])
	}
	if got := et.ExpNeg(0); got != 16 {
		t.Errorf("Q12.4 ExpNeg(0) = %v != 16\n", got)
	}
}
