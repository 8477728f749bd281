// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import "testing"

func TestDefaults(t *testing.T) {
	fc := Config{}
	fc.Defaults()
	if fc.One != 128 || fc.Max != 32767 || fc.Min != -32768 {
		t.Errorf("Q16.7 derived values wrong: One %v Max %v Min %v\n", fc.One, fc.Max, fc.Min)
	}
	if err := fc.Validate(); err != nil {
		t.Error(err)
	}
}

func TestWidths(t *testing.T) {
	widths := []int{16, 12, 8}
	fracs := []int{7, 4, 3}
	ones := []Fixed{128, 16, 8}
	maxs := []Fixed{32767, 2047, 127}
	mins := []Fixed{-32768, -2048, -128}
	fc := Config{}
	for i := range widths {
		fc.Width = widths[i]
		fc.Frac = fracs[i]
		fc.Update()
		if fc.One != ones[i] || fc.Max != maxs[i] || fc.Min != mins[i] {
			t.Errorf("Q%d.%d derived values wrong: One %v Max %v Min %v\n", widths[i], fracs[i], fc.One, fc.Max, fc.Min)
		}
	}
}

func TestValidate(t *testing.T) {
	fc := Config{Width: 22, Frac: 7}
	if err := fc.Validate(); err == nil {
		t.Errorf("Width 22 should not validate\n")
	}
	fc = Config{Width: 16, Frac: 15}
	if err := fc.Validate(); err == nil {
		t.Errorf("Frac 15 at Width 16 should not validate\n")
	}
	fc = Config{Width: 3, Frac: 1}
	if err := fc.Validate(); err == nil {
		t.Errorf("Width 3 should not validate\n")
	}
}

func TestClamp(t *testing.T) {
	fc := Config{}
	fc.Defaults()
	vals := []Fixed{0, 1, -1, 32767, -32768, 128, -8320}
	for _, v := range vals {
		c := fc.Clamp(v)
		if c != v {
			t.Errorf("Clamp changed in-range value %v -> %v\n", v, c)
		}
		if fc.Clamp(c) != c {
			t.Errorf("Clamp not idempotent at %v\n", v)
		}
	}
	if fc.ClampRange(-5, 0, fc.One) != 0 {
		t.Errorf("ClampRange low bound failed\n")
	}
	if fc.ClampRange(200, 0, fc.One) != fc.One {
		t.Errorf("ClampRange high bound failed\n")
	}
	if fc.ClampRange(64, 0, fc.One) != 64 {
		t.Errorf("ClampRange changed in-range value\n")
	}
}

// TestMul checks the exact truncation semantics: arithmetic right shift
// floors, so small negative products round away from zero.
func TestMul(t *testing.T) {
	fc := Config{}
	fc.Defaults()
	as := []Fixed{128, 64, 13, -1, 1, 38, 32767, -32768}
	bs := []Fixed{128, 64, -3200, 8, 8, -1358, 32767, 32767}
	want := []Fixed{128, 32, -325, -1, 0, -404, 32767, -32768}
	for i := range as {
		got := fc.Mul(as[i], bs[i])
		if got != want[i] {
			t.Errorf("Mul(%v, %v) = %v != %v\n", as[i], bs[i], got, want[i])
		}
	}
}

func TestMul3(t *testing.T) {
	fc := Config{}
	fc.Defaults()
	as := []Fixed{6, 90, 240, 15360, 4608, 32767, -32768}
	bs := []Fixed{6, 90, 44, 2, 11, 32767, -32768}
	cs := []Fixed{6, 90, -8960, -8960, 4096, 32767, -32768}
	want := []Fixed{0, 44, -5775, -16800, 12672, 32767, -32768}
	for i := range as {
		got := fc.Mul3(as[i], bs[i], cs[i])
		if got != want[i] {
			t.Errorf("Mul3(%v, %v, %v) = %v != %v\n", as[i], bs[i], cs[i], got, want[i])
		}
	}
}

func TestDiv(t *testing.T) {
	fc := Config{}
	fc.Defaults()
	ns := []Fixed{128, 1, -325, -10, -1280, 5, 32767, -32768, 32767}
	ds := []Fixed{256, 3, -1431, -219, 1280, 50, 1, 1, -1}
	want := []Fixed{64, 42, 29, 5, -128, 12, 32767, -32768, -32768}
	for i := range ns {
		got := fc.Div(ns[i], ds[i])
		if got != want[i] {
			t.Errorf("Div(%v, %v) = %v != %v\n", ns[i], ds[i], got, want[i])
		}
	}
}

// TestDivZero: division by zero saturates to Max for any numerator,
// including zero and negative ones.  This is policy, not an error.
func TestDivZero(t *testing.T) {
	fc := Config{}
	fc.Defaults()
	ns := []Fixed{0, 1, -1, 32767, -32768, -8320}
	for _, n := range ns {
		if got := fc.Div(n, 0); got != fc.Max {
			t.Errorf("Div(%v, 0) = %v != Max %v\n", n, got, fc.Max)
		}
	}
}

func TestFromFloat(t *testing.T) {
	fc := Config{}
	fc.Defaults()
	fs := []float32{0.3, -54.387, 0.0625, 0.25, 4, 0.07, 0.125, 0.1, 0.01, 300, -300}
	want := []Fixed{38, -6962, 8, 32, 512, 9, 16, 13, 1, 32767, -32768}
	for i := range fs {
		got := fc.FromFloat(fs[i])
		if got != want[i] {
			t.Errorf("FromFloat(%v) = %v != %v\n", fs[i], got, want[i])
		}
	}
	is := []int{50, -77, -65, 200, 300, -300}
	iwant := []Fixed{6400, -9856, -8320, 25600, 32767, -32768}
	for i := range is {
		got := fc.FromInt(is[i])
		if got != iwant[i] {
			t.Errorf("FromInt(%v) = %v != %v\n", is[i], got, iwant[i])
		}
	}
	if fc.Float(-8320) != -65 {
		t.Errorf("Float(-8320) = %v != -65\n", fc.Float(-8320))
	}
}
