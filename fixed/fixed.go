// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fixed provides the saturating signed fixed-point (Q format)
arithmetic kernel that the rest of the hhchip repository is built on.

A value is represented as a signed integer of Width total bits with Frac
fractional bits, i.e. the real value is raw / 2^Frac.  The canonical
hardware configuration is Q16.7 (Width = 16, Frac = 7, ONE = 128), with
reduced Q12.4 and Q8.3 variants.  Values are held in an int32 regardless
of Width -- Config defines the representable [Min, Max] range and all
operations saturate to it rather than wrapping.

The kernel reproduces the datapath exactly: products widen to double
precision, shift right by Frac (2*Frac for the 3-operand form) with
arithmetic (floor) semantics for negative values, then clamp.  Quotients
pre-shift the numerator left by Frac and truncate toward zero.  Division
by zero is not an error: it returns Max, the hardware's
saturate-on-divide-by-zero policy.
*/
package fixed

import (
	"fmt"

	"github.com/goki/mat32"
)

// Fixed is a signed fixed-point value under some Config.  The zero value
// is 0.0 in every configuration.
type Fixed int32

// Config specifies the width and scaling of a fixed-point representation,
// with the derived range values updated by Update.
type Config struct {
	Width int   `def:"16" min:"4" max:"21" desc:"total number of bits including the sign bit -- 21 is the most that keeps the 3-operand product within 64 bits"`
	Frac  int   `def:"7" min:"0" desc:"number of fractional bits -- real value = raw / 2^Frac"`
	One   Fixed `inactive:"+" desc:"1.0 in raw units = 1 << Frac -- computed from Frac"`
	Max   Fixed `inactive:"+" desc:"largest representable raw value = 2^(Width-1) - 1 -- computed from Width"`
	Min   Fixed `inactive:"+" desc:"smallest representable raw value = -2^(Width-1) -- computed from Width"`
}

func (fc *Config) Defaults() {
	fc.Width = 16
	fc.Frac = 7
	fc.Update()
}

// Update computes the derived One, Max, Min values from Width, Frac.
func (fc *Config) Update() {
	fc.One = 1 << uint(fc.Frac)
	fc.Max = 1<<uint(fc.Width-1) - 1
	fc.Min = -(1 << uint(fc.Width-1))
}

// Validate returns an error if the Width / Frac combination is not
// representable by this kernel.
func (fc *Config) Validate() error {
	if fc.Width < 4 || fc.Width > 21 {
		return fmt.Errorf("fixed.Config: Width %d out of range [4, 21]", fc.Width)
	}
	if fc.Frac < 0 || fc.Frac > fc.Width-2 {
		return fmt.Errorf("fixed.Config: Frac %d out of range [0, %d] for Width %d", fc.Frac, fc.Width-2, fc.Width)
	}
	return nil
}

// sat saturates a double-precision intermediate to the representable range.
func (fc *Config) sat(v int64) Fixed {
	if v > int64(fc.Max) {
		return fc.Max
	}
	if v < int64(fc.Min) {
		return fc.Min
	}
	return Fixed(v)
}

// Clamp returns v limited to the representable [Min, Max] range.
// It is idempotent: Clamp(Clamp(v)) == Clamp(v).
func (fc *Config) Clamp(v Fixed) Fixed {
	return fc.sat(int64(v))
}

// ClampRange returns v limited to [lo, hi] -- used for the gating-variable
// [0, One] bound.
func (fc *Config) ClampRange(v, lo, hi Fixed) Fixed {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mul is the saturating 2-operand multiply: widen, multiply, shift right
// by Frac (arithmetic shift, flooring for negatives), clamp.
func (fc *Config) Mul(a, b Fixed) Fixed {
	return fc.sat((int64(a) * int64(b)) >> uint(fc.Frac))
}

// Mul3 is the saturating 3-operand multiply: the full triple product is
// formed at double precision before a single shift by 2*Frac, so it loses
// less precision than two chained Mul calls and saturates only once.
func (fc *Config) Mul3(a, b, c Fixed) Fixed {
	return fc.sat((int64(a) * int64(b) * int64(c)) >> uint(2*fc.Frac))
}

// Div is the saturating divide: numerator shifted left by Frac, integer
// divide truncating toward zero, clamp.  A zero denominator returns Max
// (saturate-on-divide-by-zero), never an error.
func (fc *Config) Div(num, den Fixed) Fixed {
	if den == 0 {
		return fc.Max
	}
	return fc.sat((int64(num) << uint(fc.Frac)) / int64(den))
}

// FromFloat converts a float to the nearest representable fixed-point
// value, saturating out-of-range inputs.
func (fc *Config) FromFloat(v float32) Fixed {
	return fc.sat(int64(mat32.Round(v * float32(fc.One))))
}

// FromInt converts a whole number exactly (saturating), without any
// float rounding.
func (fc *Config) FromInt(v int) Fixed {
	return fc.sat(int64(v) << uint(fc.Frac))
}

// Float converts a fixed-point value back to float32, for display and
// logging only -- the simulation itself never round-trips through floats.
func (fc *Config) Float(v Fixed) float32 {
	return float32(v) / float32(fc.One)
}
