// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

// hh.Chip models the chip pin interface around the network: an 8-bit
// stimulus input bus, an 8-bit output bus carrying the top byte of
// neuron A's membrane voltage, and a bidirectional bus packing both
// spike bits with the top 6 bits of neuron B's membrane voltage.
// Control lines are fields: RstN is the active-low reset sampled every
// step and overriding everything else, Ena gates all state updates, and
// Ready is the downstream flow-control signal.  The byte mapping
// requires a fixed-point width of at least 8.
type Chip struct {
	Net   Network `desc:"the two-neuron circuit behind the pins"`
	RstN  bool    `desc:"active-low reset: while false every step resets the network"`
	Ena   bool    `desc:"enable: while false steps do not advance state"`
	Ready bool    `desc:"downstream ready: while false the network stalls in place"`
}

// Defaults configures the network and releases all control lines
func (cp *Chip) Defaults() {
	cp.Net.Defaults()
	cp.RstN = true
	cp.Ena = true
	cp.Ready = true
}

// Step advances the chip by one clock with the given input buses and
// returns the output buses.  uioIn is accepted for pin fidelity but the
// bidirectional bus is output-only here.  Reset wins over enable: while
// RstN is low the network re-enters its reset state every step.
func (cp *Chip) Step(uiIn, uioIn uint8) (uoOut, uioOut uint8) {
	_ = uioIn
	if !cp.RstN {
		cp.Net.Reset()
	} else if cp.Ena {
		cp.Net.Cycle(uiIn, cp.Ready)
	}
	return cp.Read()
}

// Read returns the output buses for the current state without advancing.
// uoOut is the top byte of neuron A's membrane voltage.  uioOut packs
// neuron A's spike in bit 0, neuron B's spike in bit 1, and the top
// 6 bits of neuron B's membrane voltage in bits 7:2.
func (cp *Chip) Read() (uoOut, uioOut uint8) {
	w := cp.Net.FC.Width
	uoOut = uint8(cp.Net.NeurA.Vm >> uint(w-8))
	uioOut = (uint8(cp.Net.NeurB.Vm>>uint(w-6)) & 0x3F) << 2
	if cp.Net.NeurA.Spike {
		uioOut |= 0x1
	}
	if cp.Net.NeurB.Spike {
		uioOut |= 0x2
	}
	return
}
