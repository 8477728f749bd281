// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hh implements a cycle-accurate simulation of a two-neuron
Hodgkin-Huxley spiking circuit in saturating fixed-point arithmetic,
reproducing the digital datapath of the silicon implementation bit for
bit rather than approximating it in floating point.

Every quantity lives in the shared fixed.Config format (a sign bit plus
integer and fractional fields), all arithmetic saturates instead of
wrapping, and every exp(-x) evaluation goes through the exptab lookup
table with linear interpolation, exactly as the hardware computes it.

The central type is Network: two neurons, A and B, with a plastic
synapse from A to B.  Network.Cycle advances everything by one clock
tick.  Neuron integration rotates through a four-stage pipeline
(currents, membrane voltage, gates, output), so with the pipeline
enabled a neuron commits new state every 4 ticks; the LIF8 variant
disables the pipeline and commits every tick.

The synapse learns by spike-timing-dependent plasticity with
exponentially decaying pre and post traces: a presynaptic spike followed
by a postsynaptic one potentiates, the reverse order depresses, and
coincident spikes potentiate.

Chip variants are provided as params.Sets applied through SetVariant:
Full16 is the full model on the 16 bit datapath, Reduced12 narrows the
datapath to 12 bits with coarser rate constants, and LIF8 is an 8 bit
leaky integrate-and-fire with the voltage-gated channels disabled.
CycleLog records the per-tick trajectory into an etable.Table for
plotting and analysis, and Chip wraps the network in the 8 bit pin
interface of the packaged part.
*/
package hh
