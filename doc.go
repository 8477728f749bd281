// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hhchip is the overall repository for a cycle-accurate, fixed-point
simulation of a two-neuron Hodgkin-Huxley spiking circuit with an STDP
synapse, as implemented in small mixed-signal neuromorphic test chips.

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* fixed: the saturating fixed-point arithmetic kernel (configurable width
and fractional bits) that all higher-level numerics are built on.

* exptab: the precomputed exp(-x) lookup table with linear interpolation,
used by the kinetic rate functions.

* hh: the core simulation: the six-rate calculator, the 4-stage pipelined
neuron integrator, the 2-stage STDP synapse, the two-neuron network with
ready / valid backpressure, and the chip-level pin interface.

* stim: test-stimulus environments (step, sine, pairing protocols) and a
spike monitor, implementing the emergent env.Env interface.

* examples: these compile into runnable programs.  examples/hhpair runs
the two-neuron circuit headless and logs a cycle-by-cycle table,
examples/fichar sweeps the stimulus range to characterize the f-I curve
(optionally in parallel under MPI), and examples/rateplot is a GUI plot
of the rate functions and the lookup-table approximation error.
*/
package hhchip
