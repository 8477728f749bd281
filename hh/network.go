// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/ccnlab/hhchip/exptab"
	"github.com/ccnlab/hhchip/fixed"
	"github.com/emer/emergent/params"
)

// hh.StimParams maps the 8-bit external stimulus input onto a signed
// fixed-point current: i_stim = (ext - Offset) << Shift, clamped.
// Offset 128 centers the byte range so 0x80 is zero current, and the
// shift sets the full-scale current in raw units.
type StimParams struct {
	Offset int `def:"128" min:"0" max:"255" desc:"byte value mapping to zero current"`
	Shift  int `def:"4" min:"0" desc:"left shift from offset byte to raw current units"`
}

func (st *StimParams) Defaults() {
	st.Offset = 128
	st.Shift = 4
}

// Current returns the raw stimulus current for the given input byte
func (st *StimParams) Current(fc *fixed.Config, ext uint8) fixed.Fixed {
	return fc.Clamp(fixed.Fixed((int(ext) - st.Offset) << uint(st.Shift)))
}

// hh.Network is the complete two-neuron circuit: neuron A driven by the
// external stimulus, a plastic synapse from A to B, and neuron B whose
// spikes feed back as the postsynaptic learning signal.  All state
// advances in lockstep, one tick per Cycle call, and every stage reads
// only state committed on earlier ticks, so results are bit-reproducible
// regardless of evaluation order within a tick.
type Network struct {
	FC    fixed.Config  `view:"inline" desc:"fixed-point format shared by every computation in the network"`
	Tab   exptab.Table  `view:"no-inline" desc:"shared exponential lookup table"`
	Act   HHParams      `view:"add-fields" desc:"membrane, gate, and channel parameters, shared by both neurons"`
	Learn SynParams     `view:"inline" desc:"STDP learning parameters"`
	Stim  StimParams    `view:"inline" desc:"external stimulus byte to current mapping"`
	NeurA Neuron        `desc:"presynaptic neuron, driven by the external stimulus"`
	NeurB Neuron        `desc:"postsynaptic neuron, driven by the synapse"`
	Syn   Synapse       `desc:"plastic synapse from A to B"`
	Tick  int           `inactive:"+" desc:"number of non-stalled ticks since Reset"`

	Variant Variant `inactive:"+" desc:"variant last applied via SetVariant"`
}

// Defaults sets all parameters to their canonical values and
// derives the raw fixed-point constants.
func (nt *Network) Defaults() {
	nt.FC.Defaults()
	nt.Tab.Defaults()
	nt.Act.Defaults()
	nt.Learn.Defaults()
	nt.Stim.Defaults()
	nt.UpdateParams()
}

// UpdateParams re-derives every raw fixed-point constant and rebuilds the
// exponential table from the current natural-unit parameters.  Call after
// changing any parameter, including the fixed-point format itself.
func (nt *Network) UpdateParams() {
	nt.FC.Update()
	nt.Tab.FC = nt.FC
	nt.Tab.Build()
	nt.Act.Update(&nt.FC)
	nt.Learn.Update(&nt.FC)
}

// Reset forces both neurons and the synapse to their reset state,
// equivalent to asserting the hardware reset: membrane at rest, gates at
// their initial values, weight at unity, all pipeline latches empty.
func (nt *Network) Reset() {
	nt.Act.InitActs(&nt.NeurA)
	nt.Act.InitActs(&nt.NeurB)
	nt.Learn.InitWts(&nt.Syn)
	nt.Tick = 0
}

// Cycle advances the whole network by one tick with the given external
// stimulus byte.  If ready is false the consumer is not accepting output
// and every stage freezes in place: no state changes at all, preserving
// the exact trajectory for when ready returns.  The synapse stages run
// first on the spike pulses committed at the previous tick, then each
// neuron runs its current pipeline stage.
func (nt *Network) Cycle(ext uint8, ready bool) {
	if !ready {
		nt.NeurA.State = PipeStalled
		nt.NeurB.State = PipeStalled
		nt.Syn.State = PipeStalled
		return
	}
	nt.NeurA.State = PipeRunning
	nt.NeurB.State = PipeRunning
	nt.Syn.State = PipeRunning

	preSpk := nt.NeurA.Spike
	postSpk := nt.NeurB.Spike

	nt.Learn.CurrentFmSpike(&nt.FC, &nt.Syn, preSpk)
	nt.Learn.WtFmTraces(&nt.FC, &nt.Syn)
	nt.Learn.TraceFmSpikes(&nt.FC, &nt.Syn, preSpk, postSpk)

	nt.CycleNeuron(&nt.NeurA, nt.Stim.Current(&nt.FC, ext), nil)
	nt.CycleNeuron(&nt.NeurB, 0, &nt.Syn)
	nt.Tick++
}

// CycleNeuron advances one neuron by one tick.  The rate registers always
// advance first, so the rates consumed at the gate stage were computed
// from the membrane voltage one tick earlier.  In pipelined mode only the
// neuron's current stage runs and the stage pointer rotates; otherwise
// the full integration step runs every tick.  istim is the external
// stimulus current and syn, if non-nil, supplies the synaptic current
// latch consumed at the membrane stage.
func (nt *Network) CycleNeuron(nrn *Neuron, istim fixed.Fixed, syn *Synapse) {
	fc := &nt.FC
	nrn.RateOut = nrn.RateNxt
	nrn.RateNxt = nt.Act.Rates.RatesFmV(fc, &nt.Tab, nrn.Vm)
	nrn.Spike = false

	if !nt.Act.Pipeline {
		nt.Act.CurrentsFmState(fc, nrn)
		nrn.IStim = istim
		nrn.ISyn = 0
		if syn != nil {
			nrn.ISyn = syn.ConsumeCurrent()
		}
		nt.Act.VmFmI(fc, nrn)
		nt.Act.GatesFmRates(fc, nrn)
		nt.Act.CommitOutput(fc, nrn)
		return
	}

	switch nrn.Stage {
	case StageCurrents:
		nrn.OutValid = false
		nt.Act.CurrentsFmState(fc, nrn)
		nrn.CurrValid = true
		nrn.Stage = StageVmem
	case StageVmem:
		nrn.CurrValid = false
		nrn.IStim = istim
		nrn.ISyn = 0
		if syn != nil {
			nrn.ISyn = syn.ConsumeCurrent()
		}
		nt.Act.VmFmI(fc, nrn)
		nrn.VmValid = true
		nrn.Stage = StageGates
	case StageGates:
		nrn.VmValid = false
		nt.Act.GatesFmRates(fc, nrn)
		nrn.GateValid = true
		nrn.Stage = StageOutput
	case StageOutput:
		nrn.GateValid = false
		nt.Act.CommitOutput(fc, nrn)
		nrn.OutValid = true
		nrn.Stage = StageCurrents
	}
}

// ApplyParams applies the given parameter sheet to the network's
// parameter objects, matching each selector against the parameter struct
// type names (Config, HHParams, ChanParams, RateParams, SynParams,
// StimParams).  Calls UpdateParams if anything was set, so raw constants
// and the exponential table stay consistent.  Returns true if any params
// were set, and error for any failures.
func (nt *Network) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	applied := false
	var rerr error
	objs := []interface{}{&nt.FC, &nt.Act, &nt.Act.Chans, &nt.Act.Rates, &nt.Learn, &nt.Stim}
	for _, obj := range objs {
		app, err := pars.Apply(obj, setMsg)
		if app {
			applied = true
		}
		if err != nil {
			rerr = err
		}
	}
	if applied {
		nt.UpdateParams()
	}
	return applied, rerr
}

//////////////////////////////////////////////////////////////////////////////////////
//  Misc Reports

// SizeReport returns a string reporting the memory size of the network
// state and the exponential table, i.e., what the corresponding silicon
// has to hold in registers and ROM.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	nmem := 2 * int(unsafe.Sizeof(Neuron{}))
	smem := int(unsafe.Sizeof(Synapse{}))
	tmem := len(nt.Tab.Vals) * int(unsafe.Sizeof(fixed.Fixed(0)))
	fmt.Fprintf(&b, "%14s:\t Neurons: %d\t NeurMem: %v\n", "Network", 2, (datasize.ByteSize)(nmem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Syns: %d\t SynMem: %v\n", "Network", 1, (datasize.ByteSize)(smem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Entries: %d\t TabMem: %v\n", "ExpTab", len(nt.Tab.Vals), (datasize.ByteSize)(tmem).HumanReadable())
	fmt.Fprintf(&b, "\n%14s:\t TotalMem: %v\n", "Network", (datasize.ByteSize)(nmem+smem+tmem).HumanReadable())
	return b.String()
}
