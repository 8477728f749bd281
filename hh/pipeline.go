// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"github.com/goki/ki/kit"
)

//////////////////////////////////////////////////////////////////////////////////////
//  NeuronStage

// NeuronStage is the active stage of the neuron integration pipeline.
// The hardware rotates through the four stages one per tick, completing
// one integration step per rotation; each stage's output registers carry
// a validity bit that is consumed by the next stage.
type NeuronStage int

//go:generate stringer -type=NeuronStage

var KiT_NeuronStage = kit.Enums.AddEnum(NeuronStageN, kit.NotBitFlag, nil)

func (ev NeuronStage) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *NeuronStage) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The neuron pipeline stages
const (
	// StageCurrents computes the three ion currents from the committed
	// voltage and gating variables
	StageCurrents NeuronStage = iota

	// StageVmem samples the stimulus and synaptic inputs and integrates
	// the membrane voltage
	StageVmem

	// StageGates updates the three gating variables from the pipelined
	// rate constants
	StageGates

	// StageOutput commits the new voltage and gates, detects the spike,
	// and applies the post-spike voltage reset
	StageOutput

	NeuronStageN
)

//////////////////////////////////////////////////////////////////////////////////////
//  PipeState

// PipeState is the three-state controller status of a pipelined component,
// driven by the ready / valid backpressure protocol.
type PipeState int

//go:generate stringer -type=PipeState

var KiT_PipeState = kit.Enums.AddEnum(PipeStateN, kit.NotBitFlag, nil)

func (ev PipeState) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *PipeState) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The pipeline controller states
const (
	// PipeIdle is the post-reset state before the first cycle runs
	PipeIdle PipeState = iota

	// PipeRunning means the component advanced on the last cycle
	PipeRunning

	// PipeStalled means a downstream not-ready held all registers on the
	// last cycle -- resuming continues exactly where it stalled
	PipeStalled

	PipeStateN
)
