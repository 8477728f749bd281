// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stim provides stimulus environments and spike instrumentation for
driving the hhchip network the way the hardware test harness drives the
chip: one drive byte per tick in, spike pulses out.

StimEnv implements the emergent env.Env interface, generating the
external stimulus byte from a small set of drive patterns.  SpikeMonitor
counts debounced spike events and tracks interspike interval statistics,
which is all the firing-rate and pairing protocols need.
*/
package stim

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/emer/emergent/env"
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/goki/ki/ints"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// Baseline is the drive byte mapping to zero stimulus current, matching
// the default hh.StimParams.Offset.
const Baseline = 128

//////////////////////////////////////////////////////////////////////////////////////
//  StimPattern

// StimPattern is the shape of the external drive over time.
type StimPattern int

//go:generate stringer -type=StimPattern

var KiT_StimPattern = kit.Enums.AddEnum(StimPatternN, kit.NotBitFlag, nil)

func (ev StimPattern) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *StimPattern) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The drive patterns
const (
	// StimConstant drives the level from the first tick, ignoring Delay --
	// the input byte tied to a fixed value
	StimConstant StimPattern = iota

	// StimStep holds the zero-current baseline for Delay ticks, then
	// steps to the level
	StimStep

	// StimPulse alternates OnTicks at the level with OffTicks at the
	// zero-current baseline, after Delay ticks at baseline -- the
	// pairing-protocol drive
	StimPulse

	// StimSine oscillates about the zero-current baseline with the given
	// Period, after Delay ticks at baseline
	StimSine

	StimPatternN
)

//////////////////////////////////////////////////////////////////////////////////////
//  JitterParams

// JitterParams adds random per-tick variation to the drive byte, in percent
// of the full input range.  Off by default.
type JitterParams struct {
	erand.RndParams
	On bool `desc:"add per-tick jitter to the drive"`
}

func (jp *JitterParams) Defaults() {
	jp.On = false
	jp.Mean = 0
	jp.Var = 2
	jp.Dist = erand.Gaussian
}

// GenBytes returns the jitter for one tick in drive bytes, 0 if off.
func (jp *JitterParams) GenBytes() int {
	if !jp.On || jp.Dist == erand.Mean {
		return 0
	}
	return int(mat32.Round(float32(jp.Gen(-1)) * 255 / 100))
}

//////////////////////////////////////////////////////////////////////////////////////
//  StimEnv

// StimEnv generates the external stimulus byte, one value per Step, from
// a parametric drive pattern.  Amplitude is given in percent of the full
// drive range so the same protocol settings work across chip variants
// with different current scaling.
type StimEnv struct {
	Nm       string          `desc:"name of this environment"`
	Dsc      string          `desc:"description of this environment"`
	Pattern  StimPattern     `desc:"shape of the drive over time"`
	Amp      float32         `min:"0" max:"110" desc:"drive amplitude in percent of the full input range"`
	Delay    int             `desc:"ticks at the zero-current baseline before pattern onset"`
	Period   int             `desc:"sine period in ticks"`
	OnTicks  int             `def:"10" desc:"pulse pattern: ticks at the level per cycle"`
	OffTicks int             `def:"40" desc:"pulse pattern: ticks at baseline per cycle"`
	Jitter   JitterParams    `view:"inline" desc:"per-tick amplitude jitter added to the drive"`
	CurExt   uint8           `inactive:"+" desc:"current drive byte, updated by Step"`
	Ext      etensor.Float32 `desc:"current drive byte as a 1D tensor state"`
	Run      env.Ctr         `view:"inline" desc:"current run of model as provided during Init"`
	Tick     env.Ctr         `view:"inline" desc:"tick counter, one clock cycle per Step"`
}

func (ev *StimEnv) Name() string { return ev.Nm }
func (ev *StimEnv) Desc() string { return ev.Dsc }

// Config sets the drive pattern and configures the state tensor.
// amp is percent of the full drive range, delay is ticks at baseline
// before onset, and period is the sine period in ticks.
func (ev *StimEnv) Config(pat StimPattern, amp float32, delay, period int) {
	ev.Pattern = pat
	ev.Amp = amp
	ev.Delay = delay
	ev.Period = period
	if ev.OnTicks == 0 {
		ev.OnTicks = 10
	}
	if ev.OffTicks == 0 {
		ev.OffTicks = 40
	}
	ev.Jitter.Defaults()
	ev.Ext.SetShape([]int{1}, nil, []string{"Ext"})
}

func (ev *StimEnv) Validate() error {
	if ev.Ext.Len() == 0 {
		return fmt.Errorf("StimEnv: %v has no state tensor -- need to Config", ev.Nm)
	}
	if ev.Amp < 0 {
		return fmt.Errorf("StimEnv: %v has negative amplitude: %v", ev.Nm, ev.Amp)
	}
	if ev.Pattern == StimSine && ev.Period <= 0 {
		return fmt.Errorf("StimEnv: %v sine pattern needs Period > 0, got %v", ev.Nm, ev.Period)
	}
	if ev.Pattern == StimPulse && ev.OnTicks <= 0 {
		return fmt.Errorf("StimEnv: %v pulse pattern needs OnTicks > 0, got %v", ev.Nm, ev.OnTicks)
	}
	return nil
}

func (ev *StimEnv) Counters() []env.TimeScales {
	return []env.TimeScales{env.Run, env.Tick}
}

func (ev *StimEnv) States() env.Elements {
	els := env.Elements{
		{"Ext", []int{1}, nil},
	}
	return els
}

func (ev *StimEnv) State(element string) etensor.Tensor {
	switch element {
	case "Ext":
		return &ev.Ext
	}
	return nil
}

func (ev *StimEnv) Actions() env.Elements {
	return nil
}

// String returns the current state as a string
func (ev *StimEnv) String() string {
	return fmt.Sprintf("%v_%d", ev.Pattern, ev.CurExt)
}

func (ev *StimEnv) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Tick.Scale = env.Tick
	ev.Run.Init()
	ev.Tick.Init()
	ev.Run.Cur = run
	ev.Tick.Cur = -1 // init state -- key so that first Step() = 0
	ev.CurExt = Baseline
}

// Level returns the pattern amplitude as a drive byte.
func (ev *StimEnv) Level() uint8 {
	l := int(ev.Amp * 255 / 100)
	if l < 0 {
		l = 0
	}
	if l > 255 {
		l = 255
	}
	return uint8(l)
}

// DriveFmTick returns the drive byte for the given tick.  Constant drive
// ignores Delay; the other patterns hold the baseline until Delay ticks
// have elapsed.
func (ev *StimEnv) DriveFmTick(tick int) uint8 {
	if ev.Pattern == StimConstant {
		return ev.Level()
	}
	t := tick - ev.Delay
	if t < 0 {
		return Baseline
	}
	switch ev.Pattern {
	case StimStep:
		return ev.Level()
	case StimPulse:
		if t%(ev.OnTicks+ev.OffTicks) < ev.OnTicks {
			return ev.Level()
		}
		return Baseline
	case StimSine:
		ampl := ev.Amp * 127 / 100
		v := Baseline + ampl*math32.Sin(2*math32.Pi*float32(t)/float32(ev.Period))
		e := int(mat32.Round(v))
		if e < 0 {
			e = 0
		}
		if e > 255 {
			e = 255
		}
		return uint8(e)
	}
	return Baseline
}

// Step is called to advance the environment state
func (ev *StimEnv) Step() bool {
	ev.Run.Same()
	if ev.Tick.Incr() {
		ev.Run.Incr()
	}
	e := int(ev.DriveFmTick(ev.Tick.Cur)) + ev.Jitter.GenBytes()
	ev.CurExt = uint8(ints.MaxInt(0, ints.MinInt(e, 255)))
	ev.Ext.SetFloat1D(0, float64(ev.CurExt))
	return true
}

func (ev *StimEnv) Action(element string, input etensor.Tensor) {
	// nop
}

func (ev *StimEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Tick:
		return ev.Tick.Query()
	}
	return -1, -1, false
}

// Compile-time check that implements Env interface
var _ env.Env = (*StimEnv)(nil)
