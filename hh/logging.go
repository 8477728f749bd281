// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"strconv"

	"github.com/emer/etable/agg"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/goki/gi/gi"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 4

// hh.CycleLog records the full per-tick trajectory of the network into an
// etable.Table, in natural units, for plotting and analysis.  One row per
// Cycle: membrane voltages, gates, spike flags, synaptic current, weight,
// traces, and neuron A's rate calculator outputs.
type CycleLog struct {
	Table *etable.Table `view:"no-inline" desc:"the log table, one row per tick"`
}

// Config allocates the table and sets the log schema, with zero rows
func (cl *CycleLog) Config() {
	cl.Table = &etable.Table{}
	dt := cl.Table
	dt.SetMetaData("name", "CycleLog")
	dt.SetMetaData("desc", "Per-tick record of the two-neuron circuit")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	sch := etable.Schema{
		{"Tick", etensor.INT64, nil, nil},
		{"Time", etensor.FLOAT64, nil, nil},
		{"Ext", etensor.FLOAT64, nil, nil},
		{"VmA", etensor.FLOAT64, nil, nil},
		{"SpikeA", etensor.FLOAT64, nil, nil},
		{"NA", etensor.FLOAT64, nil, nil},
		{"MA", etensor.FLOAT64, nil, nil},
		{"HA", etensor.FLOAT64, nil, nil},
		{"VmB", etensor.FLOAT64, nil, nil},
		{"SpikeB", etensor.FLOAT64, nil, nil},
		{"ISyn", etensor.FLOAT64, nil, nil},
		{"Wt", etensor.FLOAT64, nil, nil},
		{"PreTrace", etensor.FLOAT64, nil, nil},
		{"PostTrace", etensor.FLOAT64, nil, nil},
		{"AlphaN", etensor.FLOAT64, nil, nil},
		{"BetaN", etensor.FLOAT64, nil, nil},
		{"AlphaM", etensor.FLOAT64, nil, nil},
		{"BetaM", etensor.FLOAT64, nil, nil},
		{"AlphaH", etensor.FLOAT64, nil, nil},
		{"BetaH", etensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, 0)
}

// Log adds a row with the network's current state.  tm supplies the
// simulated wall-clock time and ext is the stimulus byte driven this
// tick.  Values are converted to natural units through the network's
// fixed-point format.
func (cl *CycleLog) Log(nt *Network, tm *Time, ext uint8) {
	dt := cl.Table
	fc := &nt.FC
	row := dt.Rows
	dt.SetNumRows(row + 1)

	dt.SetCellFloat("Tick", row, float64(nt.Tick))
	dt.SetCellFloat("Time", row, float64(tm.Time))
	dt.SetCellFloat("Ext", row, float64(ext))
	dt.SetCellFloat("VmA", row, float64(fc.Float(nt.NeurA.Vm)))
	dt.SetCellFloat("SpikeA", row, boolToFloat(nt.NeurA.Spike))
	dt.SetCellFloat("NA", row, float64(fc.Float(nt.NeurA.N)))
	dt.SetCellFloat("MA", row, float64(fc.Float(nt.NeurA.M)))
	dt.SetCellFloat("HA", row, float64(fc.Float(nt.NeurA.H)))
	dt.SetCellFloat("VmB", row, float64(fc.Float(nt.NeurB.Vm)))
	dt.SetCellFloat("SpikeB", row, boolToFloat(nt.NeurB.Spike))
	dt.SetCellFloat("ISyn", row, float64(fc.Float(nt.Syn.ISyn)))
	dt.SetCellFloat("Wt", row, float64(fc.Float(nt.Syn.Wt)))
	dt.SetCellFloat("PreTrace", row, float64(fc.Float(nt.Syn.PreTrace)))
	dt.SetCellFloat("PostTrace", row, float64(fc.Float(nt.Syn.PostTrace)))
	dt.SetCellFloat("AlphaN", row, float64(fc.Float(nt.NeurA.RateOut.AlphaN)))
	dt.SetCellFloat("BetaN", row, float64(fc.Float(nt.NeurA.RateOut.BetaN)))
	dt.SetCellFloat("AlphaM", row, float64(fc.Float(nt.NeurA.RateOut.AlphaM)))
	dt.SetCellFloat("BetaM", row, float64(fc.Float(nt.NeurA.RateOut.BetaM)))
	dt.SetCellFloat("AlphaH", row, float64(fc.Float(nt.NeurA.RateOut.AlphaH)))
	dt.SetCellFloat("BetaH", row, float64(fc.Float(nt.NeurA.RateOut.BetaH)))
}

// Save writes the log as tab-separated values with headers
func (cl *CycleLog) Save(fname string) error {
	return cl.Table.SaveCSV(gi.FileName(fname), etable.Tab, etable.Headers)
}

// SpikeCounts returns the total spikes logged for each neuron
func (cl *CycleLog) SpikeCounts() (nA, nB float64) {
	if cl.Table == nil || cl.Table.Rows == 0 {
		return 0, 0
	}
	tix := etable.NewIdxView(cl.Table)
	nA = agg.Sum(tix, "SpikeA")[0]
	nB = agg.Sum(tix, "SpikeB")[0]
	return
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
