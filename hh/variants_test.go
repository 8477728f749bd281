// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import "testing"

func TestVariantString(t *testing.T) {
	if Full16.String() != "Full16" || Reduced12.String() != "Reduced12" || LIF8.String() != "LIF8" {
		t.Errorf("Variant strings wrong: %v %v %v\n", Full16, Reduced12, LIF8)
	}
}

// TestVariantSetsComplete checks that every set lists the identical
// parameter paths: switching to any variant then overrides every value
// any other variant touched.
func TestVariantSetsComplete(t *testing.T) {
	paths := make([]map[string]bool, len(VariantSets))
	for i, st := range VariantSets {
		paths[i] = make(map[string]bool)
		sheet := st.Sheets["Network"]
		if sheet == nil {
			t.Fatalf("set %s has no Network sheet\n", st.Name)
		}
		for _, sel := range *sheet {
			for pth := range sel.Params {
				paths[i][pth] = true
			}
		}
	}
	for i := 1; i < len(paths); i++ {
		if len(paths[i]) != len(paths[0]) {
			t.Errorf("set %s lists %d paths, set %s lists %d\n", VariantSets[i].Name, len(paths[i]), VariantSets[0].Name, len(paths[0]))
		}
		for pth := range paths[0] {
			if !paths[i][pth] {
				t.Errorf("set %s missing path %s\n", VariantSets[i].Name, pth)
			}
		}
	}
}

func TestSetVariantReduced12(t *testing.T) {
	nt := newTestNet()
	if err := nt.SetVariant(Reduced12); err != nil {
		t.Fatal(err)
	}
	if nt.Variant != Reduced12 {
		t.Errorf("Variant not recorded: %v\n", nt.Variant)
	}
	if nt.FC.One != 16 || nt.FC.Max != 2047 || nt.FC.Min != -2048 {
		t.Errorf("Q12.4 format: One %v Max %v Min %v\n", nt.FC.One, nt.FC.Max, nt.FC.Min)
	}
	ch := &nt.Act.Chans
	if ch.GNaX != 1920 || ch.GKX != 576 || ch.GLX != 5 {
		t.Errorf("Q12.4 conductances: %v %v %v != 1920 576 5\n", ch.GNaX, ch.GKX, ch.GLX)
	}
	if ch.ENaX != 800 || ch.EKX != -1232 || ch.ELX != -870 {
		t.Errorf("Q12.4 reversals: %v %v %v != 800 -1232 -870\n", ch.ENaX, ch.EKX, ch.ELX)
	}
	if nt.Act.DtX != 4 || nt.Act.VmRestX != -1040 {
		t.Errorf("Q12.4 Dt %v VmRest %v != 4 -1040\n", nt.Act.DtX, nt.Act.VmRestX)
	}
	// 0.016 * 16 rounds to 0: the h gate starts closed in this variant
	if nt.Act.NInitX != 4 || nt.Act.HInitX != 0 {
		t.Errorf("Q12.4 gate inits: N %v H %v != 4 0\n", nt.Act.NInitX, nt.Act.HInitX)
	}
	if nt.Act.Rates.AlphaM.ScaleX != 6 {
		t.Errorf("Q12.4 AlphaM scale: %v != 6\n", nt.Act.Rates.AlphaM.ScaleX)
	}
	// 0.1 and 0.12 both round to 2 raw: LTP and LTD rates coincide here
	if nt.Learn.APlusX != 2 || nt.Learn.AMinusX != 2 || nt.Learn.WtInitX != 16 || nt.Learn.WtMaxX != 32 {
		t.Errorf("Q12.4 learn raw: %v %v %v %v\n", nt.Learn.APlusX, nt.Learn.AMinusX, nt.Learn.WtInitX, nt.Learn.WtMaxX)
	}
	if got := nt.Stim.Current(&nt.FC, 255); got != 254 {
		t.Errorf("Q12.4 full-scale stimulus: %v != 254\n", got)
	}
	if nt.NeurA.Vm != -1040 || nt.Tick != 0 {
		t.Errorf("SetVariant did not reset: Vm %v Tick %v\n", nt.NeurA.Vm, nt.Tick)
	}
}

func TestSetVariantRoundTrip(t *testing.T) {
	nt := newTestNet()
	if err := nt.SetVariant(Reduced12); err != nil {
		t.Fatal(err)
	}
	if err := nt.SetVariant(Full16); err != nil {
		t.Fatal(err)
	}
	if nt.FC.One != 128 || nt.Act.DtX != 8 || nt.Act.VmRestX != -8320 || nt.Act.Rates.AlphaM.ScaleX != 26 {
		t.Errorf("round trip did not restore Q16.7: One %v Dt %v VmRest %v AlphaM %v\n",
			nt.FC.One, nt.Act.DtX, nt.Act.VmRestX, nt.Act.Rates.AlphaM.ScaleX)
	}
	// the restored variant reproduces the canonical trajectory
	for i := 0; i < 96; i++ {
		nt.Cycle(255, true)
	}
	if !nt.NeurA.Spike {
		t.Errorf("restored Full16 should spike at tick 96\n")
	}
}

func TestReduced12Dynamics(t *testing.T) {
	nt := newTestNet()
	if err := nt.SetVariant(Reduced12); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4000; i++ {
		nt.Cycle(128, true)
		if nt.NeurA.Spike || nt.NeurB.Spike {
			t.Fatalf("spike at rest, tick %d\n", nt.Tick)
		}
	}

	nt.Reset()
	var spikes []int
	for i := 0; i < 3000; i++ {
		nt.Cycle(255, true)
		if nt.NeurA.Spike {
			spikes = append(spikes, nt.Tick)
		}
	}
	if len(spikes) != 146 {
		t.Fatalf("spike count: %d != 146\n", len(spikes))
	}
	first := []int{84, 104, 124, 144, 164, 184}
	for i, w := range first {
		if spikes[i] != w {
			t.Errorf("spike %d at tick %d != %d\n", i, spikes[i], w)
		}
	}
	for i := 1; i < len(spikes); i++ {
		if isi := spikes[i] - spikes[i-1]; isi != 20 {
			t.Errorf("interval before spike %d: %d != 20\n", i, isi)
		}
	}
}

func TestLIF8Dynamics(t *testing.T) {
	nt := newTestNet()
	if err := nt.SetVariant(LIF8); err != nil {
		t.Fatal(err)
	}
	if nt.FC.One != 8 || nt.Act.Pipeline || nt.Act.DtX != 1 || nt.Act.VmRestX != -8 {
		t.Errorf("LIF8 params: One %v Pipeline %v Dt %v VmRest %v\n",
			nt.FC.One, nt.Act.Pipeline, nt.Act.DtX, nt.Act.VmRestX)
	}
	if nt.Act.Chans.GNaX != 0 || nt.Act.Chans.GKX != 0 || nt.Act.Chans.GLX != 8 || nt.Act.Chans.ELX != -8 {
		t.Errorf("LIF8 channels: %v %v %v %v\n",
			nt.Act.Chans.GNaX, nt.Act.Chans.GKX, nt.Act.Chans.GLX, nt.Act.Chans.ELX)
	}

	// at rest the membrane holds exactly at the leak reversal
	for i := 0; i < 200; i++ {
		nt.Cycle(128, true)
		if nt.NeurA.Spike {
			t.Fatalf("LIF8 spiked at rest, tick %d\n", nt.Tick)
		}
	}
	if nt.NeurA.Vm != -8 {
		t.Errorf("LIF8 rest voltage: %v != -8\n", nt.NeurA.Vm)
	}

	// full-scale stimulus: one full integration step per tick reaches
	// threshold immediately and the forced reset gives a period of 2
	nt.Reset()
	var spikes []int
	for i := 0; i < 24; i++ {
		nt.Cycle(255, true)
		if nt.NeurA.Spike {
			spikes = append(spikes, nt.Tick)
		}
	}
	want := []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23}
	if len(spikes) != len(want) {
		t.Fatalf("LIF8 spike count in 24 ticks: %d != %d\n", len(spikes), len(want))
	}
	for i, w := range want {
		if spikes[i] != w {
			t.Errorf("LIF8 spike %d at tick %d != %d\n", i, spikes[i], w)
		}
	}
}
