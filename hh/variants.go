// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"fmt"

	"github.com/emer/emergent/params"
	"github.com/goki/ki/kit"
)

// Variant names one of the supported chip configurations.  The variants
// differ only in parameters: fixed-point format, stimulus scaling, and
// for the 8-bit variant the channel conductances and integration mode.
// All run through the identical code path.
type Variant int

//go:generate stringer -type=Variant

var KiT_Variant = kit.Enums.AddEnum(VariantN, kit.NotBitFlag, nil)

func (ev Variant) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Variant) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Full16 is the full Hodgkin-Huxley pipeline in Q16.7
	Full16 Variant = iota

	// Reduced12 is the full Hodgkin-Huxley pipeline in Q12.4, trading
	// fractional precision for area
	Reduced12

	// LIF8 is the Q8.3 leaky integrate-and-fire fallback: sodium and
	// potassium conductances zeroed, full integration step every tick
	LIF8

	VariantN
)

// VariantSets holds the parameter values distinguishing the chip
// variants.  Each set lists every parameter any variant touches, so
// applying a set fully switches the network from any other variant.
var VariantSets = params.Sets{
	{Name: "Full16", Desc: "full HH dynamics, 16-bit words with 7 fraction bits", Sheets: params.Sheets{
		"Network": &params.Sheet{
			{Sel: "Config", Desc: "canonical format",
				Params: params.Params{
					"Config.Width": "16",
					"Config.Frac":  "7",
				}},
			{Sel: "HHParams", Desc: "pipelined integration",
				Params: params.Params{
					"HHParams.Pipeline": "true",
					"HHParams.VmRest":   "-65",
					"HHParams.Dt":       "0.0625",
				}},
			{Sel: "ChanParams", Desc: "squid axon conductances",
				Params: params.Params{
					"ChanParams.GbarNa": "120",
					"ChanParams.GbarK":  "36",
					"ChanParams.GbarL":  "0.3",
					"ChanParams.ENa":    "50",
					"ChanParams.EK":     "-77",
					"ChanParams.EL":     "-54.387",
				}},
			{Sel: "RateParams", Desc: "canonical Na activation",
				Params: params.Params{
					"RateParams.AlphaM.Scale": "0.2",
				}},
			{Sel: "StimParams", Desc: "full-scale stimulus",
				Params: params.Params{
					"StimParams.Shift": "4",
				}},
		},
	}},
	{Name: "Reduced12", Desc: "full HH dynamics, 12-bit words with 4 fraction bits", Sheets: params.Sheets{
		"Network": &params.Sheet{
			{Sel: "Config", Desc: "4 fraction bits is the most leaving room for E_K = -77",
				Params: params.Params{
					"Config.Width": "12",
					"Config.Frac":  "4",
				}},
			{Sel: "HHParams", Desc: "pipelined integration, doubled-twice step: with 4 fraction bits a 1/16 step cannot clear the alpha_n singular band, so the membrane sticks in a subthreshold K limit cycle",
				Params: params.Params{
					"HHParams.Pipeline": "true",
					"HHParams.VmRest":   "-65",
					"HHParams.Dt":       "0.25",
				}},
			{Sel: "ChanParams", Desc: "squid axon conductances",
				Params: params.Params{
					"ChanParams.GbarNa": "120",
					"ChanParams.GbarK":  "36",
					"ChanParams.GbarL":  "0.3",
					"ChanParams.ENa":    "50",
					"ChanParams.EK":     "-77",
					"ChanParams.EL":     "-54.387",
				}},
			{Sel: "RateParams", Desc: "Na activation boosted so m survives the 4-bit quantization",
				Params: params.Params{
					"RateParams.AlphaM.Scale": "0.4",
				}},
			{Sel: "StimParams", Desc: "scaled to the narrower word",
				Params: params.Params{
					"StimParams.Shift": "1",
				}},
		},
	}},
	{Name: "LIF8", Desc: "leaky integrate-and-fire, 8-bit words with 3 fraction bits", Sheets: params.Sheets{
		"Network": &params.Sheet{
			{Sel: "Config", Desc: "minimal format",
				Params: params.Params{
					"Config.Width": "8",
					"Config.Frac":  "3",
				}},
			{Sel: "HHParams", Desc: "single-tick integration, rest just below the spike threshold at 0",
				Params: params.Params{
					"HHParams.Pipeline": "false",
					"HHParams.VmRest":   "-1",
					"HHParams.Dt":       "0.0625",
				}},
			{Sel: "ChanParams", Desc: "leak only: zero Na and K turns the membrane update into LIF",
				Params: params.Params{
					"ChanParams.GbarNa": "0",
					"ChanParams.GbarK":  "0",
					"ChanParams.GbarL":  "1",
					"ChanParams.ENa":    "1",
					"ChanParams.EK":     "-2",
					"ChanParams.EL":     "-1",
				}},
			{Sel: "RateParams", Desc: "rates unused with zero Na and K conductances",
				Params: params.Params{
					"RateParams.AlphaM.Scale": "0.2",
				}},
			{Sel: "StimParams", Desc: "byte offset maps directly to raw units",
				Params: params.Params{
					"StimParams.Shift": "0",
				}},
		},
	}},
}

// SetVariant applies the given variant's parameter set and resets all
// state: values committed under one fixed-point format are not
// meaningful under another.
func (nt *Network) SetVariant(v Variant) error {
	pset, err := VariantSets.SetByNameTry(v.String())
	if err != nil {
		return err
	}
	sheet, ok := pset.Sheets["Network"]
	if !ok {
		return fmt.Errorf("hh.SetVariant: variant %v has no Network sheet", v)
	}
	_, err = nt.ApplyParams(sheet, false)
	if err != nil {
		return err
	}
	nt.Variant = v
	nt.Reset()
	return nil
}
