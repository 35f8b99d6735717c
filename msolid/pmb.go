// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Pmb implements the prototype microelastic brittle (PMB) model
//  Bonds behave as linear springs with micromodulus c = 18K/(πδ⁴) and break
//  irreversibly when the stretch exceeds s0. s0 is either given or computed
//  from the fracture energy G0 as s0 = sqrt(5G0/(9Kδ))
type Pmb struct {

	// parameters
	Rho float64 // density
	K   float64 // bulk modulus
	S0  float64 // critical stretch; 0 => computed from G0
	G0  float64 // fracture energy per unit area

	// flags
	NoBreak bool // bonds never break (elastic variant)
}

// add model to factory
func init() {
	allocators["pmb"] = func() Model { return new(Pmb) }
	allocators["elastic"] = func() Model { return &Pmb{NoBreak: true} }
}

// Init initialises model
func (o *Pmb) Init(prms dbf.Params) (err error) {

	// parameters
	var E, ν float64
	ν = 0.25
	for _, p := range prms {
		switch p.N {
		case "rho":
			o.Rho = p.V
		case "K":
			o.K = p.V
		case "E":
			E = p.V
		case "nu":
			ν = p.V
		case "s0":
			o.S0 = p.V
		case "G0":
			o.G0 = p.V
		default:
			return chk.Err("pmb: parameter named %q is invalid", p.N)
		}
	}

	// bulk modulus
	if o.K < 1e-15 && E > 0 {
		if ν >= 0.5 {
			return chk.Err("pmb: Poisson's coefficient must be smaller than 0.5. ν=%g is invalid", ν)
		}
		o.K = Calc_K_from_Enu(E, ν)
	}

	// check
	if o.Rho <= 0 {
		return chk.Err("pmb: density must be positive. rho=%g is invalid", o.Rho)
	}
	if o.K <= 0 {
		return chk.Err("pmb: bulk modulus must be positive; give K or E. K=%g is invalid", o.K)
	}
	if !o.NoBreak && o.S0 <= 0 && o.G0 <= 0 {
		return chk.Err("pmb: either s0 or G0 must be positive")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Pmb) GetPrms() dbf.Params {
	if o.NoBreak {
		return dbf.Params{
			&dbf.P{N: "rho", V: o.Rho},
			&dbf.P{N: "K", V: o.K},
		}
	}
	return dbf.Params{
		&dbf.P{N: "rho", V: o.Rho},
		&dbf.P{N: "K", V: o.K},
		&dbf.P{N: "s0", V: o.S0},
		&dbf.P{N: "G0", V: o.G0},
	}
}

// Density returns the density
func (o Pmb) Density() float64 { return o.Rho }

// BulkModulus returns K
func (o Pmb) BulkModulus() float64 { return o.K }

// MicroModulus returns c(δ)
func (o Pmb) MicroModulus(δ float64) float64 {
	return Calc_c_from_K(o.K, δ)
}

// CriticalStretch returns s0(δ)
func (o Pmb) CriticalStretch(δ float64) float64 {
	if o.NoBreak {
		return math.Inf(1)
	}
	if o.S0 > 0 {
		return o.S0
	}
	return Calc_s0_from_G0(o.G0, o.K, δ)
}
