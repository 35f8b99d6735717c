// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ConstMicro implements a model with a micromodulus independent of the horizon
type ConstMicro struct {
	Rho float64 // density
	C   float64 // micromodulus
	S0  float64 // critical stretch; 0 => unbreakable
}

// add model to factory
func init() {
	allocators["cmm"] = func() Model { return new(ConstMicro) }
}

// Init initialises model
func (o *ConstMicro) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "rho":
			o.Rho = p.V
		case "c":
			o.C = p.V
		case "s0":
			o.S0 = p.V
		default:
			return chk.Err("cmm: parameter named %q is invalid", p.N)
		}
	}
	if o.Rho <= 0 {
		return chk.Err("cmm: density must be positive. rho=%g is invalid", o.Rho)
	}
	if o.C <= 0 {
		return chk.Err("cmm: micromodulus must be positive. c=%g is invalid", o.C)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o ConstMicro) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "rho", V: o.Rho},
		&dbf.P{N: "c", V: o.C},
		&dbf.P{N: "s0", V: o.S0},
	}
}

// Density returns the density
func (o ConstMicro) Density() float64 { return o.Rho }

// BulkModulus returns zero since c is given directly
func (o ConstMicro) BulkModulus() float64 { return 0 }

// MicroModulus returns c
func (o ConstMicro) MicroModulus(δ float64) float64 { return o.C }

// CriticalStretch returns s0
func (o ConstMicro) CriticalStretch(δ float64) float64 {
	if o.S0 <= 0 {
		return math.Inf(1)
	}
	return o.S0
}
