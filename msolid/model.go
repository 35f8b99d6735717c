// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements material models for bond-based peridynamic solids
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Model defines the interface for bond material models
//  Note: models are immutable after Init and may be shared by many bonds
type Model interface {
	Init(prms dbf.Params) error        // initialises model
	GetPrms() dbf.Params               // gets (an example) of parameters
	Density() float64                  // returns mass density ρ
	MicroModulus(δ float64) float64    // micromodulus c for horizon δ
	CriticalStretch(δ float64) float64 // critical stretch s0 for horizon δ; +Inf => unbreakable
	BulkModulus() float64              // equivalent bulk modulus K (0 if not applicable)
}

// New returns a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// LogModel prints the parameters of a model
func LogModel(name string, model Model) {
	if model == nil {
		return
	}
	io.Pf("%s:", name)
	for _, p := range model.GetPrms() {
		io.Pf(" %s=%g", p.N, p.V)
	}
	io.Pf("\n")
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}
