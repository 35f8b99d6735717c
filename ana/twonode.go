// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// TwoNode implements the oscillation of two nodes connected by one unbreakable bond
//
//      -v0          +v0
//      <--(A)~~~~~~(B)-->
//          |<--L-->|
//
//  The elongation w = u_B - u_A satisfies  w'' = -ω² w  with  ω² = 2 c V / (L ρ)
//  where c is the micromodulus and V the volume of each node. Thus
//      w(t) = (2 v0 / ω) sin(ω t)
type TwoNode struct {

	// input
	c   float64 // micromodulus
	V   float64 // volume of each node
	L   float64 // distance between nodes
	ρ   float64 // density
	v0  float64 // initial speed of each node (moving apart)
	ω   float64 // angular frequency
	amp float64 // amplitude of elongation
}

// Init initialises this structure
func (o *TwoNode) Init(prms dbf.Params) (err error) {

	// default values
	o.c = 1.0
	o.V = 1.0
	o.L = 1.0
	o.ρ = 1.0
	o.v0 = 0.01

	// parameters
	for _, p := range prms {
		switch p.N {
		case "c":
			o.c = p.V
		case "V":
			o.V = p.V
		case "L":
			o.L = p.V
		case "rho":
			o.ρ = p.V
		case "v0":
			o.v0 = p.V
		default:
			return chk.Err("two-node: parameter named %q is invalid", p.N)
		}
	}
	if o.c <= 0 || o.V <= 0 || o.L <= 0 || o.ρ <= 0 {
		return chk.Err("two-node: c, V, L and rho must be positive. c=%g V=%g L=%g rho=%g", o.c, o.V, o.L, o.ρ)
	}

	// derived
	o.ω = math.Sqrt(2.0 * o.c * o.V / (o.L * o.ρ))
	o.amp = 2.0 * o.v0 / o.ω
	return
}

// Omega returns the angular frequency
func (o TwoNode) Omega() float64 { return o.ω }

// Period returns the period of oscillation
func (o TwoNode) Period() float64 { return 2.0 * math.Pi / o.ω }

// Elongation returns u_B - u_A at time t
func (o TwoNode) Elongation(t float64) float64 {
	return o.amp * math.Sin(o.ω*t)
}

// Speed returns the velocity of node B at time t; node A has the opposite velocity
func (o TwoNode) Speed(t float64) float64 {
	return o.v0 * math.Cos(o.ω*t)
}

// Force returns the internal force density on node B at time t; node A has the opposite force
func (o TwoNode) Force(t float64) float64 {
	return -o.c * o.Elongation(t) / o.L * o.V
}
