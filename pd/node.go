// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Node holds a material point
type Node struct {

	// identity
	Id  int    // id
	Tag int    // tag
	X   r3.Vec // reference position; never changes

	// kinematics
	Disp    r3.Vec // displacement
	OldDisp r3.Vec // displacement at the beginning of the step
	NewDisp r3.Vec // staged displacement
	Vel     r3.Vec // velocity
	NewVel  r3.Vec // staged velocity
	Acc     r3.Vec // acceleration

	// forces (per unit volume)
	IntForce r3.Vec // internal force from bonds
	ExtForce r3.Vec // external force from force conditions

	// properties
	Mat     int     // index of material
	Stiff   float64 // stiffness multiplier from material distribution
	Density float64 // density
	Volume  float64 // volume
	Horizon float64 // horizon
	Omit    bool    // point without supporting geometry: no forces, pinned kinematics

	// bonds
	Bonds      []Bond  // owned bonds, sorted by partner
	FamilySize int     // size of initial family
	Damage     float64 // broken bonds / initial family size

	// diagnostics
	Energy float64 // strain energy density
	Spsum  float64 // sum of micromoduli divided by density
	DtEst  float64 // latest stable time step estimate

	// velocity conditions
	fixed [3]bool // components with prescribed velocity
}

// NewNode returns a new node with unit stiffness multiplier
func NewNode(id int, x r3.Vec, volume, horizon float64, mat int) *Node {
	return &Node{Id: id, X: x, Volume: volume, Horizon: horizon, Mat: mat, Stiff: 1}
}

// Displaced returns the current position X + Disp
func (o *Node) Displaced() r3.Vec {
	return r3.Add(o.X, o.Disp)
}

// HasNaN tells whether the acceleration or the velocity has NaN components
func (o *Node) HasNaN() (field string, found bool) {
	if isNaN(o.Acc) {
		return "acceleration", true
	}
	if isNaN(o.Vel) {
		return "velocity", true
	}
	return
}

// Fixed tells whether component comp of velocity is prescribed
func (o *Node) Fixed(comp int) bool {
	return o.fixed[comp]
}

// NodeView holds the read-only fields of a node for output
type NodeView struct {
	Id     int     // id
	X      r3.Vec  // reference position
	U      r3.Vec  // displacement
	V      r3.Vec  // velocity
	Damage float64 // damage index
	Nbonds int     // number of alive bonds
	Nfam   int     // size of initial family
	Omit   bool    // omitted point
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func isNaN(v r3.Vec) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// comp returns component i of v
func comp(v r3.Vec, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// setComp sets component i of v
func setComp(v *r3.Vec, i int, val float64) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
}

// vec converts a slice to r3.Vec; missing components are zero
func vec(a []float64) (v r3.Vec) {
	for i := 0; i < len(a) && i < 3; i++ {
		setComp(&v, i, a[i])
	}
	return
}
