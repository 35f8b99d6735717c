// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"github.com/bbanerjee/Fracture-Effects-sub001/inp"
	"github.com/bbanerjee/Fracture-Effects-sub001/msolid"
	"github.com/cpmech/gosl/fun/dbf"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"
)

// ForceBc applies one component of an external force density to nodes inside a box
type ForceBc struct {
	Box  r3.Box // region; reference positions are tested
	Comp int    // component: 0, 1 or 2
	Fcn  dbf.T  // force density function f(t, x)
}

// Body holds a set of nodes and their bonds
type Body struct {

	// data
	Id    int            // index of body
	Desc  string         // description
	Nodes []*Node        // all nodes; index == position in this slice
	Mats  []msolid.Model // materials shared by all bodies; read-only
	Links *LinkTable     // state of bonds

	// family search
	Search string         // "cells" or "kdtree"
	Index  FamilySearcher // latest index

	// loading
	IniVel    r3.Vec       // initial velocity
	BodyForce r3.Vec       // body force per unit mass
	BfFunc    dbf.T        // multiplier of body force; may be nil
	ForceBcs  []*ForceBc   // external force conditions
	Cracks    []*inp.Crack // initial cracks
}

// NewBody returns a new body with given nodes
func NewBody(id int, nodes []*Node, mats []msolid.Model) *Body {
	return &Body{Id: id, Nodes: nodes, Mats: mats, Search: "cells", Links: NewLinkTable()}
}

// NewBodyFromInput allocates a body from input data
func NewBodyFromInput(id int, dat *inp.BodyData, mdb *inp.MatDb, funcs inp.FuncsData) (o *Body, err error) {

	// material
	mat := mdb.Index(dat.Mat)
	if mat < 0 {
		return nil, setupErr("cannot find material %q of body %d", dat.Mat, id)
	}

	// nodes
	if dat.Msh == nil || len(dat.Msh.Verts) == 0 {
		return nil, setupErr("body %d has no nodes", id)
	}
	nodes := make([]*Node, len(dat.Msh.Verts))
	for i, v := range dat.Msh.Verts {
		nodes[i] = NewNode(v.Id, vec(v.C), v.Vol, dat.Horizon, mat)
		nodes[i].Tag = v.Tag
	}
	o = NewBody(id, nodes, mdb.Models())
	o.Desc = dat.Desc
	o.Cracks = dat.Cracks

	// loading
	o.IniVel = vec(dat.IniVel)
	o.BodyForce = vec(dat.BodyForce)
	if dat.BfFunc != "" {
		if o.BfFunc, err = funcs.Get(dat.BfFunc); err != nil {
			return nil, setupErr("%v", err)
		}
	}
	for _, bc := range dat.ForceBcs {
		box, e := NewBox(bc.Box.Xmin, bc.Box.Xmax)
		if e != nil {
			return nil, setupErr("force condition of body %d: %v", id, e.(*SetupError).Reason)
		}
		for j, key := range bc.Keys {
			if j >= len(bc.Funcs) {
				return nil, setupErr("force condition of body %d: missing function for key %q", id, key)
			}
			fcn, e := funcs.Get(bc.Funcs[j])
			if e != nil {
				return nil, setupErr("%v", e)
			}
			if err = o.AddForceBc(box, key, fcn); err != nil {
				return nil, err
			}
		}
	}

	// initialise
	if err = o.Initialize(); err != nil {
		return nil, err
	}
	err = o.AssignMaterial(mat, dat.Distrib, dat.Cov, dat.Seed)
	return
}

// Initialize sets omit flags and densities and checks horizons
//  Nodes without volume are omitted
func (o *Body) Initialize() (err error) {
	if len(o.Nodes) == 0 {
		return setupErr("body %d has no nodes", o.Id)
	}
	for _, n := range o.Nodes {
		n.Omit = !(n.Volume > 0)
		if n.Omit {
			n.Volume = 0
			continue
		}
		if !(n.Horizon > 0) {
			return setupErr("horizon of node %d must be positive. %g is invalid", n.Id, n.Horizon)
		}
		if n.Mat < 0 || n.Mat >= len(o.Mats) {
			return setupErr("material index %d of node %d is invalid", n.Mat, n.Id)
		}
		n.Density = o.Mats[n.Mat].Density()
	}
	return
}

// AssignMaterial sets the material of all non-omitted nodes
//  distrib -- "constant": stiffness multiplier = 1
//             "uniform":  stiffness multiplier = 1 + cov r with r uniform in [-1, 1)
//             "gaussian": stiffness multiplier = 1 + cov r with r from the standard normal distribution
//  Negative multipliers are replaced by zero
func (o *Body) AssignMaterial(mat int, distrib string, cov float64, seed uint64) (err error) {
	if mat < 0 || mat >= len(o.Mats) {
		return setupErr("material index %d is invalid", mat)
	}
	var rnd *rand.Rand
	switch distrib {
	case "", "constant":
	case "uniform", "gaussian":
		rnd = rand.New(rand.NewSource(seed))
	default:
		return setupErr("material property distribution %q is unknown; options are constant, uniform and gaussian", distrib)
	}
	for _, n := range o.Nodes {
		if n.Omit {
			continue
		}
		n.Mat = mat
		n.Density = o.Mats[mat].Density()
		var r float64
		switch distrib {
		case "uniform":
			r = 2.0*rnd.Float64() - 1.0
		case "gaussian":
			r = rnd.NormFloat64()
		}
		n.Stiff = math.Max(0, 1.0+cov*r)
	}
	return
}

// ApplyInitialVelocity sets the velocity of non-omitted nodes to IniVel
func (o *Body) ApplyInitialVelocity() {
	for _, n := range o.Nodes {
		if n.Omit {
			continue
		}
		n.Vel = o.IniVel
	}
}

// AddForceBc adds an external force condition
//  key -- "fx", "fy" or "fz"
func (o *Body) AddForceBc(box r3.Box, key string, fcn dbf.T) (err error) {
	c, err := compFromKey(key, "f")
	if err != nil {
		return
	}
	o.ForceBcs = append(o.ForceBcs, &ForceBc{Box: box, Comp: c, Fcn: fcn})
	return
}

// ApplyForceBCs sets the external force density of all nodes at time t
func (o *Body) ApplyForceBCs(t float64) {
	for _, n := range o.Nodes {
		n.ExtForce = r3.Vec{}
		if n.Omit {
			continue
		}
		for _, bc := range o.ForceBcs {
			if inBox(bc.Box, n.X) {
				x := []float64{n.X.X, n.X.Y, n.X.Z}
				setComp(&n.ExtForce, bc.Comp, comp(n.ExtForce, bc.Comp)+bc.Fcn.F(t, x))
			}
		}
	}
}

// BodyForceAt returns the body force per unit mass at time t
func (o *Body) BodyForceAt(t float64) r3.Vec {
	if o.BfFunc == nil {
		return o.BodyForce
	}
	return r3.Scale(o.BfFunc.F(t, nil), o.BodyForce)
}

// View returns the read-only fields of node idx
func (o *Body) View(idx int) (v NodeView) {
	n := o.Nodes[idx]
	v = NodeView{Id: n.Id, X: n.X, U: n.Disp, V: n.Vel, Damage: n.Damage, Nfam: n.FamilySize, Omit: n.Omit}
	for _, b := range n.Bonds {
		if o.Links.IsAlive(b.Link) {
			v.Nbonds++
		}
	}
	return
}

// Views returns the read-only fields of all nodes
func (o *Body) Views() (views []NodeView) {
	views = make([]NodeView, len(o.Nodes))
	for i := range o.Nodes {
		views[i] = o.View(i)
	}
	return
}

// MaxHorizon returns the largest horizon among non-omitted nodes
func (o *Body) MaxHorizon() (h float64) {
	for _, n := range o.Nodes {
		if !n.Omit {
			h = math.Max(h, n.Horizon)
		}
	}
	return
}

// Nbonds returns the number of bonds and the number of broken bonds
func (o *Body) Nbonds() (nbonds, nbroken int) {
	for _, n := range o.Nodes {
		for _, b := range n.Bonds {
			nbonds++
			if !o.Links.IsAlive(b.Link) {
				nbroken++
			}
		}
	}
	return
}
