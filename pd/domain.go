// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/spatial/r3"
)

// MaxCells is the largest number of cells along one direction that fits the 16-bit fields of cell keys
const MaxCells = 65535

// NewBox returns a box after checking that it has positive extent along all directions
func NewBox(xmin, xmax []float64) (box r3.Box, err error) {
	if len(xmin) != 3 || len(xmax) != 3 {
		return box, setupErr("box needs 3 coordinates per corner. xmin=%v xmax=%v", xmin, xmax)
	}
	box = r3.Box{Min: vec(xmin), Max: vec(xmax)}
	for i := 0; i < 3; i++ {
		if !(comp(box.Max, i) > comp(box.Min, i)) {
			return box, setupErr("box is degenerate along direction %d. xmin=%v xmax=%v", i, xmin, xmax)
		}
	}
	return
}

// inBox tells whether x is inside box (inclusive)
func inBox(box r3.Box, x r3.Vec) bool {
	return x.X >= box.Min.X && x.X <= box.Max.X &&
		x.Y >= box.Min.Y && x.Y <= box.Max.Y &&
		x.Z >= box.Min.Z && x.Z <= box.Max.Z
}

// VelBc prescribes one component of the velocity of nodes inside a box
type VelBc struct {
	Box  r3.Box // region; reference positions are tested
	Comp int    // component: 0, 1 or 2
	Fcn  dbf.T  // velocity function v(t, x)
}

// Domain holds the bounding box, the cell grid and the velocity conditions
type Domain struct {
	Box      r3.Box   // bounding box
	CellSize float64  // size of cells
	Ncells   [3]int   // number of cells along each direction
	VelBcs   []*VelBc // velocity conditions
}

// NewDomain returns a new domain
//  Cells are numbered from 1 to Ncells along each direction
func NewDomain(box r3.Box, cellSize float64) (o *Domain, err error) {
	for i := 0; i < 3; i++ {
		if !(comp(box.Max, i) > comp(box.Min, i)) {
			return nil, setupErr("domain box is degenerate along direction %d. min=%v max=%v", i, box.Min, box.Max)
		}
	}
	if !(cellSize > 0) {
		return nil, setupErr("cell size must be positive. %g is invalid", cellSize)
	}
	o = &Domain{Box: box, CellSize: cellSize}
	for i := 0; i < 3; i++ {
		n := math.Floor((comp(box.Max, i)-comp(box.Min, i))/cellSize) + 1
		if n > MaxCells {
			return nil, setupErr("too many cells along direction %d: %g > %d. increase the cell size", i, n, MaxCells)
		}
		o.Ncells[i] = int(n)
	}
	return
}

// FindCellIndex returns the cell containing x
//  Note: points outside the box get indices outside [1, Ncells]
func (o *Domain) FindCellIndex(x r3.Vec) (cell [3]int) {
	for i := 0; i < 3; i++ {
		cell[i] = int(math.Floor((comp(x, i)-comp(o.Box.Min, i))/o.CellSize)) + 1
	}
	return
}

// InRange tells whether cell is within [1, Ncells] along all directions
func (o *Domain) InRange(cell [3]int) bool {
	for i := 0; i < 3; i++ {
		if cell[i] < 1 || cell[i] > o.Ncells[i] {
			return false
		}
	}
	return true
}

// AddVelBc adds a velocity condition
//  key -- "vx", "vy" or "vz"
func (o *Domain) AddVelBc(box r3.Box, key string, fcn dbf.T) (err error) {
	c, err := compFromKey(key, "v")
	if err != nil {
		return
	}
	o.VelBcs = append(o.VelBcs, &VelBc{Box: box, Comp: c, Fcn: fcn})
	return
}

// ApplyVelocityBCs sets prescribed velocity components of nodes of body
//  Omitted nodes are not touched. Prescribed components are also kept
//  fixed by the integrator until the next call
func (o *Domain) ApplyVelocityBCs(t float64, body *Body) {
	for _, n := range body.Nodes {
		n.fixed = [3]bool{}
		if n.Omit {
			continue
		}
		for _, bc := range o.VelBcs {
			if inBox(bc.Box, n.X) {
				x := []float64{n.X.X, n.X.Y, n.X.Z}
				setComp(&n.Vel, bc.Comp, bc.Fcn.F(t, x))
				n.fixed[bc.Comp] = true
			}
		}
	}
}

// compFromKey converts keys such as "vx" or "fz" into components
func compFromKey(key, prefix string) (c int, err error) {
	switch key {
	case prefix + "x":
		return 0, nil
	case prefix + "y":
		return 1, nil
	case prefix + "z":
		return 2, nil
	}
	return -1, setupErr("key %q is invalid; options are %sx, %sy and %sz", key, prefix, prefix, prefix)
}
