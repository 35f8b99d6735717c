// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// constants
const Ztol = 1e-7

// Vert holds vertex (material point) data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==2 or 3)
	Vol float64   `json:"vol"` // volume; zero => point without supporting geometry
}

// Mesh holds the material points of a body
type Mesh struct {

	// from JSON
	Verts   []*Vert `json:"verts"`   // vertices
	Spacing float64 `json:"spacing"` // nominal spacing between points; 0 => computed from volumes

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert // vertex tag => set of vertices
}

// ReadMsh reads the material points of a body from a JSON file
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// read file
	o = new(Mesh)
	o.FnamePath = filepath.Join(dir, fn)
	b, err := os.ReadFile(o.FnamePath)
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}

	// derived data
	err = o.postprocess()
	if err != nil {
		return nil, chk.Err("mesh file %q is invalid:\n%v", o.FnamePath, err)
	}
	return
}

// GenBoxMesh generates points at the centres of a regular grid of cells inside a box
//  xmin, xmax -- [3] box corners
//  ndiv       -- [3] number of divisions along x, y and z
func GenBoxMesh(xmin, xmax []float64, ndiv []int) (o *Mesh, err error) {

	// check
	if len(xmin) != 3 || len(xmax) != 3 || len(ndiv) != 3 {
		return nil, chk.Err("box needs 3 coordinates per corner and 3 divisions. xmin=%v xmax=%v ndiv=%v", xmin, xmax, ndiv)
	}
	var Δx [3]float64
	for i := 0; i < 3; i++ {
		if ndiv[i] < 1 {
			return nil, chk.Err("number of divisions must be positive. ndiv=%v is invalid", ndiv)
		}
		if xmax[i]-xmin[i] < Ztol {
			return nil, chk.Err("box is degenerate. xmin=%v xmax=%v", xmin, xmax)
		}
		Δx[i] = (xmax[i] - xmin[i]) / float64(ndiv[i])
	}

	// points
	o = new(Mesh)
	vol := Δx[0] * Δx[1] * Δx[2]
	id := 0
	for k := 0; k < ndiv[2]; k++ {
		for j := 0; j < ndiv[1]; j++ {
			for i := 0; i < ndiv[0]; i++ {
				o.Verts = append(o.Verts, &Vert{
					Id:  id,
					C:   []float64{xmin[0] + (float64(i)+0.5)*Δx[0], xmin[1] + (float64(j)+0.5)*Δx[1], xmin[2] + (float64(k)+0.5)*Δx[2]},
					Vol: vol,
				})
				id++
			}
		}
	}

	// spacing: largest increment among directions that are actually divided
	for i := 0; i < 3; i++ {
		if ndiv[i] > 1 {
			o.Spacing = utl.Max(o.Spacing, Δx[i])
		}
	}
	if o.Spacing == 0 {
		o.Spacing = utl.Max(Δx[0], utl.Max(Δx[1], Δx[2]))
	}
	err = o.postprocess()
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o *Mesh) postprocess() (err error) {

	// check
	if len(o.Verts) < 1 {
		return chk.Err("at least one vertex must be given")
	}

	// vertex related derived data
	o.Ndim = len(o.Verts[0].C)
	o.Xmin, o.Xmax = math.Inf(1), math.Inf(-1)
	o.Ymin, o.Ymax = math.Inf(1), math.Inf(-1)
	o.Zmin, o.Zmax = 0, 0
	if o.Ndim == 3 {
		o.Zmin, o.Zmax = math.Inf(1), math.Inf(-1)
	}
	o.VertTag2verts = make(map[int][]*Vert)
	maxvol := 0.0
	for i, v := range o.Verts {

		// check vertex id
		if v.Id != i {
			return chk.Err("vertices ids must coincide with order in \"verts\" list. %d != %d", v.Id, i)
		}

		// ndim
		if len(v.C) != o.Ndim || o.Ndim < 2 || o.Ndim > 3 {
			return chk.Err("number of space dimensions must be 2 or 3 and the same for all vertices. vertex %d has %d", v.Id, len(v.C))
		}
		if v.Vol < 0 {
			return chk.Err("volume of vertex %d is negative: %g", v.Id, v.Vol)
		}
		maxvol = utl.Max(maxvol, v.Vol)

		// tags
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
		if o.Ndim == 3 {
			o.Zmin = utl.Min(o.Zmin, v.C[2])
			o.Zmax = utl.Max(o.Zmax, v.C[2])
		}
	}

	// spacing
	if o.Spacing <= 0 {
		o.Spacing = math.Cbrt(maxvol)
	}
	return
}

// X returns the 3D coordinates of vertex
func (o *Vert) X() (x, y, z float64) {
	x, y = o.C[0], o.C[1]
	if len(o.C) > 2 {
		z = o.C[2]
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += io.Sf("], \"vol\":%g}", o.Vol)
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := io.Sf("{\n  \"spacing\" : %g,\n  \"verts\" : [\n", o.Spacing)
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}
