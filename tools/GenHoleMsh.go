// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bytes"
	"math"

	"github.com/bbanerjee/Fracture-Effects-sub001/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// generates a .msh file of a thin plate with a central hole along z
//  nodes inside the hole get zero volume and are omitted by the solver
func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	L := io.ArgToFloat(0, 0.1)
	thick := io.ArgToFloat(1, 0.005)
	radius := io.ArgToFloat(2, 0.01)
	ndiv := io.ArgToInt(3, 40)
	dirout := io.ArgToString(4, "/tmp/gopd")
	fnkey := io.ArgToString(5, "hole")
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"side of square plate", "L", L,
		"thickness", "thick", thick,
		"radius of hole", "radius", radius,
		"divisions along x and y", "ndiv", ndiv,
		"output directory", "dirout", dirout,
		"filename key", "fnkey", fnkey,
	))

	// grid
	msh, err := inp.GenBoxMesh([]float64{0, 0, 0}, []float64{L, L, thick}, []int{ndiv, ndiv, 1})
	if err != nil {
		chk.Panic("cannot generate grid:\n%v", err)
	}

	// hole
	nomit := 0
	xc, yc := L/2, L/2
	for _, v := range msh.Verts {
		x, y, _ := v.X()
		if math.Hypot(x-xc, y-yc) < radius {
			v.Vol = 0
			v.Tag = -1
			nomit++
		}
	}
	io.Pf("%d nodes; %d inside hole\n", len(msh.Verts), nomit)

	// save
	var buf bytes.Buffer
	io.Ff(&buf, "%v\n", msh)
	io.WriteFileVD(dirout, fnkey+".msh", &buf)
}
