// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"github.com/bbanerjee/Fracture-Effects-sub001/msolid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// gridNodes returns nodes on a regular grid with spacing dx; index = i + j nx + k nx ny
func gridNodes(nx, ny, nz int, dx, horizon float64) (nodes []*Node) {
	id := 0
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				x := r3.Vec{X: float64(i) * dx, Y: float64(j) * dx, Z: float64(k) * dx}
				nodes = append(nodes, NewNode(id, x, dx*dx*dx, horizon, 0))
				id++
			}
		}
	}
	return
}

// newTestBody allocates a body with given nodes and initial family
//  The domain encloses the nodes with a margin of one horizon
func newTestBody(nodes []*Node, mdl msolid.Model) (dom *Domain, body *Body, err error) {
	body = NewBody(0, nodes, []msolid.Model{mdl})
	if err = body.Initialize(); err != nil {
		return
	}
	h := body.MaxHorizon()
	box := r3.Box{Min: r3.Vec{X: -h, Y: -h, Z: -h}, Max: r3.Vec{X: h, Y: h, Z: h}}
	for _, n := range nodes {
		box.Min = r3.Vec{X: min(box.Min.X, n.X.X-h), Y: min(box.Min.Y, n.X.Y-h), Z: min(box.Min.Z, n.X.Z-h)}
		box.Max = r3.Vec{X: max(box.Max.X, n.X.X+h), Y: max(box.Max.Y, n.X.Y+h), Z: max(box.Max.Z, n.X.Z+h)}
	}
	if dom, err = NewDomain(box, h); err != nil {
		return
	}
	err = body.CreateInitialFamily(dom)
	return
}

// spring returns a material with constant micromodulus
func spring(c, s0 float64) msolid.Model {
	return &msolid.ConstMicro{Rho: 1, C: c, S0: s0}
}

// partners returns the partners of node idx
func partners(body *Body, idx int) (res []int) {
	for _, b := range body.Nodes[idx].Bonds {
		res = append(res, b.Partner)
	}
	return
}
