// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/bbanerjee/Fracture-Effects-sub001/pd"
	"gonum.org/v1/gonum/spatial/r3"
)

// Locator finds nodes; returns indices in the given slice
type Locator interface {
	Locate(nodes []pd.NodeView) []int
}

// N implements node locator by ids
type N []int

// At implements locator of the node closest to a point (within TolC)
type At []float64

// InBox implements locator of all nodes inside a box (reference positions)
//  Example: {{xmin, ymin, zmin}, {xmax, ymax, zmax}}
type InBox [2][3]float64

// AlongX implements locator of nodes along a line parallel to x with []float64{y_cte, z_cte}
type AlongX []float64

// Locate finds nodes
func (o N) Locate(nodes []pd.NodeView) (ids []int) {
	for _, id := range o {
		for i, v := range nodes {
			if v.Id == id {
				ids = append(ids, i)
				break
			}
		}
	}
	return
}

// Locate finds nodes
func (o At) Locate(nodes []pd.NodeView) (ids []int) {
	var x r3.Vec
	for i := 0; i < len(o) && i < 3; i++ {
		switch i {
		case 0:
			x.X = o[i]
		case 1:
			x.Y = o[i]
		default:
			x.Z = o[i]
		}
	}
	for i, v := range nodes {
		if r3.Norm(r3.Sub(v.X, x)) < TolC {
			return []int{i}
		}
	}
	return
}

// Locate finds nodes
func (o InBox) Locate(nodes []pd.NodeView) (ids []int) {
	for i, v := range nodes {
		if v.X.X >= o[0][0] && v.X.X <= o[1][0] &&
			v.X.Y >= o[0][1] && v.X.Y <= o[1][1] &&
			v.X.Z >= o[0][2] && v.X.Z <= o[1][2] {
			ids = append(ids, i)
		}
	}
	return
}

// Locate finds nodes sorted by x
func (o AlongX) Locate(nodes []pd.NodeView) (ids []int) {
	y, z := 0.0, 0.0
	if len(o) > 0 {
		y = o[0]
	}
	if len(o) > 1 {
		z = o[1]
	}
	for i, v := range nodes {
		if math.Abs(v.X.Y-y) < TolC && math.Abs(v.X.Z-z) < TolC {
			ids = append(ids, i)
		}
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && nodes[ids[j]].X.X < nodes[ids[j-1]].X.X; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	return
}
