// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"github.com/bbanerjee/Fracture-Effects-sub001/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

// ApplyCracks breaks all bonds crossing the initial cracks and updates damage
//  Returns the number of links broken
func (o *Body) ApplyCracks(cracks []*inp.Crack) (nbroken int) {
	for _, c := range cracks {
		p0 := r3.Vec{X: c.P0[0], Y: c.P0[1], Z: c.P0[2]}
		e1 := r3.Sub(r3.Vec{X: c.P1[0], Y: c.P1[1], Z: c.P1[2]}, p0)
		e2 := r3.Sub(r3.Vec{X: c.P2[0], Y: c.P2[1], Z: c.P2[2]}, p0)
		for l, pair := range o.Links.Pairs {
			if !o.Links.IsAlive(l) {
				continue
			}
			if SegmentCrossesParallelogram(o.Nodes[pair[0]].X, o.Nodes[pair[1]].X, p0, e1, e2) {
				o.Links.Break(l)
				nbroken++
			}
		}
	}
	o.UpdateDamage()
	return
}

// SegmentCrossesParallelogram tells whether the segment a→b intersects p0 + s e1 + t e2; s,t ∈ [0,1]
//  Segments parallel to the parallelogram do not cross it
func SegmentCrossesParallelogram(a, b, p0, e1, e2 r3.Vec) bool {
	d := r3.Sub(b, a)
	n := r3.Cross(e1, e2)
	det := r3.Dot(d, n)
	if math.Abs(det) < 1e-14*r3.Norm(d)*r3.Norm(n) {
		return false
	}
	w := r3.Sub(p0, a)
	u := r3.Dot(w, n) / det
	s := -r3.Dot(d, r3.Cross(w, e2)) / det
	t := -r3.Dot(d, r3.Cross(e1, w)) / det
	return u >= 0 && u <= 1 && s >= 0 && s <= 1 && t >= 0 && t <= 1
}
