// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Stretch returns the current stretch of bond b owned by node idx
func (o *Body) Stretch(idx int, b Bond) float64 {
	n, p := o.Nodes[idx], o.Nodes[b.Partner]
	y := r3.Add(r3.Sub(p.X, n.X), r3.Sub(p.Disp, n.Disp))
	return (r3.Norm(y) - b.Xi) / b.Xi
}

// BreakBonds breaks all alive bonds with stretch greater than the critical one
//  Links are shared by both ends; thus this runs serially. Returns the number of broken links
func (o *Body) BreakBonds() (nbroken int) {
	for a, n := range o.Nodes {
		if n.Omit {
			continue
		}
		for _, b := range n.Bonds {
			if !o.Links.IsAlive(b.Link) || o.Nodes[b.Partner].Omit {
				continue
			}
			if o.Stretch(a, b) > b.S0 {
				if o.Links.Break(b.Link) {
					nbroken++
				}
			}
		}
	}
	return
}

// UpdateDamage sets the damage index of all nodes
//  damage = number of broken bonds / initial family size; nodes without family have zero damage
func (o *Body) UpdateDamage() {
	for _, n := range o.Nodes {
		n.Damage = 0
		if n.FamilySize == 0 {
			continue
		}
		broken := 0
		for _, b := range n.Bonds {
			if !o.Links.IsAlive(b.Link) {
				broken++
			}
		}
		n.Damage = math.Min(1, float64(broken)/float64(n.FamilySize))
	}
}
