// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"
	"sort"
)

// BuildIndex builds a new family searcher using positions given by sel
func (o *Body) BuildIndex(dom *Domain, sel PositionSelector) (err error) {
	if len(o.Nodes) == 0 {
		return setupErr("cannot build family search structure of body %d: it has no nodes", o.Id)
	}
	switch o.Search {
	case "", "cells":
		if h := o.MaxHorizon(); h > dom.CellSize {
			return setupErr("cell size (%g) must not be smaller than the largest horizon (%g)", dom.CellSize, h)
		}
		o.Index = NewCellIndex(dom, o.Nodes, sel)
	case "kdtree":
		o.Index = NewKdIndex(dom, o.Nodes, sel)
	default:
		return setupErr("family search %q is invalid; options are cells and kdtree", o.Search)
	}
	return
}

// CreateInitialFamily creates the bonds of all non-omitted nodes using reference positions
//  All previous bonds are replaced and all links are alive afterwards. Given the
//  same nodes, the same bonds are created in the same order.
//  Coincident non-omitted nodes are a SetupError
func (o *Body) CreateInitialFamily(dom *Domain) (err error) {
	if err = o.BuildIndex(dom, Reference); err != nil {
		return
	}
	o.Links = NewLinkTable()
	for a, n := range o.Nodes {
		n.Bonds = nil
		n.FamilySize = 0
		n.Damage = 0
		if n.Omit {
			continue
		}
		family := o.Index.Family(a)
		n.Bonds = make([]Bond, len(family))
		for i, b := range family {
			n.Bonds[i] = o.newBond(a, b, o.Links.Add(a, b))
			if !(n.Bonds[i].Xi > 0) && !o.Nodes[b].Omit {
				return setupErr("nodes %d and %d of body %d coincide; bonds must have positive length", n.Id, o.Nodes[b].Id, o.Id)
			}
		}
		n.FamilySize = len(n.Bonds)
	}
	return
}

// UpdateFamily rebuilds the bonds using displaced positions
//  Pairs that already have a link keep it; thus broken bonds stay broken.
//  Broken bonds are retained even if the partner left the horizon so that damage
//  never decreases. Alive bonds whose partner left the horizon are dropped.
//  FamilySize is not changed
func (o *Body) UpdateFamily(dom *Domain) (err error) {
	if err = o.BuildIndex(dom, Displaced); err != nil {
		return
	}
	for a, n := range o.Nodes {
		if n.Omit {
			continue
		}
		family := o.Index.Family(a)
		bonds := make([]Bond, 0, len(family))
		retained := make(map[int]bool)
		for _, b := range n.Bonds {
			if !o.Links.IsAlive(b.Link) {
				bonds = append(bonds, b)
				retained[b.Partner] = true
			}
		}
		for _, b := range family {
			if retained[b] {
				continue
			}
			link, found := o.Links.Find(a, b)
			if found && !o.Links.IsAlive(link) {
				continue
			}
			if !found {
				link = o.Links.Add(a, b)
			}
			bonds = append(bonds, o.newBond(a, b, link))
		}
		sort.Slice(bonds, func(i, j int) bool { return bonds[i].Partner < bonds[j].Partner })
		n.Bonds = bonds
	}
	return
}

// newBond computes the properties of the bond between a and b
//  c  = average of both micromoduli scaled by the stiffness multipliers
//  s0 = smallest critical stretch
func (o *Body) newBond(a, b, link int) Bond {
	na, nb := o.Nodes[a], o.Nodes[b]
	ma, mb := o.Mats[na.Mat], o.Mats[nb.Mat]
	c := 0.5 * (ma.MicroModulus(na.Horizon)*na.Stiff + mb.MicroModulus(o.partnerHorizon(na, nb))*nb.Stiff)
	s0 := math.Min(ma.CriticalStretch(na.Horizon), mb.CriticalStretch(o.partnerHorizon(na, nb)))
	return Bond{
		Partner: b,
		Link:    link,
		Xi:      distance(na.X, nb.X),
		C:       c,
		S0:      s0,
		MatA:    na.Mat,
		MatB:    nb.Mat,
	}
}

// partnerHorizon returns the horizon of nb or, if nb is omitted, of na
func (o *Body) partnerHorizon(na, nb *Node) float64 {
	if nb.Omit || !(nb.Horizon > 0) {
		return na.Horizon
	}
	return nb.Horizon
}
