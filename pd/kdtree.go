// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// KdIndex finds families with a k-d tree built from a snapshot of positions
type KdIndex struct {
	pos      []r3.Vec     // [nnodes] snapshot of positions
	horizon  []float64    // [nnodes] horizons
	isolated []bool       // [nnodes] outside the domain grid
	tree     *kdtree.Tree // the tree
}

// NewKdIndex builds the tree using positions given by sel
//  Nodes outside the cell grid of dom are left out of the tree and get no family,
//  as with the cell index
func NewKdIndex(dom *Domain, nodes []*Node, sel PositionSelector) (o *KdIndex) {
	o = &KdIndex{
		pos:      make([]r3.Vec, len(nodes)),
		horizon:  make([]float64, len(nodes)),
		isolated: make([]bool, len(nodes)),
	}
	pts := make(kdPoints, 0, len(nodes))
	for i, n := range nodes {
		o.pos[i] = sel(n)
		o.horizon[i] = n.Horizon
		if !dom.InRange(dom.FindCellIndex(o.pos[i])) {
			o.isolated[i] = true
			continue
		}
		pts = append(pts, kdPoint{x: o.pos[i], idx: i})
	}
	if len(pts) > 0 {
		o.tree = kdtree.New(pts, false)
	}
	return
}

// Family implements FamilySearcher
func (o *KdIndex) Family(idx int) (family []int) {
	if o.tree == nil || o.isolated[idx] {
		return
	}
	p, h := o.pos[idx], o.horizon[idx]
	keep := kdtree.NewDistKeeper(h * h)
	o.tree.NearestSet(keep, kdPoint{x: p, idx: -1})
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		q := c.Comparable.(kdPoint)
		if q.idx == idx {
			continue
		}
		if distance(q.x, p) < h {
			family = append(family, q.idx)
		}
	}
	sort.Ints(family)
	return
}

// kd-tree points ///////////////////////////////////////////////////////////////////////////////////

// kdPoint is a node position in the tree
type kdPoint struct {
	x   r3.Vec
	idx int
}

// Compare implements kdtree.Comparable
func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdPoint)
	return comp(p.x, int(d)) - comp(q.x, int(d))
}

// Dims implements kdtree.Comparable
func (p kdPoint) Dims() int { return 3 }

// Distance implements kdtree.Comparable; returns the squared distance
func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	d := r3.Sub(p.x, c.(kdPoint).x)
	return r3.Dot(d, d)
}

// kdPoints implements kdtree.Interface
type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p kdPoints) Len() int                              { return len(p) }
func (p kdPoints) Pivot(d kdtree.Dim) int                { return kdPlane{Dim: d, kdPoints: p}.Pivot() }
func (p kdPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// kdPlane sorts points along one dimension
type kdPlane struct {
	kdtree.Dim
	kdPoints
}

func (p kdPlane) Less(i, j int) bool {
	return comp(p.kdPoints[i].x, int(p.Dim)) < comp(p.kdPoints[j].x, int(p.Dim))
}
func (p kdPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.kdPoints = p.kdPoints[start:end]
	return p
}
func (p kdPlane) Swap(i, j int) {
	p.kdPoints[i], p.kdPoints[j] = p.kdPoints[j], p.kdPoints[i]
}
