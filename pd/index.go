// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"sort"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/spatial/r3"
)

// PositionSelector selects which position of a node is used to locate it
type PositionSelector func(n *Node) r3.Vec

// Reference selects the reference position
func Reference(n *Node) r3.Vec { return n.X }

// Displaced selects the reference position plus the current displacement
func Displaced(n *Node) r3.Vec { return n.Displaced() }

// FamilySearcher finds all nodes within the horizon of a node
//  The result excludes the node itself and is sorted by node index
type FamilySearcher interface {
	Family(idx int) []int
}

// CellIndex maps cells of the domain grid to the nodes located in them
//  A CellIndex is built once from a snapshot of positions and never updated;
//  build a new one when positions change
type CellIndex struct {
	dom     *Domain
	pos     []r3.Vec        // [nnodes] snapshot of positions
	horizon []float64       // [nnodes] horizons
	cells   [][3]int        // [nnodes] cell of each node
	grid    map[int64][]int // cell key => node indices
}

// NewCellIndex locates all nodes using positions given by sel
func NewCellIndex(dom *Domain, nodes []*Node, sel PositionSelector) (o *CellIndex) {
	o = &CellIndex{
		dom:     dom,
		pos:     make([]r3.Vec, len(nodes)),
		horizon: make([]float64, len(nodes)),
		cells:   make([][3]int, len(nodes)),
		grid:    make(map[int64][]int),
	}
	for i, n := range nodes {
		o.pos[i] = sel(n)
		o.horizon[i] = n.Horizon
		o.cells[i] = dom.FindCellIndex(o.pos[i])
		o.Insert(i, o.cells[i])
	}
	return
}

// CellKey packs a cell into 16-bit fields at offsets 16, 32 and 48
func CellKey(cell [3]int) int64 {
	return int64(cell[0])<<16 | int64(cell[1])<<32 | int64(cell[2])<<48
}

// Insert registers node idx under cell
//  Cells outside the grid get keys with the lowest bit set, which never
//  match a cell of the grid; such nodes are thus isolated
func (o *CellIndex) Insert(idx int, cell [3]int) {
	var key int64
	if o.dom.InRange(cell) {
		key = CellKey(cell)
	} else {
		key = CellKey([3]int{cell[0] & 0xffff, cell[1] & 0xffff, cell[2] & 0xffff}) | 1
	}
	o.grid[key] = append(o.grid[key], idx)
}

// Cell returns the cell of node idx
func (o *CellIndex) Cell(idx int) [3]int {
	return o.cells[idx]
}

// QueryNeighborCells returns all nodes in the 3×3×3 block of cells around node idx
//  The block is clamped to [1, Ncells]. Nodes outside the grid get no candidates
func (o *CellIndex) QueryNeighborCells(idx int) (candidates []int) {
	cell := o.cells[idx]
	if !o.dom.InRange(cell) {
		return
	}
	var lo, hi [3]int
	for i := 0; i < 3; i++ {
		lo[i] = utl.Imax(1, cell[i]-1)
		hi[i] = utl.Imin(cell[i]+1, o.dom.Ncells[i])
	}
	for ii := lo[0]; ii <= hi[0]; ii++ {
		for jj := lo[1]; jj <= hi[1]; jj++ {
			for kk := lo[2]; kk <= hi[2]; kk++ {
				candidates = append(candidates, o.grid[CellKey([3]int{ii, jj, kk})]...)
			}
		}
	}
	return
}

// QueryFamily returns the candidates strictly closer to node idx than its horizon
//  The node itself is excluded by index; coincident distinct nodes are kept
func (o *CellIndex) QueryFamily(idx int, candidates []int) (family []int) {
	p, h := o.pos[idx], o.horizon[idx]
	for _, c := range candidates {
		if c == idx {
			continue
		}
		if distance(o.pos[c], p) < h {
			family = append(family, c)
		}
	}
	return
}

// Family implements FamilySearcher
func (o *CellIndex) Family(idx int) (family []int) {
	family = o.QueryFamily(idx, o.QueryNeighborCells(idx))
	sort.Ints(family)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}
