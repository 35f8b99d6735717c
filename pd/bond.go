// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

// Bond is the view of an interaction from its owner node
//  The alive state lives in the body's LinkTable and is shared by A→B and B→A
type Bond struct {
	Partner int     // index of partner node in body
	Link    int     // index of link in LinkTable
	Xi      float64 // reference length |ξ|
	C       float64 // micromodulus
	S0      float64 // critical stretch
	MatA    int     // material of owner
	MatB    int     // material of partner
}

// LinkTable holds the state of undirected node pairs
type LinkTable struct {
	Pairs   [][2]int       // [nlinks] node indices (a < b)
	Alive   []bool         // [nlinks] link is not broken
	index   map[[2]int]int // pair => link index
	nbroken int            // number of broken links
}

// NewLinkTable returns a new table
func NewLinkTable() *LinkTable {
	return &LinkTable{index: make(map[[2]int]int)}
}

// Find returns the link between a and b, if any
func (o *LinkTable) Find(a, b int) (link int, found bool) {
	link, found = o.index[pairKey(a, b)]
	return
}

// Add returns the link between a and b, creating an alive one if not present
func (o *LinkTable) Add(a, b int) (link int) {
	key := pairKey(a, b)
	if l, ok := o.index[key]; ok {
		return l
	}
	link = len(o.Pairs)
	o.Pairs = append(o.Pairs, key)
	o.Alive = append(o.Alive, true)
	o.index[key] = link
	return
}

// Break marks link as broken. Returns true if the link was alive
func (o *LinkTable) Break(link int) bool {
	if !o.Alive[link] {
		return false
	}
	o.Alive[link] = false
	o.nbroken++
	return true
}

// IsAlive tells whether link is alive
func (o *LinkTable) IsAlive(link int) bool {
	return o.Alive[link]
}

// Len returns the number of links
func (o *LinkTable) Len() int { return len(o.Pairs) }

// Nbroken returns the number of broken links
func (o *LinkTable) Nbroken() int { return o.nbroken }

func pairKey(a, b int) [2]int {
	if a > b {
		return [2]int{b, a}
	}
	return [2]int{a, b}
}
