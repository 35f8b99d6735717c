// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/bbanerjee/Fracture-Effects-sub001/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"
)

func Test_family01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("family01. initial family is idempotent")

	nodes := gridNodes(4, 3, 2, 0.1, 0.15)
	dom, body, err := newTestBody(nodes, spring(2, 0))
	if err != nil {
		tst.Errorf("newTestBody failed:\n%v", err)
		return
	}

	// copy bonds
	first := make([][]Bond, len(nodes))
	for i, n := range nodes {
		first[i] = append([]Bond{}, n.Bonds...)
	}
	nlinks := body.Links.Len()

	// again
	err = body.CreateInitialFamily(dom)
	if err != nil {
		tst.Errorf("CreateInitialFamily failed:\n%v", err)
		return
	}
	chk.Int(tst, "nlinks", body.Links.Len(), nlinks)
	for i, n := range nodes {
		chk.Int(tst, io.Sf("nbonds of %d", i), len(n.Bonds), len(first[i]))
		chk.Int(tst, io.Sf("family size of %d", i), n.FamilySize, len(first[i]))
		for j, b := range n.Bonds {
			if b != first[i][j] {
				tst.Errorf("bond %d of node %d changed: %v != %v", j, i, b, first[i][j])
				return
			}
		}
	}

	// each link is seen from both ends
	nbonds, nbroken := body.Nbonds()
	chk.Int(tst, "nbonds", nbonds, 2*nlinks)
	chk.Int(tst, "nbroken", nbroken, 0)

	// bond properties
	b := nodes[0].Bonds[0]
	chk.Int(tst, "partner", b.Partner, 1)
	chk.Float64(tst, "ξ", 1e-15, b.Xi, 0.1)
	chk.Float64(tst, "c", 1e-15, b.C, 2)
	if !math.IsInf(b.S0, 1) {
		tst.Errorf("critical stretch of unbreakable material must be +Inf")
		return
	}
}

func Test_family02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("family02. links are shared by both ends")

	nodes := gridNodes(3, 1, 1, 1, 1.5)
	_, body, err := newTestBody(nodes, spring(1, 0.01))
	if err != nil {
		tst.Errorf("newTestBody failed:\n%v", err)
		return
	}
	chk.Ints(tst, "partners of 1", partners(body, 1), []int{0, 2})

	// break 1→2 and check 2→1
	link := nodes[1].Bonds[1].Link
	chk.Int(tst, "same link", nodes[2].Bonds[0].Link, link)
	if !body.Links.Break(link) {
		tst.Errorf("Break must return true for alive link")
		return
	}
	if body.Links.Break(link) {
		tst.Errorf("Break must return false for dead link")
		return
	}
	if body.Links.IsAlive(nodes[2].Bonds[0].Link) {
		tst.Errorf("bond 2→1 must be broken")
		return
	}
	body.UpdateDamage()
	chk.Float64(tst, "damage of 0", 1e-15, nodes[0].Damage, 0)
	chk.Float64(tst, "damage of 1", 1e-15, nodes[1].Damage, 0.5)
	chk.Float64(tst, "damage of 2", 1e-15, nodes[2].Damage, 1)
	chk.Int(tst, "nbroken", body.Links.Nbroken(), 1)
	chk.Int(tst, "alive bonds of 1", body.View(1).Nbonds, 1)
}

func Test_family03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("family03. update family keeps broken bonds")

	// 2 ← 0 → 1
	nodes := []*Node{
		NewNode(0, r3.Vec{}, 1, 1.5, 0),
		NewNode(1, r3.Vec{X: 1}, 1, 1.5, 0),
		NewNode(2, r3.Vec{X: -1}, 1, 1.5, 0),
		NewNode(3, r3.Vec{X: 3}, 1, 1.5, 0),
	}
	dom, body, err := newTestBody(nodes, spring(1, 0.01))
	if err != nil {
		tst.Errorf("newTestBody failed:\n%v", err)
		return
	}
	chk.Ints(tst, "partners of 0", partners(body, 0), []int{1, 2})
	chk.Ints(tst, "partners of 3", partners(body, 3), nil)
	body.Links.Break(nodes[0].Bonds[0].Link)

	// move 1 and 2 away; bring 3 closer
	nodes[1].Disp = r3.Vec{X: 5}
	nodes[2].Disp = r3.Vec{X: -5}
	nodes[3].Disp = r3.Vec{X: -2}
	err = body.UpdateFamily(dom)
	if err != nil {
		tst.Errorf("UpdateFamily failed:\n%v", err)
		return
	}
	chk.Ints(tst, "partners of 0", partners(body, 0), []int{1, 3})
	chk.Ints(tst, "partners of 1", partners(body, 1), []int{0})
	chk.Ints(tst, "partners of 2", partners(body, 2), nil)
	chk.Ints(tst, "partners of 3", partners(body, 3), []int{0})
	chk.Int(tst, "family size of 0", nodes[0].FamilySize, 2)
	if body.Links.IsAlive(nodes[0].Bonds[0].Link) {
		tst.Errorf("bond 0→1 must remain broken")
		return
	}
	if !body.Links.IsAlive(nodes[0].Bonds[1].Link) {
		tst.Errorf("new bond 0→3 must be alive")
		return
	}
	chk.Float64(tst, "ξ of 0→3", 1e-15, nodes[0].Bonds[1].Xi, 3)

	// damage never decreases
	body.UpdateDamage()
	chk.Float64(tst, "damage of 0", 1e-15, nodes[0].Damage, 0.5)
	chk.Float64(tst, "damage of 1", 1e-15, nodes[1].Damage, 1)

	// a second update does not change anything
	err = body.UpdateFamily(dom)
	if err != nil {
		tst.Errorf("UpdateFamily failed:\n%v", err)
		return
	}
	chk.Ints(tst, "partners of 0", partners(body, 0), []int{1, 3})
	chk.Int(tst, "nlinks", body.Links.Len(), 3)
}

func Test_family04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("family04. invalid family search")

	nodes := gridNodes(2, 2, 2, 1, 1.5)
	dom, body, err := newTestBody(nodes, spring(1, 0))
	if err != nil {
		tst.Errorf("newTestBody failed:\n%v", err)
		return
	}
	var serr *SetupError

	body.Search = "octree"
	if err = body.CreateInitialFamily(dom); !errors.As(err, &serr) {
		tst.Errorf("unknown search must fail with SetupError")
		return
	}

	body.Search = "kdtree"
	if err = body.CreateInitialFamily(dom); err != nil {
		tst.Errorf("kdtree search failed:\n%v", err)
		return
	}
	chk.Ints(tst, "partners of 0", partners(body, 0), []int{1, 2, 3, 4, 5, 6})

	body.Search = "cells"
	small, _ := NewDomain(dom.Box, 1)
	if err = body.CreateInitialFamily(small); !errors.As(err, &serr) {
		tst.Errorf("cell size smaller than horizon must fail with SetupError")
		return
	}

	empty := NewBody(1, nil, body.Mats)
	if err = empty.CreateInitialFamily(dom); !errors.As(err, &serr) {
		tst.Errorf("empty body must fail with SetupError")
		return
	}

	nodes[3].Horizon = 0
	if err = body.Initialize(); !errors.As(err, &serr) {
		tst.Errorf("zero horizon must fail with SetupError")
		return
	}
}

func Test_crack01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("crack01. segment and parallelogram")

	p0 := r3.Vec{X: 0.5, Y: -1, Z: -1}
	e1 := r3.Vec{Y: 2}
	e2 := r3.Vec{Z: 2}
	a := r3.Vec{}
	if !SegmentCrossesParallelogram(a, r3.Vec{X: 1}, p0, e1, e2) {
		tst.Errorf("segment must cross")
		return
	}
	if SegmentCrossesParallelogram(a, r3.Vec{X: 0.4}, p0, e1, e2) {
		tst.Errorf("short segment must not cross")
		return
	}
	if SegmentCrossesParallelogram(r3.Vec{Y: 3}, r3.Vec{X: 1, Y: 3}, p0, e1, e2) {
		tst.Errorf("segment beside the parallelogram must not cross")
		return
	}
	if SegmentCrossesParallelogram(r3.Vec{X: 0.5}, r3.Vec{X: 0.5, Y: 0.5}, p0, e1, e2) {
		tst.Errorf("parallel segment must not cross")
		return
	}
	if !SegmentCrossesParallelogram(r3.Vec{X: 1, Y: 0.9, Z: 0.9}, r3.Vec{Y: 0.9, Z: 0.9}, p0, e1, e2) {
		tst.Errorf("reversed segment near the corner must cross")
		return
	}
}

func Test_crack02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("crack02. initial crack breaks crossing bonds")

	nodes := gridNodes(4, 1, 1, 1, 1.5)
	_, body, err := newTestBody(nodes, spring(1, 0))
	if err != nil {
		tst.Errorf("newTestBody failed:\n%v", err)
		return
	}
	cracks := []*inp.Crack{{Name: "c", P0: [3]float64{1.5, -1, -1}, P1: [3]float64{1.5, 1, -1}, P2: [3]float64{1.5, -1, 1}}}
	nbroken := body.ApplyCracks(cracks)
	chk.Int(tst, "nbroken", nbroken, 1)
	chk.Float64(tst, "damage of 0", 1e-15, nodes[0].Damage, 0)
	chk.Float64(tst, "damage of 1", 1e-15, nodes[1].Damage, 0.5)
	chk.Float64(tst, "damage of 2", 1e-15, nodes[2].Damage, 0.5)
	chk.Float64(tst, "damage of 3", 1e-15, nodes[3].Damage, 0)

	// applying again breaks nothing new
	chk.Int(tst, "nbroken", body.ApplyCracks(cracks), 0)
}

func Test_family05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("family05. coincident nodes")

	// coincident nodes are neighbours but cannot be bonded
	nodes := []*Node{
		NewNode(0, r3.Vec{}, 1, 1.5, 0),
		NewNode(1, r3.Vec{X: 1}, 1, 1.5, 0),
		NewNode(7, r3.Vec{}, 1, 1.5, 0),
	}
	_, _, err := newTestBody(nodes, spring(2, 0))
	var serr *SetupError
	if !errors.As(err, &serr) {
		tst.Errorf("coincident nodes must fail with SetupError. err = %v", err)
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.Contains(serr.Reason, "nodes 0 and 7") {
		tst.Errorf("reason must name both nodes: %q", serr.Reason)
		return
	}

	// an omitted node may coincide with another one
	nodes = []*Node{
		NewNode(0, r3.Vec{}, 1, 1.5, 0),
		NewNode(1, r3.Vec{X: 1}, 1, 1.5, 0),
		NewNode(2, r3.Vec{}, 0, 1.5, 0),
	}
	_, body, err := newTestBody(nodes, spring(2, 0))
	if err != nil {
		tst.Errorf("omitted coincident node must be accepted:\n%v", err)
		return
	}
	dt := body.StableDt(0, 1)
	chk.Float64(tst, "dt of 0", 1e-15, dt, math.Sqrt(2.0/2.0))
	body.Nodes[1].Disp = r3.Vec{X: 0.1}
	body.ComputeInternalForce(0)
	chk.Float64(tst, "fx of 0", 1e-15, body.Nodes[0].IntForce.X, 2*0.1)
	chk.Float64(tst, "fy of 0", 1e-15, body.Nodes[0].IntForce.Y, 0)
}
