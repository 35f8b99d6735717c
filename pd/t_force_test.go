// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"
)

func Test_force01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("force01. two nodes: equal and opposite forces")

	nodes := gridNodes(2, 1, 1, 1, 1.5)
	_, body, err := newTestBody(nodes, spring(2, 0))
	if err != nil {
		tst.Errorf("newTestBody failed:\n%v", err)
		return
	}
	nodes[1].Disp = r3.Vec{X: 0.1}
	body.ComputeForces(0, 1)

	io.Pforan("f0 = %v\n", nodes[0].IntForce)
	io.Pforan("f1 = %v\n", nodes[1].IntForce)
	chk.Float64(tst, "f0x", 1e-15, nodes[0].IntForce.X, 0.2)
	chk.Float64(tst, "f1x", 1e-15, nodes[1].IntForce.X, -0.2)
	chk.Float64(tst, "f0y", 1e-15, nodes[0].IntForce.Y, 0)
	chk.Float64(tst, "energy", 1e-15, nodes[0].Energy, 0.005)
	chk.Float64(tst, "spsum", 1e-15, nodes[0].Spsum, 2)
	chk.Float64(tst, "a0x", 1e-15, nodes[0].Acc.X, 0.2)
	chk.Float64(tst, "stretch", 1e-15, body.Stretch(0, nodes[0].Bonds[0]), 0.1)

	// broken bonds do not contribute
	body.Links.Break(nodes[0].Bonds[0].Link)
	body.ComputeForces(0, 1)
	chk.Float64(tst, "f0x", 1e-15, nodes[0].IntForce.X, 0)
	chk.Float64(tst, "f1x", 1e-15, nodes[1].IntForce.X, 0)
	chk.Float64(tst, "energy", 1e-15, nodes[0].Energy, 0)
	if !math.IsInf(body.StableDt(0, 0.8), 1) {
		tst.Errorf("stable time step of node without bonds must be +Inf")
		return
	}
}

func Test_force02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("force02. omitted nodes contribute no force")

	nodes := gridNodes(3, 1, 1, 1, 1.5)
	nodes[2].Volume = 0
	_, body, err := newTestBody(nodes, spring(2, 0))
	if err != nil {
		tst.Errorf("newTestBody failed:\n%v", err)
		return
	}
	if !nodes[2].Omit {
		tst.Errorf("node without volume must be omitted")
		return
	}
	chk.Ints(tst, "partners of 1", partners(body, 1), []int{0, 2})
	chk.Ints(tst, "partners of 2", partners(body, 2), nil)

	nodes[2].Disp = r3.Vec{X: 0.5}
	nodes[0].Disp = r3.Vec{X: -0.1}
	body.ComputeForces(0, 1)
	chk.Float64(tst, "f1x", 1e-15, nodes[1].IntForce.X, -0.2)
	chk.Float64(tst, "f2x", 1e-15, nodes[2].IntForce.X, 0)
	chk.Float64(tst, "a2x", 1e-15, nodes[2].Acc.X, 0)

	// the bond to an omitted node is not counted in the time step either
	chk.Float64(tst, "dt1", 1e-15, body.StableDt(1, 1), math.Sqrt(2.0/2.0))
	if !math.IsInf(body.StableDt(2, 1), 1) {
		tst.Errorf("stable time step of omitted node must be +Inf")
		return
	}

	// stretch never breaks bonds to omitted nodes
	nodes[1].Bonds[1].S0 = 1e-6
	chk.Int(tst, "nbroken", body.BreakBonds(), 0)
}

func Test_force03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("force03. parallel and serial passes agree")

	var count int64
	visits := make([]int, 1001)
	ForEachNode(len(visits), 7, func(i int) {
		visits[i]++
		atomic.AddInt64(&count, 1)
	})
	chk.Int(tst, "count", int(count), len(visits))
	for i, v := range visits {
		if v != 1 {
			tst.Errorf("node %d visited %d times", i, v)
			return
		}
	}

	// forces on a distorted grid
	nodes := gridNodes(5, 4, 3, 0.1, 0.25)
	_, body, err := newTestBody(nodes, spring(3, 0))
	if err != nil {
		tst.Errorf("newTestBody failed:\n%v", err)
		return
	}
	for i, n := range nodes {
		x := float64(i)
		n.Disp = r3.Vec{X: 1e-3 * math.Sin(x), Y: 1e-3 * math.Cos(3*x), Z: 1e-3 * math.Sin(7*x)}
	}
	body.ComputeForces(0, 1)
	serial := make([]r3.Vec, len(nodes))
	for i, n := range nodes {
		serial[i] = n.IntForce
	}
	body.ComputeForces(0, 0)
	for i, n := range nodes {
		if n.IntForce != serial[i] {
			tst.Errorf("force on node %d differs: %v != %v", i, n.IntForce, serial[i])
			return
		}
	}

	// sum of internal forces vanishes with equal volumes
	var sum r3.Vec
	for _, n := range nodes {
		sum = r3.Add(sum, n.IntForce)
	}
	chk.Float64(tst, "|Σf|", 1e-12, r3.Norm(sum), 0)
}

func Test_force04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("force04. stretch beyond critical breaks bonds")

	nodes := gridNodes(3, 1, 1, 1, 1.5)
	_, body, err := newTestBody(nodes, spring(1, 0.01))
	if err != nil {
		tst.Errorf("newTestBody failed:\n%v", err)
		return
	}

	// below critical
	nodes[2].Disp = r3.Vec{X: 0.005}
	chk.Int(tst, "nbroken", body.BreakBonds(), 0)

	nodes[2].Disp = r3.Vec{X: 0.02}
	chk.Int(tst, "nbroken", body.BreakBonds(), 1)
	body.UpdateDamage()
	chk.Float64(tst, "damage of 1", 1e-15, nodes[1].Damage, 0.5)
	chk.Float64(tst, "damage of 2", 1e-15, nodes[2].Damage, 1)

	// broken bonds stay broken
	nodes[2].Disp = r3.Vec{}
	chk.Int(tst, "nbroken", body.BreakBonds(), 0)
	body.UpdateDamage()
	chk.Float64(tst, "damage of 2", 1e-15, nodes[2].Damage, 1)
}
