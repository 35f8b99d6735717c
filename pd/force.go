// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// ComputeInternalForce computes the internal force density, energy and spsum of node idx
//  Only alive bonds to non-omitted partners contribute. Bonds are not modified
func (o *Body) ComputeInternalForce(idx int) {
	n := o.Nodes[idx]
	n.IntForce, n.Energy, n.Spsum = r3.Vec{}, 0, 0
	if n.Omit {
		return
	}
	ua := n.Disp
	for _, b := range n.Bonds {
		if !o.Links.IsAlive(b.Link) {
			continue
		}
		p := o.Nodes[b.Partner]
		if p.Omit {
			continue
		}
		ξ := r3.Sub(p.X, n.X)
		y := r3.Add(ξ, r3.Sub(p.Disp, ua))
		ly := r3.Norm(y)
		if ly == 0 {
			continue
		}
		s := (ly - b.Xi) / b.Xi
		n.IntForce = r3.Add(n.IntForce, r3.Scale(b.C*s*p.Volume/ly, y))
		n.Energy += 0.25 * b.C * s * s * b.Xi * p.Volume
		n.Spsum += b.C / n.Density
	}
}

// ComputeAcceleration computes the internal force and the acceleration of node idx at time t
//  bf -- body force per unit mass
func (o *Body) ComputeAcceleration(idx int, bf r3.Vec) {
	o.ComputeInternalForce(idx)
	n := o.Nodes[idx]
	if n.Omit {
		n.Acc = r3.Vec{}
		return
	}
	f := r3.Add(r3.Add(n.ExtForce, r3.Scale(n.Density, bf)), n.IntForce)
	n.Acc = r3.Scale(1.0/n.Density, f)
}

// StableDt returns the stable time step of node idx
//  Returns +Inf for omitted nodes and for nodes without alive bonds
func (o *Body) StableDt(idx int, factor float64) float64 {
	n := o.Nodes[idx]
	if n.Omit {
		return math.Inf(1)
	}
	den := 0.0
	for _, b := range n.Bonds {
		if !o.Links.IsAlive(b.Link) {
			continue
		}
		p := o.Nodes[b.Partner]
		if p.Omit {
			continue
		}
		den += p.Volume * b.C / b.Xi
	}
	if !(den > 0) {
		return math.Inf(1)
	}
	return factor * math.Sqrt(2.0*n.Density/den)
}

// ForEachNode runs fcn on all node indices using a pool of nworkers goroutines
//  Each goroutine handles a contiguous chunk of indices; fcn must only write to its own node.
//  nworkers < 1 means one goroutine per CPU
func ForEachNode(nnodes, nworkers int, fcn func(idx int)) {
	if nworkers < 1 {
		nworkers = runtime.NumCPU()
	}
	if nworkers > nnodes {
		nworkers = nnodes
	}
	if nworkers <= 1 {
		for i := 0; i < nnodes; i++ {
			fcn(i)
		}
		return
	}
	chunk := (nnodes + nworkers - 1) / nworkers
	var wg sync.WaitGroup
	for start := 0; start < nnodes; start += chunk {
		end := start + chunk
		if end > nnodes {
			end = nnodes
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fcn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ComputeForces computes internal forces and accelerations of all nodes in parallel
func (o *Body) ComputeForces(t float64, nworkers int) {
	o.ApplyForceBCs(t)
	bf := o.BodyForceAt(t)
	ForEachNode(len(o.Nodes), nworkers, func(i int) {
		o.ComputeAcceleration(i, bf)
	})
}

// ComputeStableDt computes DtEst of all nodes and returns their minimum
//  Returns +Inf if no node has a finite estimate
func (o *Body) ComputeStableDt(factor float64, nworkers int) (dtmin float64) {
	ForEachNode(len(o.Nodes), nworkers, func(i int) {
		o.Nodes[i].DtEst = o.StableDt(i, factor)
	})
	dtmin = math.Inf(1)
	for _, n := range o.Nodes {
		dtmin = math.Min(dtmin, n.DtEst)
	}
	return
}
