// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/spatial/r3"
)

// SolverVerlet integrates the equations of motion with the velocity-Verlet method
type SolverVerlet struct {
	pd       *PD
	progress *rate.Limiter // throttles progress messages
	state    StepState     // phase of current step
	states   []StepState   // phases visited in the last step
}

// set factory of solvers
func init() {
	solverallocators["vv"] = func(o *PD) Solver {
		return &SolverVerlet{
			pd:       o,
			progress: rate.NewLimiter(rate.Every(time.Second), 1),
			state:    StepCommitted,
		}
	}
}

// Run runs the time loop
//  Output is performed at the initial state, every Output.Every iterations and at the final state
func (o *SolverVerlet) Run(verbose bool) (err error) {

	// control
	p := o.pd
	ctrl := p.Sim.Control
	every := p.Sim.Output.Every
	if every < 1 {
		every = 1
	}

	// first output
	if p.Iter == 0 {
		if err = p.Output(); err != nil {
			return
		}
	}

	// time loop
	for p.T < ctrl.Tf && p.Iter < ctrl.MaxIt {
		if err = o.Step(); err != nil {
			return
		}
		if verbose && o.progress.Allow() {
			_, _, nbroken := p.Counts()
			io.Pf("iter = %8d  t = %13.6e  dt = %13.6e  broken = %d\n", p.Iter, p.T, p.Dt, nbroken)
		}
		if p.Iter%every == 0 {
			if err = p.Output(); err != nil {
				return
			}
		}
	}

	// last output
	if p.lastout != p.Iter {
		err = p.Output()
	}
	return
}

// Step advances one time step using the current time step size
func (o *SolverVerlet) Step() (err error) {

	// control
	p := o.pd
	ctrl := p.Sim.Control
	dt := p.Dt
	tnew := p.T + dt
	cputime := time.Now()
	o.states = o.states[:0]

	// force
	o.setState(PreForce)
	for _, body := range p.Bodies {
		body.ComputeForces(p.T, p.Nworkers)
	}

	// stage 1: half-step velocity and full-step displacement
	for _, body := range p.Bodies {
		for _, n := range body.Nodes {
			if n.Omit {
				n.OldDisp = n.Disp
				n.Vel, n.Disp, n.NewVel, n.NewDisp = r3.Vec{}, r3.Vec{}, r3.Vec{}, r3.Vec{}
				continue
			}
			if field, found := n.HasNaN(); found {
				return &NumericalError{NodeId: n.Id, Step: p.Iter, Field: field}
			}
			n.NewVel = halfStep(n, dt)
			n.NewDisp = r3.Add(n.Disp, r3.Scale(dt, n.NewVel))
		}
	}
	o.setState(Stage1Integrated)

	// commit stage 1 and velocity conditions
	for _, body := range p.Bodies {
		for _, n := range body.Nodes {
			if n.Omit {
				continue
			}
			n.OldDisp = n.Disp
			n.Disp = n.NewDisp
			n.Vel = n.NewVel
		}
		p.Domain.ApplyVelocityBCs(tnew, body)
	}
	o.setState(BcApplied)

	// force at new positions
	for _, body := range p.Bodies {
		body.ComputeForces(tnew, p.Nworkers)
	}
	o.setState(PostForce)

	// stage 2: velocity
	for _, body := range p.Bodies {
		for _, n := range body.Nodes {
			if n.Omit {
				continue
			}
			if field, found := n.HasNaN(); found {
				return &NumericalError{NodeId: n.Id, Step: p.Iter, Field: field}
			}
			n.NewVel = halfStep(n, dt)
			n.Vel = n.NewVel
		}
	}
	o.setState(Stage2Integrated)

	// stable time step for next iteration
	if !ctrl.Fixed {
		dtnext := p.StableDt()
		if !(dtnext > 0) {
			return &NumericalError{NodeId: -1, Step: p.Iter, Field: "dt"}
		}
		if !math.IsInf(dtnext, 1) {
			if ctrl.DtMax > 0 {
				dtnext = math.Min(dtnext, ctrl.DtMax)
			}
			p.Dt = dtnext
		}
	}

	// bonds and damage
	nbroken := 0
	for _, body := range p.Bodies {
		nbroken += body.BreakBonds()
		if p.Sim.Solver.UpdateFamily {
			if err = body.UpdateFamily(p.Domain); err != nil {
				return chk.Err("cannot update family of body %d:\n%v", body.Id, err)
			}
		}
		body.UpdateDamage()
	}

	// advance
	p.T = tnew
	p.Iter++
	o.setState(StepCommitted)

	// metrics
	metricSteps.Inc()
	metricBroken.Add(float64(nbroken))
	metricTime.Set(p.T)
	metricDt.Set(dt)
	metricStepDuration.Observe(time.Since(cputime).Seconds())
	return
}

// setState records the phase of the step
func (o *SolverVerlet) setState(state StepState) {
	o.state = state
	o.states = append(o.states, state)
	o.pd.setStatus(state, true, "")
}

// halfStep returns Vel + Acc dt/2 keeping prescribed components unchanged
func halfStep(n *Node, dt float64) (v r3.Vec) {
	v = r3.Add(n.Vel, r3.Scale(dt/2.0, n.Acc))
	for i := 0; i < 3; i++ {
		if n.fixed[i] {
			setComp(&v, i, comp(n.Vel, i))
		}
	}
	return
}
