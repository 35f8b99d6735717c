// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pd implements bond-based peridynamics simulations with explicit time integration
package pd

import (
	"math"
	"sync"
	"time"

	"github.com/bbanerjee/Fracture-Effects-sub001/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Solver implements the time loop
type Solver interface {
	Step() (err error)            // advances one time step
	Run(verbose bool) (err error) // runs until final time or maximum number of iterations
}

// solverallocators holds all available solvers
var solverallocators = make(map[string]func(o *PD) Solver)

// PD holds all data for a peridynamics simulation
type PD struct {
	Sim      *inp.Simulation // simulation data
	Summary  *Summary        // summary of outputs
	Domain   *Domain         // domain with cell grid and velocity conditions
	Bodies   []*Body         // all bodies
	Solver   Solver          // time integrator
	Writers  []Writer        // output writers
	Nworkers int             // number of goroutines in force computations
	Verbose  bool            // show messages

	// state
	T    float64 // current time
	Dt   float64 // time step for the next iteration
	Iter int     // number of completed iterations

	// auxiliary
	tidx    int        // next output index
	lastout int        // iteration of last output
	mu      sync.Mutex // protects status
	status  Status     // latest status
}

// ReadPD reads a .sim file and allocates a new PD structure
//  alias     -- word to be appended to simulation key
//  erasePrev -- erase previous results files
func ReadPD(simfilepath, alias string, erasePrev, verbose bool) (o *PD, err error) {
	sim, err := inp.ReadSim(simfilepath, alias, erasePrev)
	if err != nil {
		return
	}
	return NewPD(sim, verbose)
}

// MustNewPD returns a new PD structure or panics
func MustNewPD(sim *inp.Simulation, verbose bool) *PD {
	o, err := NewPD(sim, verbose)
	if err != nil {
		chk.Panic("cannot allocate peridynamics simulation:\n%v", err)
	}
	return o
}

// NewPD returns a new PD structure
//  Bodies get their initial families, cracks, initial velocities and velocity conditions
func NewPD(sim *inp.Simulation, verbose bool) (o *PD, err error) {

	// new PD object
	o = &PD{Sim: sim, Nworkers: sim.Solver.Nworkers, Verbose: verbose, lastout: -1}
	if len(sim.Bodies) == 0 {
		return nil, setupErr("at least one body must be given")
	}

	// bodies
	hmax := 0.0
	for i, dat := range sim.Bodies {
		body, e := NewBodyFromInput(i, dat, sim.MatParams, sim.Functions)
		if e != nil {
			return nil, e
		}
		body.Search = sim.Solver.Search
		hmax = math.Max(hmax, body.MaxHorizon())
		o.Bodies = append(o.Bodies, body)
	}

	// domain
	box, err := NewBox(sim.Domain.Box.Xmin, sim.Domain.Box.Xmax)
	if err != nil {
		return nil, err
	}
	cellSize := sim.Domain.CellSize
	if cellSize <= 0 {
		cellSize = hmax
	}
	if cellSize < hmax {
		return nil, setupErr("cell size (%g) must not be smaller than the largest horizon (%g)", cellSize, hmax)
	}
	if o.Domain, err = NewDomain(box, cellSize); err != nil {
		return nil, err
	}

	// velocity conditions
	for i, bc := range sim.Domain.VelBcs {
		bcbox, e := NewBox(bc.Box.Xmin, bc.Box.Xmax)
		if e != nil {
			return nil, setupErr("velocity condition %d: %v", i, e.(*SetupError).Reason)
		}
		if len(bc.Funcs) != len(bc.Keys) {
			return nil, setupErr("velocity condition %d: number of functions must equal number of keys", i)
		}
		for j, key := range bc.Keys {
			fcn, e := sim.Functions.Get(bc.Funcs[j])
			if e != nil {
				return nil, setupErr("velocity condition %d: %v", i, e)
			}
			if err = o.Domain.AddVelBc(bcbox, key, fcn); err != nil {
				return nil, err
			}
		}
	}

	// families, cracks and initial conditions
	for _, body := range o.Bodies {
		if err = body.CreateInitialFamily(o.Domain); err != nil {
			return nil, err
		}
		nbroken := body.ApplyCracks(body.Cracks)
		if verbose && len(body.Cracks) > 0 {
			io.Pf("body %d: %d bonds broken by %d initial cracks\n", body.Id, nbroken, len(body.Cracks))
		}
		body.ApplyInitialVelocity()
		o.Domain.ApplyVelocityBCs(0, body)
	}

	// initial time step
	o.Dt = sim.Control.Dt
	if o.Dt <= 0 {
		o.Dt = o.StableDt()
		if math.IsInf(o.Dt, 1) {
			return nil, setupErr("cannot compute initial time step because no node has bonds; set control.dt")
		}
	}
	if !(o.Dt > 0) || math.IsInf(o.Dt, 1) {
		return nil, setupErr("initial time step must be positive and finite. dt=%g is invalid", o.Dt)
	}
	if sim.Control.DtMax > 0 {
		o.Dt = math.Min(o.Dt, sim.Control.DtMax)
	}

	// solver
	alloc, ok := solverallocators[sim.Solver.Type]
	if !ok {
		return nil, setupErr("cannot find solver type named %q", sim.Solver.Type)
	}
	o.Solver = alloc(o)

	// output
	o.Summary = NewSummary(sim.DirOut, sim.Key, sim.EncType)
	if sim.Output.Files {
		o.Writers = append(o.Writers, &FileWriter{Dirout: sim.DirOut, Fnkey: sim.Key, Enc: sim.EncType, Verbose: verbose})
	}
	o.setStatus(StepCommitted, false, "")
	return
}

// AddWriter adds an output writer
func (o *PD) AddWriter(w Writer) {
	o.Writers = append(o.Writers, w)
}

// Run runs the simulation
func (o *PD) Run() (err error) {

	// message
	cputime := time.Now()
	if o.Verbose {
		io.Pfcyan("running %q with %d bodies\n", o.Sim.Key, len(o.Bodies))
	}

	// time loop
	o.setStatus(o.Status().State, true, "")
	err = o.Solver.Run(o.Verbose)
	if err != nil {
		o.setStatus(o.Status().State, false, err.Error())
		return
	}
	o.setStatus(o.Status().State, false, "")

	// message
	if o.Verbose {
		nnodes, nbonds, nbroken := o.Counts()
		io.Pf("\n\n")
		io.Pf("final time = %v\n", o.T)
		io.Pf("iterations = %d\n", o.Iter)
		io.Pf("nodes      = %d\n", nnodes)
		io.Pf("bonds      = %d (%d broken)\n", nbonds, nbroken)
		io.Pflmag("cpu time   = %v\n", time.Since(cputime))
	}

	// save summary
	if o.Sim.Output.Files {
		err = o.Summary.Save(o.Verbose)
	}
	return
}

// Output calls all writers with the current state
func (o *PD) Output() (err error) {
	for _, w := range o.Writers {
		if err = w.Write(o.T, o.tidx, o.Domain, o.Bodies); err != nil {
			return chk.Err("cannot write output %d:\n%v", o.tidx, err)
		}
	}
	o.Summary.OutTimes = append(o.Summary.OutTimes, o.T)
	o.lastout = o.Iter
	o.tidx++
	return
}

// StableDt returns the smallest stable time step among all bodies
//  Returns +Inf if no node has bonds
func (o *PD) StableDt() (dt float64) {
	dt = math.Inf(1)
	for _, body := range o.Bodies {
		dt = math.Min(dt, body.ComputeStableDt(o.Sim.Control.DtFactor, o.Nworkers))
	}
	return
}

// Counts returns the number of nodes, bonds and broken bonds in all bodies
//  Each link is counted once
func (o *PD) Counts() (nnodes, nbonds, nbroken int) {
	for _, body := range o.Bodies {
		nnodes += len(body.Nodes)
		nbonds += body.Links.Len()
		nbroken += body.Links.Nbroken()
	}
	return
}

// Status returns a copy of the latest status
func (o *PD) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// setStatus records the current state
func (o *PD) setStatus(state StepState, running bool, errmsg string) {
	nnodes, nbonds, nbroken := o.Counts()
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status = Status{
		RunId:   o.Summary.RunId,
		Key:     o.Sim.Key,
		Time:    o.T,
		Dt:      o.Dt,
		Iter:    o.Iter,
		State:   state,
		Nnodes:  nnodes,
		Nbonds:  nbonds,
		Nbroken: nbroken,
		Running: running,
		Error:   errmsg,
	}
}
