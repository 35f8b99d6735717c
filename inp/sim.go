// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path; empty => use "materials" in .sim file
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gopd
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
}

// SolverData holds solver data
type SolverData struct {
	Type         string `json:"type"`         // solver type: "vv" => velocity-Verlet
	Search       string `json:"search"`       // family search: "cells" or "kdtree"
	Nworkers     int    `json:"nworkers"`     // number of goroutines in force computations; 0 => one per CPU
	UpdateFamily bool   `json:"updatefamily"` // rebuild families at displaced positions every step
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf       float64 `json:"tf"`       // final time
	MaxIt    int     `json:"maxit"`    // maximum number of iterations
	Dt       float64 `json:"dt"`       // initial time step size
	DtFactor float64 `json:"dtfactor"` // safety factor multiplying the stable time step
	DtMax    float64 `json:"dtmax"`    // maximum time step size; 0 => no limit
	Fixed    bool    `json:"fixed"`    // keep Dt constant; i.e. do not adapt from the stable time step
}

// OutputData holds output settings
type OutputData struct {
	Every    int    `json:"every"`    // write output every 'Every' iterations
	Files    bool   `json:"files"`    // save snapshots to files
	Png      bool   `json:"png"`      // save damage maps to png files
	PngSize  int    `json:"pngsize"`  // size of png images in pixels
	PngPlane string `json:"pngplane"` // projection plane: "xy", "xz" or "yz"
}

// BoxData holds an axis-aligned box
type BoxData struct {
	Xmin []float64 `json:"xmin"` // min corner
	Xmax []float64 `json:"xmax"` // max corner
}

// VelBc holds velocity boundary conditions applied to nodes inside a box
type VelBc struct {
	Box   BoxData  `json:"box"`   // region
	Keys  []string `json:"keys"`  // velocity components. ex: vx, vy, vz
	Funcs []string `json:"funcs"` // name of function. ex: zero, pull, etc.
}

// ForceBc holds external force densities applied to nodes inside a box
type ForceBc struct {
	Box   BoxData  `json:"box"`   // region
	Keys  []string `json:"keys"`  // force components. ex: fx, fy, fz
	Funcs []string `json:"funcs"` // name of function. ex: load
}

// DomainData holds the domain data
type DomainData struct {
	Box      BoxData  `json:"box"`      // bounding box
	CellSize float64  `json:"cellsize"` // size of cells for family search; 0 => largest horizon
	VelBcs   []*VelBc `json:"velbcs"`   // velocity boundary conditions
}

// BodyData holds body data
type BodyData struct {

	// input data
	Desc      string     `json:"desc"`      // description of body. ex: plate, projectile
	Mat       string     `json:"mat"`       // material name
	Box       *BoxData   `json:"box"`       // generate nodes on a regular grid inside this box
	Ndiv      []int      `json:"ndiv"`      // number of divisions along each direction of box
	Mshfile   string     `json:"mshfile"`   // file with nodes (instead of Box)
	Horizon   float64    `json:"horizon"`   // horizon size
	Hfactor   float64    `json:"hfactor"`   // horizon = Hfactor * spacing (when Horizon is zero)
	Distrib   string     `json:"distrib"`   // material distribution: constant, uniform, gaussian
	Cov       float64    `json:"cov"`       // coefficient of variation of stiffness
	Seed      uint64     `json:"seed"`      // seed for random distributions
	IniVel    []float64  `json:"inivel"`    // initial velocity
	BodyForce []float64  `json:"bodyforce"` // body force per unit mass
	BfFunc    string     `json:"bffunc"`    // multiplier function of body force
	ForceBcs  []*ForceBc `json:"forcebcs"`  // external force conditions
	Crackfile string     `json:"crackfile"` // file with initial cracks

	// derived
	Msh    *Mesh    // the nodes
	Cracks []*Crack // initial cracks
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // stores global simulation data
	Functions FuncsData   `json:"functions"` // stores all boundary condition functions
	Materials MatsData    `json:"materials"` // materials given in the simulation file
	Domain    DomainData  `json:"domain"`    // domain
	Bodies    []*BodyData `json:"bodies"`    // all bodies
	Solver    SolverData  `json:"solver"`    // solver data
	Control   TimeControl `json:"control"`   // time control
	Output    OutputData  `json:"output"`    // output control

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType   string // encoder type
	MatParams *MatDb // materials' parameters
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasefiles bool) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	return ParseSim(b, dir, fnkey, alias, erasefiles)
}

// ParseSim parses simulation data
//  dir   -- directory where auxiliary files (materials, meshes, cracks) are located
//  fnkey -- filename key
func ParseSim(b []byte, dir, fnkey, alias string, erasefiles bool) (o *Simulation, err error) {

	// new sim and default values
	o = new(Simulation)
	o.Solver.SetDefault()
	o.Control.SetDefault()
	o.Output.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file:\n%v", err)
	}
	o.Control.PostProcess()
	o.Output.PostProcess()

	// key
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = os.Getenv("GOPD_DIROUT")
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/gopd/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// materials database
	if o.Data.Matfile != "" {
		o.MatParams, err = ReadMat(dir, o.Data.Matfile)
	} else {
		o.MatParams, err = NewMatDb(o.Functions, o.Materials)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read materials database:\n%v", err)
	}

	// check functions
	for _, bc := range o.Domain.VelBcs {
		if err = o.checkFuncs(bc.Funcs); err != nil {
			return nil, err
		}
	}

	// bodies
	if len(o.Bodies) == 0 {
		return nil, chk.Err("ReadSim: at least one body must be given")
	}
	for i, body := range o.Bodies {

		// material
		if o.MatParams.Get(body.Mat) == nil {
			return nil, chk.Err("ReadSim: cannot find material %q of body %d", body.Mat, i)
		}

		// nodes
		if body.Mshfile != "" {
			body.Msh, err = ReadMsh(dir, body.Mshfile)
		} else if body.Box != nil {
			body.Msh, err = GenBoxMesh(body.Box.Xmin, body.Box.Xmax, body.Ndiv)
		} else {
			err = chk.Err("either mshfile or box must be given")
		}
		if err != nil {
			return nil, chk.Err("ReadSim: cannot set nodes of body %d:\n%v", i, err)
		}

		// horizon
		if body.Horizon <= 0 && body.Hfactor > 0 {
			body.Horizon = body.Hfactor * body.Msh.Spacing
		}

		// distribution
		if body.Distrib == "" {
			body.Distrib = "constant"
		}

		// functions
		if body.BfFunc != "" {
			if err = o.checkFuncs([]string{body.BfFunc}); err != nil {
				return nil, err
			}
		}
		for _, bc := range body.ForceBcs {
			if err = o.checkFuncs(bc.Funcs); err != nil {
				return nil, err
			}
		}

		// cracks
		if body.Crackfile != "" {
			body.Cracks, err = ReadCracks(filepath.Join(dir, body.Crackfile))
			if err != nil {
				return nil, chk.Err("ReadSim: cannot read cracks of body %d:\n%v", i, err)
			}
		}
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o *Simulation) checkFuncs(names []string) (err error) {
	for _, name := range names {
		_, err = o.Functions.Get(name)
		if err != nil {
			return chk.Err("ReadSim: %v", err)
		}
	}
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets defaults values
func (o *SolverData) SetDefault() {
	o.Type = "vv"
	o.Search = "cells"
}

// SetDefault sets defaults values
func (o *TimeControl) SetDefault() {
	o.Tf = 1
	o.MaxIt = 1000
	o.DtFactor = 0.8
}

// PostProcess performs a post-processing of the just read json file
func (o *TimeControl) PostProcess() {
	if o.Tf < 1e-14 {
		o.Tf = 1
	}
	if o.MaxIt < 1 {
		o.MaxIt = 1
	}
	if o.DtFactor <= 0 || o.DtFactor > 1 {
		o.DtFactor = 0.8
	}
}

// SetDefault sets defaults values
func (o *OutputData) SetDefault() {
	o.Every = 10
	o.PngSize = 512
	o.PngPlane = "xy"
}

// PostProcess performs a post-processing of the just read json file
func (o *OutputData) PostProcess() {
	if o.Every < 1 {
		o.Every = 1
	}
	if o.PngSize < 16 {
		o.PngSize = 16
	}
	switch o.PngPlane {
	case "xy", "xz", "yz":
	default:
		o.PngPlane = "xy"
	}
}
