// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/bbanerjee/Fracture-Effects-sub001/inp"
	"github.com/bbanerjee/Fracture-Effects-sub001/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fogleman/gg"
)

// runChain runs the chain simulation and adds a png writer
func runChain(tst *testing.T) (p *pd.PD, pw *PngWriter) {
	sim, err := inp.ReadSim("../pd/data/chain.sim", "out", false)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return nil, nil
	}
	sim.DirOut = "/tmp/gopd/out"
	p, err = pd.NewPD(sim, chk.Verbose)
	if err != nil {
		tst.Errorf("NewPD failed:\n%v", err)
		return nil, nil
	}
	pw = &PngWriter{Dirout: p.Sim.DirOut, Fnkey: p.Sim.Key, Size: 200, Plane: "xy", Verbose: chk.Verbose}
	p.AddWriter(pw)
	if err = p.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return nil, nil
	}
	return
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. load results and node histories")

	p, _ := runChain(tst)
	if p == nil {
		return
	}

	res, err := Load(p.Sim.DirOut, p.Sim.Key, p.Sim.EncType)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	chk.Int(tst, "nsnaps", len(res.Snaps), 4)
	chk.Int(tst, "ntimes", len(res.Times()), 4)
	chk.Float64(tst, "tf", 1e-15, res.Times()[3], p.T)
	chk.Float64(tst, "max damage", 1e-15, res.MaxDamage(-1), 1)

	// aliases
	if err = res.Define("left", N{0}); err != nil {
		tst.Errorf("Define failed:\n%v", err)
		return
	}
	if err = res.Define("a b c d", AlongX{0.5, 0.5}); err != nil {
		tst.Errorf("Define failed:\n%v", err)
		return
	}
	if err = res.Define("tip", At{3.5, 0.5, 0.5}); err != nil {
		tst.Errorf("Define failed:\n%v", err)
		return
	}
	if err = res.Define("all", InBox{{-1, -1, -1}, {5, 2, 2}}); err != nil {
		tst.Errorf("Define failed:\n%v", err)
		return
	}
	if err = res.Define("none", At{9, 9, 9}); err == nil {
		tst.Errorf("Define must fail when no node is found")
		return
	}
	chk.Ints(tst, "d", res.Aliases["d"], []int{3})
	chk.Ints(tst, "tip", res.Aliases["tip"], []int{3})
	chk.Ints(tst, "all", res.Aliases["all"], []int{0, 1, 2, 3})

	// histories
	vx, err := res.GetRes("vx", "left", 0)
	if err != nil {
		tst.Errorf("GetRes failed:\n%v", err)
		return
	}
	for i, v := range vx {
		chk.Float64(tst, io.Sf("vx @ %d", i), 1e-15, v, 0.01)
	}
	ux, err := res.GetRes("ux", "left", 0)
	if err != nil {
		tst.Errorf("GetRes failed:\n%v", err)
		return
	}
	for i, u := range ux {
		chk.Float64(tst, io.Sf("ux @ %d", i), 1e-14, u, 0.01*res.Times()[i])
	}
	dmg, err := res.GetRes("damage", "d", 0)
	if err != nil {
		tst.Errorf("GetRes failed:\n%v", err)
		return
	}
	chk.Float64(tst, "damage of d", 1e-15, dmg[0], 1)
	if _, err = res.GetRes("sxx", "left", 0); err == nil {
		tst.Errorf("GetRes must fail with invalid key")
		return
	}
	if chk.Verbose {
		res.Report("all", "ux", "vx", "damage")
	}
}

func Test_png01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("png01. damage maps")

	p, pw := runChain(tst)
	if p == nil {
		return
	}

	// images of all outputs
	for tidx := range p.Summary.OutTimes {
		img, err := gg.LoadPNG(PngPath(pw.Dirout, pw.Fnkey, tidx))
		if err != nil {
			tst.Errorf("LoadPNG failed:\n%v", err)
			return
		}
		bounds := img.Bounds()
		chk.Int(tst, "width", bounds.Dx(), 200)
		chk.Int(tst, "height", bounds.Dy(), 100)
	}

	// colours
	r, g, b := DamageColour(0)
	chk.Float64(tst, "r(0)", 1e-15, r, 0)
	chk.Float64(tst, "b(0)", 1e-15, b, 1)
	r, g, b = DamageColour(1)
	chk.Float64(tst, "r(1)", 1e-15, r, 1)
	chk.Float64(tst, "g(1)", 1e-15, g, 0)
	_, g, _ = DamageColour(0.5)
	chk.Float64(tst, "g(½)", 1e-15, g, 1)

	// invalid plane
	pw.Plane = "xw"
	if err := pw.Write(p.T, 99, p.Domain, p.Bodies); err == nil {
		tst.Errorf("invalid plane must fail")
		return
	}
}
