// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/bbanerjee/Fracture-Effects-sub001/monitor"
	"github.com/bbanerjee/Fracture-Effects-sub001/out"
	"github.com/bbanerjee/Fracture-Effects-sub001/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/joho/godotenv"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// environment: GOPD_DIROUT and GOPD_MONITOR may be given in .env
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		chk.Panic("cannot load .env file:\n%v", err)
	}

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	alias := io.ArgToString(3, "")
	addr := io.ArgToString(4, os.Getenv("GOPD_MONITOR"))

	// message
	if verbose {
		io.Pf("%s", banner())

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"word to add to results", "alias", alias,
			"monitor address; empty => none", "addr", addr,
		))
	}

	// simulation data
	analysis, err := pd.ReadPD(fnamepath, alias, erasePrev, verbose)
	if err != nil {
		chk.Panic("cannot set simulation up:\n%v", err)
	}

	// damage maps
	o := analysis.Sim.Output
	if o.Png {
		analysis.AddWriter(&out.PngWriter{
			Dirout:  analysis.Sim.DirOut,
			Fnkey:   analysis.Sim.Key,
			Size:    o.PngSize,
			Plane:   o.PngPlane,
			Verbose: verbose,
		})
	}

	// monitor
	if addr != "" {
		srv := monitor.Start(addr, analysis, verbose)
		defer srv.Stop(5 * time.Second)
		analysis.AddWriter(srv.Hub)
	}

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}

// banner returns the startup message
func banner() string {
	return "\nGopd -- Go bond-based peridynamics\n" +
		"explicit velocity-Verlet dynamics with bond breaking\n"
}
