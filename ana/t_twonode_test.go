// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_twonode01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twonode01. frequency and elongation")

	var sol TwoNode
	err := sol.Init(dbf.Params{
		&dbf.P{N: "c", V: 2},
		&dbf.P{N: "V", V: 1},
		&dbf.P{N: "L", V: 1},
		&dbf.P{N: "rho", V: 1},
		&dbf.P{N: "v0", V: 0.01},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	io.Pforan("ω = %v  T = %v\n", sol.Omega(), sol.Period())

	chk.Float64(tst, "ω", 1e-15, sol.Omega(), 2)
	chk.Float64(tst, "T", 1e-15, sol.Period(), math.Pi)
	chk.Float64(tst, "w(0)", 1e-15, sol.Elongation(0), 0)
	chk.Float64(tst, "w(T/4)", 1e-15, sol.Elongation(sol.Period()/4), 0.01)
	chk.Float64(tst, "v(0)", 1e-15, sol.Speed(0), 0.01)
	chk.Float64(tst, "f(T/4)", 1e-15, sol.Force(sol.Period()/4), -0.02)

	// energy: 2 (½ ρ V v²) + ½ (c V²/L) w²
	for _, t := range []float64{0, 0.3, 1.1, 2.7} {
		v, w := sol.Speed(t), sol.Elongation(t)
		E := v*v + 0.5*2*w*w
		chk.Float64(tst, io.Sf("E(%g)", t), 1e-15, E, 1e-4)
	}
}

func Test_twonode02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twonode02. invalid parameters")

	var sol TwoNode
	if err := sol.Init(dbf.Params{&dbf.P{N: "k", V: 1}}); err == nil {
		tst.Errorf("unknown parameter must fail")
		return
	}
	if err := sol.Init(dbf.Params{&dbf.P{N: "L", V: 0}}); err == nil {
		tst.Errorf("zero length must fail")
		return
	}
}
