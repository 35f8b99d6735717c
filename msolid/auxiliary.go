// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// Calc_K_from_Enu returns the bulk modulus K given Young's modulus E and Poisson's coefficient ν
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_c_from_K returns the micromodulus of the prototype microelastic brittle material in 3D
//  c = 18 K / (π δ⁴)
func Calc_c_from_K(K, δ float64) float64 {
	return 18.0 * K / (math.Pi * math.Pow(δ, 4))
}

// Calc_s0_from_G0 returns the critical stretch corresponding to the fracture energy G0
//  s0 = sqrt(5 G0 / (9 K δ))
func Calc_s0_from_G0(G0, K, δ float64) float64 {
	return math.Sqrt(5.0 * G0 / (9.0 * K * δ))
}
