// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/gcfg.v1"
)

// ExampleCrackFile shows the format of crack files
const ExampleCrackFile = `# each crack is a parallelogram with corners
#   p0, p1, p0 + (p1 - p0) + (p2 - p0), p2
# bonds crossing any crack are broken before the first time step

[crack "notch"]
x0 = 0.0
y0 = 0.05
z0 = -0.01
x1 = 0.02
y1 = 0.05
z1 = -0.01
x2 = 0.0
y2 = 0.05
z2 = 0.01
`

// CrackConfig holds the corners of one crack as given in the crack file
type CrackConfig struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
	X2, Y2, Z2 float64
}

// crackFile is the layout of crack files
type crackFile struct {
	Crack map[string]*CrackConfig
}

// Crack holds an initial crack: the parallelogram p0 + s (p1 - p0) + t (p2 - p0); s,t ∈ [0,1]
type Crack struct {
	Name string     // name of crack
	P0   [3]float64 // origin
	P1   [3]float64 // end of first edge
	P2   [3]float64 // end of second edge
}

// CheckInit checks the crack geometry
func (o *CrackConfig) CheckInit(name string) (err error) {
	a := [3]float64{o.X1 - o.X0, o.Y1 - o.Y0, o.Z1 - o.Z0}
	b := [3]float64{o.X2 - o.X0, o.Y2 - o.Y0, o.Z2 - o.Z0}
	n := [3]float64{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
	area := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if area < Ztol*Ztol {
		return chk.Err("crack %q is degenerate: its edges are parallel or have zero length", name)
	}
	return
}

// ReadCracks reads cracks from a gcfg file
func ReadCracks(fname string) (cracks []*Crack, err error) {
	var cf crackFile
	if err = gcfg.ReadFileInto(&cf, fname); err != nil {
		return
	}
	return cf.cracks()
}

// ParseCracks parses cracks given in gcfg format
func ParseCracks(str string) (cracks []*Crack, err error) {
	var cf crackFile
	if err = gcfg.ReadStringInto(&cf, str); err != nil {
		return
	}
	return cf.cracks()
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// cracks converts the file sections into cracks sorted by name
func (o *crackFile) cracks() (cracks []*Crack, err error) {
	names := make([]string, 0, len(o.Crack))
	for name := range o.Crack {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := o.Crack[name]
		if err = c.CheckInit(name); err != nil {
			return nil, err
		}
		cracks = append(cracks, &Crack{
			Name: name,
			P0:   [3]float64{c.X0, c.Y0, c.Z0},
			P1:   [3]float64{c.X1, c.Y1, c.Z1},
			P2:   [3]float64{c.X2, c.Y2, c.Z2},
		})
	}
	return
}
