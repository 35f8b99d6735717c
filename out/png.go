// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"

	"github.com/bbanerjee/Fracture-Effects-sub001/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/spatial/r3"
)

// PngWriter draws damage maps of all bodies to png files
//  Nodes are drawn at their displaced positions projected onto Plane and coloured
//  from blue (intact) to red (fully damaged). Omitted nodes are grey
type PngWriter struct {
	Dirout  string  // output directory
	Fnkey   string  // filename key
	Size    int     // largest side of image in pixels
	Plane   string  // "xy", "xz" or "yz"
	Scale   float64 // displacement magnification; 0 => 1
	Verbose bool    // show messages
}

// Write implements pd.Writer
func (o *PngWriter) Write(t float64, tidx int, dom *pd.Domain, bodies []*pd.Body) (err error) {
	views := make([][]pd.NodeView, len(bodies))
	for i, body := range bodies {
		views[i] = body.Views()
	}
	return o.Draw(t, tidx, dom.Box, views)
}

// Draw draws nodes inside box and saves the image
func (o *PngWriter) Draw(t float64, tidx int, box r3.Box, bodies [][]pd.NodeView) (err error) {

	// projection
	a, b, err := planeAxes(o.Plane)
	if err != nil {
		return
	}
	lx := comp(box.Max, a) - comp(box.Min, a)
	ly := comp(box.Max, b) - comp(box.Min, b)
	if !(lx > 0) || !(ly > 0) {
		return chk.Err("box is degenerate on plane %q", o.Plane)
	}
	size := o.Size
	if size < 16 {
		size = 512
	}
	sf := float64(size) / math.Max(lx, ly)
	w, h := int(math.Round(lx*sf)), int(math.Round(ly*sf))
	w, h = max(w, 1), max(h, 1)
	scale := o.Scale
	if scale == 0 {
		scale = 1
	}

	// background and box
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, float64(w)-1, float64(h)-1)
	dc.Stroke()

	// nodes
	r := math.Max(1.5, 0.004*float64(size))
	for _, nodes := range bodies {
		for _, v := range nodes {
			x := r3.Add(v.X, r3.Scale(scale, v.U))
			px := (comp(x, a) - comp(box.Min, a)) * sf
			py := float64(h) - (comp(x, b)-comp(box.Min, b))*sf
			if v.Omit {
				dc.SetRGB(0.7, 0.7, 0.7)
			} else {
				dc.SetRGB(DamageColour(v.Damage))
			}
			dc.DrawCircle(px, py, r)
			dc.Fill()
		}
	}

	// label
	dc.SetRGB(0, 0, 0)
	dc.DrawString(io.Sf("t = %g", t), 4, 14)

	// save
	if err = os.MkdirAll(o.Dirout, 0777); err != nil {
		return chk.Err("cannot create output directory %q:\n%v", o.Dirout, err)
	}
	fn := PngPath(o.Dirout, o.Fnkey, tidx)
	if err = dc.SavePNG(fn); err != nil {
		return chk.Err("cannot save png file %q:\n%v", fn, err)
	}
	if o.Verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

// DamageColour returns the colour of damage d ∈ [0, 1]: blue → green → red
func DamageColour(d float64) (r, g, b float64) {
	d = math.Min(1, math.Max(0, d))
	if d < 0.5 {
		return 0, 2 * d, 1 - 2*d
	}
	return 2*d - 1, 2 - 2*d, 0
}

// PngPath returns the path of the damage map with output index tidx
func PngPath(dirout, fnkey string, tidx int) string {
	return filepath.Join(dirout, io.Sf("%s_dmg_%010d.png", fnkey, tidx))
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func planeAxes(plane string) (a, b int, err error) {
	switch plane {
	case "", "xy":
		return 0, 1, nil
	case "xz":
		return 0, 2, nil
	case "yz":
		return 1, 2, nil
	}
	return 0, 0, chk.Err("plane %q is invalid; options are xy, xz and yz", plane)
}

func comp(v r3.Vec, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}
