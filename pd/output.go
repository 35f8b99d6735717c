// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

// Writer receives the committed state after output steps
//  t    -- current time
//  tidx -- output index
type Writer interface {
	Write(t float64, tidx int, dom *Domain, bodies []*Body) error
}

// WriterFunc adapts a function to Writer
type WriterFunc func(t float64, tidx int, dom *Domain, bodies []*Body) error

// Write implements Writer
func (o WriterFunc) Write(t float64, tidx int, dom *Domain, bodies []*Body) error {
	return o(t, tidx, dom, bodies)
}
