// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, load, myfunction1, etc.
	Type string     `json:"type"` // type of function. ex: cte, rmp
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" and "none" are always available
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" {
		fcn = &dbf.Cte{C: 0}
		return
	}
	for _, f := range o {
		if f.Name == name {
			return newFunc(f)
		}
	}
	err = chk.Err("cannot find function named %q", name)
	return
}

// newFunc allocates a function; dbf.New panics on unknown types or invalid parameters
func newFunc(f *FuncData) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn, err = nil, chk.Err("cannot get function named %q because of the following error:\n%v", f.Name, r)
		}
	}()
	fcn = dbf.New(f.Type, f.Prms)
	if fcn == nil {
		err = chk.Err("cannot get function named %q: type %q is unknown", f.Name, f.Type)
	}
	return
}

// String prints one function
func (o FuncData) String() string {
	l := io.Sf("{\"name\":%q, \"type\":%q, \"prms\":[", o.Name, o.Type)
	for i, p := range o.Prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return l + "]}"
}
