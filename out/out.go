// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements peridynamics output handling for analyses and plotting
package out

import (
	"strings"

	"github.com/bbanerjee/Fracture-Effects-sub001/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y-z coordinates
)

// Results holds all snapshots of a simulation and the nodes selected for analyses
type Results struct {
	Sum     *pd.Summary      // summary
	Snaps   []*pd.Snapshot   // [nOutTimes] all snapshots
	Body    int              // index of body being analysed
	Aliases map[string][]int // alias => node indices in body
}

// Load reads the summary and all snapshots of a simulation
func Load(dir, fnkey, enctype string) (o *Results, err error) {
	o = &Results{Aliases: make(map[string][]int)}
	o.Sum, err = pd.ReadSummary(dir, fnkey, enctype)
	if err != nil {
		return nil, chk.Err("cannot read summary:\n%v", err)
	}
	o.Snaps = make([]*pd.Snapshot, len(o.Sum.OutTimes))
	for tidx := range o.Sum.OutTimes {
		o.Snaps[tidx], err = pd.ReadSnapshot(dir, fnkey, enctype, tidx)
		if err != nil {
			return nil, chk.Err("cannot read snapshot %d:\n%v", tidx, err)
		}
	}
	return
}

// Times returns all output times
func (o *Results) Times() []float64 {
	return o.Sum.OutTimes
}

// Nodes returns the nodes of the body being analysed at output index tidx
//  tidx < 0 means the last output
func (o *Results) Nodes(tidx int) []pd.NodeView {
	if len(o.Snaps) == 0 {
		return nil
	}
	if tidx < 0 {
		tidx = len(o.Snaps) - 1
	}
	return o.Snaps[tidx].Bodies[o.Body]
}

// Define defines aliases to nodes found by loc in the initial snapshot
//  alias -- an alias to a group of nodes or to individual nodes; e.g. "A" or "a b c".
//           If the number of nodes found equals the number of words, each word gets one node
func (o *Results) Define(alias string, loc Locator) (err error) {
	if len(alias) < 1 {
		return chk.Err("alias must have at least one character. %q is invalid", alias)
	}
	ids := loc.Locate(o.Nodes(0))
	if len(ids) < 1 {
		return chk.Err("cannot find nodes with alias=%q and locator=%v", alias, loc)
	}
	lbls := strings.Fields(alias)
	if len(lbls) == len(ids) && len(lbls) > 1 {
		for i, l := range lbls {
			o.Aliases[l] = []int{ids[i]}
		}
		return
	}
	o.Aliases[alias] = ids
	return
}

// GetRes returns the time history of one quantity at the idx-th node defined by alias
//  key -- "ux", "uy", "uz", "vx", "vy", "vz", "damage" or "nbonds"
func (o *Results) GetRes(key, alias string, idx int) (res []float64, err error) {
	ids, ok := o.Aliases[alias]
	if !ok {
		return nil, chk.Err("cannot find alias %q", alias)
	}
	if idx < 0 || idx >= len(ids) {
		return nil, chk.Err("index %d of alias %q is out of range", idx, alias)
	}
	res = make([]float64, len(o.Snaps))
	for tidx := range o.Snaps {
		res[tidx], err = Value(key, o.Snaps[tidx].Bodies[o.Body][ids[idx]])
		if err != nil {
			return nil, err
		}
	}
	return
}

// Value returns one quantity of node
func Value(key string, v pd.NodeView) (float64, error) {
	switch key {
	case "ux":
		return v.U.X, nil
	case "uy":
		return v.U.Y, nil
	case "uz":
		return v.U.Z, nil
	case "vx":
		return v.V.X, nil
	case "vy":
		return v.V.Y, nil
	case "vz":
		return v.V.Z, nil
	case "damage":
		return v.Damage, nil
	case "nbonds":
		return float64(v.Nbonds), nil
	}
	return 0, chk.Err("key %q is invalid", key)
}

// MaxDamage returns the largest damage in the body being analysed at output index tidx
func (o *Results) MaxDamage(tidx int) (dmax float64) {
	for _, v := range o.Nodes(tidx) {
		if v.Damage > dmax {
			dmax = v.Damage
		}
	}
	return
}

// Report prints a table with the history of nodes defined by alias
func (o *Results) Report(alias string, keys ...string) (err error) {
	ids, ok := o.Aliases[alias]
	if !ok {
		return chk.Err("cannot find alias %q", alias)
	}
	l := io.Sf("%13s%8s", "t", "node")
	for _, key := range keys {
		l += io.Sf("%14s", key)
	}
	io.Pf("%s\n", l)
	for tidx, snap := range o.Snaps {
		for _, id := range ids {
			v := snap.Bodies[o.Body][id]
			l = io.Sf("%13.6e%8d", o.Sum.OutTimes[tidx], v.Id)
			for _, key := range keys {
				val, e := Value(key, v)
				if e != nil {
					return e
				}
				l += io.Sf("%14.6e", val)
			}
			io.Pf("%s\n", l)
		}
	}
	return
}
