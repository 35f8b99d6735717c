// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bytes"

	"github.com/bbanerjee/Fracture-Effects-sub001/inp"
	"github.com/bbanerjee/Fracture-Effects-sub001/out"
	"github.com/bbanerjee/Fracture-Effects-sub001/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// converts snapshots to vtu point clouds and one pvd collection for paraview
func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	simfn, _ := io.ArgToFilename(0, "examples/plate_notch/plate", ".sim", true)
	alias := io.ArgToString(1, "")
	body := io.ArgToInt(2, 0)
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"simulation filename", "simfn", simfn,
		"alias of results", "alias", alias,
		"index of body", "body", body,
	))

	// results
	sim, err := inp.ReadSim(simfn, alias, false)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}
	res, err := out.Load(sim.DirOut, sim.Key, sim.EncType)
	if err != nil {
		chk.Panic("cannot load results:\n%v", err)
	}
	res.Body = body

	// one vtu per output time
	var pvd bytes.Buffer
	io.Ff(&pvd, "<?xml version=\"1.0\"?>\n<VTKFile type=\"Collection\" version=\"0.1\" byte_order=\"LittleEndian\">\n<Collection>\n")
	for tidx, t := range res.Times() {
		fn := io.Sf("%s_b%d_%06d.vtu", sim.Key, body, tidx)
		vtu_write(sim.DirOut, fn, res.Nodes(tidx))
		io.Ff(&pvd, "<DataSet timestep=\"%23.15e\" file=\"%s\" />\n", t, fn)
	}
	io.Ff(&pvd, "</Collection>\n</VTKFile>\n")
	io.WriteFileVD(sim.DirOut, io.Sf("%s_b%d.pvd", sim.Key, body), &pvd)
}

// vtu_write writes nodes as vertex cells
func vtu_write(dirout, fn string, nodes []pd.NodeView) {
	var hdr, geo, dat, foo bytes.Buffer
	nv := len(nodes)
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nv)

	// reference coordinates
	io.Ff(&geo, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, n := range nodes {
		io.Ff(&geo, "%23.15e %23.15e %23.15e ", n.X.X, n.X.Y, n.X.Z)
	}
	io.Ff(&geo, "\n</DataArray>\n</Points>\n")

	// one vertex cell per node
	io.Ff(&geo, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for i := range nodes {
		io.Ff(&geo, "%d ", i)
	}
	io.Ff(&geo, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	for i := range nodes {
		io.Ff(&geo, "%d ", i+1)
	}
	io.Ff(&geo, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for range nodes {
		io.Ff(&geo, "1 ")
	}
	io.Ff(&geo, "\n</DataArray>\n</Cells>\n")

	// point data
	io.Ff(&dat, "<PointData Scalars=\"TheScalars\">\n")
	io.Ff(&dat, "<DataArray type=\"Float64\" Name=\"u\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, n := range nodes {
		io.Ff(&dat, "%23.15e %23.15e %23.15e ", n.U.X, n.U.Y, n.U.Z)
	}
	io.Ff(&dat, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"v\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, n := range nodes {
		io.Ff(&dat, "%23.15e %23.15e %23.15e ", n.V.X, n.V.Y, n.V.Z)
	}
	io.Ff(&dat, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"damage\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, n := range nodes {
		io.Ff(&dat, "%g ", n.Damage)
	}
	io.Ff(&dat, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"nbonds\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, n := range nodes {
		io.Ff(&dat, "%d ", n.Nbonds)
	}
	io.Ff(&dat, "\n</DataArray>\n</PointData>\n")

	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD(dirout, fn, &hdr, &geo, &dat, &foo)
}
