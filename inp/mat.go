// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bbanerjee/Fracture-Effects-sub001/msolid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "pmb", "cmm", "elastic"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Solid msolid.Model // pointer to actual model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData `json:"functions"` // all functions
	Materials MatsData  `json:"materials"` // all materials

	// derived
	name2idx map[string]int
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	var tmp MatDb
	err = json.Unmarshal(b, &tmp)
	if err != nil {
		return
	}
	return NewMatDb(tmp.Functions, tmp.Materials)
}

// NewMatDb allocates and initialises all models
func NewMatDb(funcs FuncsData, mats MatsData) (mdb *MatDb, err error) {
	mdb = &MatDb{Functions: funcs, Materials: mats, name2idx: make(map[string]int)}
	if len(mats) == 0 {
		return nil, chk.Err("materials database is empty")
	}
	for i, m := range mats {
		if _, ok := mdb.name2idx[m.Name]; ok {
			return nil, chk.Err("material named %q is repeated", m.Name)
		}
		m.Solid, err = msolid.New(m.Model)
		if err != nil {
			return nil, err
		}
		err = m.Solid.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise material %q:\n%v", m.Name, err)
		}
		mdb.name2idx[m.Name] = i
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	if idx, ok := o.name2idx[name]; ok {
		return o.Materials[idx]
	}
	return nil
}

// Index returns the index of material in Materials or -1 if not found
func (o MatDb) Index(name string) int {
	if idx, ok := o.name2idx[name]; ok {
		return idx
	}
	return -1
}

// Models returns all models in the same order as Materials
func (o MatDb) Models() (models []msolid.Model) {
	models = make([]msolid.Model, len(o.Materials))
	for i, m := range o.Materials {
		models[i] = m.Solid
	}
	return
}
