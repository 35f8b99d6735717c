// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

// StepState indicates the phase of a time step
type StepState int

// phases of one time step, in order
const (
	PreForce StepState = iota
	Stage1Integrated
	BcApplied
	PostForce
	Stage2Integrated
	StepCommitted
)

var stepStateNames = []string{"PreForce", "Stage1Integrated", "BcApplied", "PostForce", "Stage2Integrated", "StepCommitted"}

// String returns the name of the phase
func (o StepState) String() string {
	if o < 0 || int(o) >= len(stepStateNames) {
		return "Unknown"
	}
	return stepStateNames[o]
}

// MarshalText implements encoding.TextMarshaler
func (o StepState) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Status holds a summary of the state of a running simulation
type Status struct {
	RunId   string    `json:"runid"`   // run identifier
	Key     string    `json:"key"`     // simulation key
	Time    float64   `json:"time"`    // current time
	Dt      float64   `json:"dt"`      // time step for the next iteration
	Iter    int       `json:"iter"`    // number of completed iterations
	State   StepState `json:"state"`   // phase of the current step
	Nnodes  int       `json:"nnodes"`  // number of nodes
	Nbonds  int       `json:"nbonds"`  // number of links
	Nbroken int       `json:"nbroken"` // number of broken links
	Running bool      `json:"running"` // time loop is running
	Error   string    `json:"error"`   // error that stopped the run, if any
}
