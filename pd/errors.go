// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import "github.com/cpmech/gosl/io"

// SetupError reports invalid configuration detected before the first time step
type SetupError struct {
	Reason string // what is wrong
}

// Error implements error
func (o *SetupError) Error() string {
	return "setup failed: " + o.Reason
}

// NumericalError reports corrupted state detected during time integration
type NumericalError struct {
	NodeId int    // id of offending node; -1 if not related to one node
	Step   int    // iteration number
	Field  string // "acceleration", "velocity" or "dt"
}

// Error implements error
func (o *NumericalError) Error() string {
	if o.NodeId < 0 {
		return io.Sf("invalid %s found during step %d", o.Field, o.Step)
	}
	return io.Sf("NaN %s found at node %d during step %d", o.Field, o.NodeId, o.Step)
}

// setupErr returns a new SetupError
func setupErr(msg string, prm ...interface{}) error {
	return &SetupError{Reason: io.Sf(msg, prm...)}
}
