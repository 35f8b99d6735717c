// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package monitor

import (
	"github.com/bbanerjee/Fracture-Effects-sub001/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// fakeSource returns a fixed status
type fakeSource struct {
	status pd.Status
}

func (o *fakeSource) Status() pd.Status { return o.status }
