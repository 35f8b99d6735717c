// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"
)

// Summary records summary of outputs
type Summary struct {
	RunId    string    // identifier of run
	OutTimes []float64 // [nOutTimes] output times
	Dirout   string    // directory where results are stored
	Fnkey    string    // filename key of simulation
	Enc      string    // encoder type: "gob" or "json"
}

// NewSummary returns a new summary with a new run identifier
func NewSummary(dirout, fnkey, enc string) *Summary {
	return &Summary{RunId: uuid.NewString(), Dirout: dirout, Fnkey: fnkey, Enc: enc}
}

// Save saves summary to disc
func (o *Summary) Save(verbose bool) (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, o.Enc)
	if err = enc.Encode(o); err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	if err = os.MkdirAll(o.Dirout, 0777); err != nil {
		return chk.Err("cannot create output directory %q:\n%v", o.Dirout, err)
	}
	return save_file(out_sum_path(o.Dirout, o.Fnkey, o.Enc), &buf, verbose)
}

// ReadSummary reads summary back
func ReadSummary(dir, fnkey, enctype string) (o *Summary, err error) {
	fil, err := os.Open(out_sum_path(dir, fnkey, enctype))
	if err != nil {
		return
	}
	defer fil.Close()
	o = new(Summary)
	if err = GetDecoder(fil, enctype).Decode(o); err != nil {
		return nil, chk.Err("cannot decode summary:\n%v", err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sum_path(dir, fnkey, enctype string) string {
	return filepath.Join(dir, io.Sf("%s_sum.%s", fnkey, enctype))
}
