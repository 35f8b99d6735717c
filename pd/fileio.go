// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Snapshot holds the state of all bodies at one output time
type Snapshot struct {
	T      float64      // time
	Tidx   int          // output index
	Bodies [][]NodeView // [nbodies][nnodes] node data
}

// NewSnapshot collects the state of all bodies
func NewSnapshot(t float64, tidx int, bodies []*Body) (o *Snapshot) {
	o = &Snapshot{T: t, Tidx: tidx, Bodies: make([][]NodeView, len(bodies))}
	for i, body := range bodies {
		o.Bodies[i] = body.Views()
	}
	return
}

// FileWriter saves snapshots to files
type FileWriter struct {
	Dirout  string // output directory
	Fnkey   string // filename key
	Enc     string // encoder type
	Verbose bool   // show messages
}

// Write implements Writer
func (o *FileWriter) Write(t float64, tidx int, dom *Domain, bodies []*Body) (err error) {
	var buf bytes.Buffer
	if err = GetEncoder(&buf, o.Enc).Encode(NewSnapshot(t, tidx, bodies)); err != nil {
		return chk.Err("cannot encode snapshot %d:\n%v", tidx, err)
	}
	if err = os.MkdirAll(o.Dirout, 0777); err != nil {
		return chk.Err("cannot create output directory %q:\n%v", o.Dirout, err)
	}
	return save_file(out_snap_path(o.Dirout, o.Fnkey, o.Enc, tidx), &buf, o.Verbose)
}

// ReadSnapshot reads the snapshot with output index tidx
func ReadSnapshot(dir, fnkey, enctype string, tidx int) (o *Snapshot, err error) {
	fil, err := os.Open(out_snap_path(dir, fnkey, enctype, tidx))
	if err != nil {
		return
	}
	defer fil.Close()
	o = new(Snapshot)
	if err = GetDecoder(fil, enctype).Decode(o); err != nil {
		return nil, chk.Err("cannot decode snapshot %d:\n%v", tidx, err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_snap_path(dir, fnkey, enctype string, tidx int) string {
	return filepath.Join(dir, io.Sf("%s_nod_%010d.%s", fnkey, tidx, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
