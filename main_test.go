// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_main01(tst *testing.T) {

	chk.PrintTitle("main01. banner")

	b := banner()
	if !strings.Contains(b, "Gopd") {
		tst.Errorf("banner must name the program: %q", b)
		return
	}
	if strings.Contains(b, "Copyright") || strings.Contains(b, "Pedroso") {
		tst.Errorf("banner must not print third-party copyright lines: %q", b)
	}
}
