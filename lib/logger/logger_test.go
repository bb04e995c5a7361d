// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestFacilityDebugging(t *testing.T) {
	t.Setenv("UXTRACE", "")

	var buf bytes.Buffer
	l := newLogger(&buf)
	f := l.NewFacility("beacon", "The beacon")

	f.Debugln("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug line logged without debugging enabled")
	}

	l.SetDebug("beacon", true)
	f.Debugln("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("debug line not logged with debugging enabled")
	}

	l.SetDebug("beacon", false)
	f.Debugln("hidden again")
	if strings.Contains(buf.String(), "hidden again") {
		t.Error("debug line logged after debugging disabled")
	}
}

func TestTracedFacility(t *testing.T) {
	t.Setenv("UXTRACE", "beacon,other")

	var buf bytes.Buffer
	l := newLogger(&buf)
	f := l.NewFacility("beacon", "The beacon")

	if !l.ShouldDebug("beacon") {
		t.Error("UXTRACE should have enabled debugging")
	}
	if descr := l.Facilities()["beacon"]; descr != "The beacon" {
		t.Errorf("facility description %q", descr)
	}
	f.Debugln("traced")
	if !strings.Contains(buf.String(), "traced") {
		t.Error("debug line not logged for traced facility")
	}
}

func TestInfoAlwaysLogged(t *testing.T) {
	t.Setenv("UXTRACE", "")

	var buf bytes.Buffer
	l := newLogger(&buf)
	f := l.NewFacility("beacon", "The beacon")

	f.Infof("port is %d", 7000)
	if !strings.Contains(buf.String(), "INFO: port is 7000") {
		t.Errorf("info line missing, got %q", buf.String())
	}

	f.Warnln("radio gone")
	if !strings.Contains(buf.String(), "WARNING: radio gone") {
		t.Errorf("warning line missing, got %q", buf.String())
	}
}
