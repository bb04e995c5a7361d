// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package ble

import (
	"bytes"
	"errors"
	"testing"
)

func TestAssemble(t *testing.T) {
	bs, err := Assemble("192.168.1.42", 7000)
	if err != nil {
		t.Fatal(err)
	}

	exp := []byte{
		0x4c, 0x00, // company identifier, little endian
		0x09, 0x08, // record prefix
		0x13, 0x30, // magic marker
		192, 168, 1, 42, // address octets, network order
		0x1b, 0x58, // port 7000, big endian
	}
	if !bytes.Equal(bs, exp) {
		t.Errorf("Assemble => % x, expected % x", bs, exp)
	}
}

func TestAssembleSize(t *testing.T) {
	for _, tc := range []struct {
		addr string
		port int
	}{
		{"127.0.0.1", 0},
		{"10.0.0.1", 1024},
		{"255.255.255.255", 65535},
	} {
		bs, err := Assemble(tc.addr, tc.port)
		if err != nil {
			t.Fatalf("Assemble(%q, %d): %v", tc.addr, tc.port, err)
		}
		if len(bs) != PayloadSize {
			t.Errorf("Assemble(%q, %d) => %d bytes, expected %d", tc.addr, tc.port, len(bs), PayloadSize)
		}
	}
}

func TestAssembleInvalidAddress(t *testing.T) {
	for _, addr := range []string{
		"not-an-ip",
		"",
		"256.1.2.3",
		"192.168.1",
		"2001:db8::1", // no IPv6 here
	} {
		if _, err := Assemble(addr, 7000); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("Assemble(%q): expected ErrInvalidAddress, got %v", addr, err)
		}
	}
}

func TestAssembleInvalidPort(t *testing.T) {
	// The text parse strategy has no upper bound, so out of range values
	// can reach us. They must be a defined failure, not a truncation.
	for _, port := range []int{-1, 65536, 99999} {
		if _, err := Assemble("192.168.1.42", port); !errors.Is(err, ErrInvalidPort) {
			t.Errorf("Assemble(port %d): expected ErrInvalidPort, got %v", port, err)
		}
	}
}
