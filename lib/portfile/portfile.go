// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package portfile recovers the receiver's listening port from its state
// file. The file is written by the receiver and its format is not ours to
// define; receivers have been observed to write either an ASCII decimal
// string (possibly newline or NUL terminated) or a bare big endian 16 bit
// integer. We tolerate both.
package portfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"strconv"
)

// ErrParse is returned when the file exists but no strategy can recover a
// port from its contents.
var ErrParse = errors.New("no parseable port in file")

// strategies are tried in order; the first one to produce a value wins.
// There is no merging or cross checking between them.
var strategies = []func([]byte) (int, bool){parseText, parseBinary}

// Read resolves the port from the file at the given path. A missing file
// is reported as the underlying os error (errors.Is(err, fs.ErrNotExist)).
func Read(path string) (int, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	port, err := Parse(bs)
	if err != nil {
		return 0, err
	}
	l.Debugf("resolved port %d from %s", port, path)
	return port, nil
}

// Parse extracts a port from raw file contents.
func Parse(bs []byte) (int, error) {
	for _, parse := range strategies {
		if port, ok := parse(bs); ok {
			return port, nil
		}
	}
	return 0, ErrParse
}

// parseText takes the first line, cut at the first NUL, and parses it as a
// decimal integer. There is deliberately no range check; the value is
// whatever the receiver wrote.
func parseText(bs []byte) (int, bool) {
	line, _, _ := bytes.Cut(bs, []byte{'\n'})
	line, _, _ = bytes.Cut(line, []byte{0})
	if len(line) == 0 {
		return 0, false
	}
	for _, c := range line {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	port, err := strconv.Atoi(string(line))
	if err != nil {
		// A digit string too long for an int.
		return 0, false
	}
	return port, true
}

// parseBinary takes the first two bytes as a big endian integer. Values
// below the registered port range floor are rejected; those are more
// likely the start of something else than a port.
func parseBinary(bs []byte) (int, bool) {
	if len(bs) < 2 {
		return 0, false
	}
	port := int(binary.BigEndian.Uint16(bs))
	if port < 1024 {
		return 0, false
	}
	return port, true
}
