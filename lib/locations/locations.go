// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package locations knows where the receiver keeps its state on disk.
package locations

import (
	"os"
	"path/filepath"
	"strings"
)

// portFileName is the file the receiver writes its listening port to,
// relative to the user's home directory.
const portFileName = ".uxplay.ble"

// PortFile returns the default path of the receiver port file.
func PortFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, portFileName), nil
}

// ExpandTilde replaces a leading ~ with the current user's home directory.
// Anything else is returned unchanged.
func ExpandTilde(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
