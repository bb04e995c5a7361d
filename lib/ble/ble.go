// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ble assembles the manufacturer data record that announces the
// receiver, and wraps the platform Bluetooth stack that broadcasts it.
package ble

// Radio is as much of the platform radio stack as the announcement flow
// needs. An implementation moves from idle to powered on exactly once.
type Radio interface {
	// Ready returns a channel that is closed once the radio is powered
	// on and advertising may be started.
	Ready() <-chan struct{}

	// StartAdvertising begins broadcasting the given manufacturer data
	// record under the given display name, continuing until the process
	// exits. It must not be called before Ready.
	StartAdvertising(name string, manufacturerData []byte) error
}
