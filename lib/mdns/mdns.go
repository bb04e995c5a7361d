// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package mdns announces the receiver endpoint as a DNS-SD service, for
// devices that scan the network rather than the air.
package mdns

import (
	"fmt"
	stdsync "sync"

	"github.com/grandcat/zeroconf"
)

const (
	serviceType   = "_uxplay-mirror._tcp"
	serviceDomain = "local."
)

// Announcer registers the service on all interfaces and keeps the
// responder running until stopped. Registration only; we never browse.
type Announcer struct {
	mut    stdsync.Mutex
	server *zeroconf.Server
}

func NewAnnouncer() *Announcer {
	return &Announcer{}
}

func (a *Announcer) Announce(name, addr string, port int) error {
	server, err := zeroconf.Register(name, serviceType, serviceDomain, port, []string{"addr=" + addr}, nil)
	if err != nil {
		return fmt.Errorf("registering %s: %w", serviceType, err)
	}

	a.mut.Lock()
	a.server = server
	a.mut.Unlock()

	l.Infof("mDNS: advertising %s.%s%s on port %d", name, serviceType, serviceDomain, port)
	return nil
}

func (a *Announcer) Stop() {
	a.mut.Lock()
	defer a.mut.Unlock()
	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}
}
