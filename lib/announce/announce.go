// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package announce implements the one shot announcement flow: once the
// radio reports ready, resolve the receiver port, pick an address,
// assemble the record and start advertising.
package announce

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/uxplay/blebeacon/lib/ble"
	"github.com/uxplay/blebeacon/lib/netutil"
	"github.com/uxplay/blebeacon/lib/portfile"
	"github.com/uxplay/blebeacon/lib/svcutil"
)

// An Announcer is a secondary, best effort announcement channel, fed the
// same name and endpoint as the radio advertisement.
type Announcer interface {
	Announce(name, addr string, port int) error
	Stop()
}

type Service struct {
	radio    ble.Radio
	name     string
	portFile string
	extra    []Announcer
}

func New(radio ble.Radio, name, portFile string) *Service {
	return &Service{
		radio:    radio,
		name:     name,
		portFile: portFile,
	}
}

// AddAnnouncer registers a secondary announcement channel. Must be called
// before the service is started.
func (s *Service) AddAnnouncer(a Announcer) {
	s.extra = append(s.extra, a)
}

// Serve blocks until the radio is ready, then resolves, assembles and
// publishes, once. A failure to come up with a complete announcement is
// fatal to the process before anything is broadcast; the port file is
// static per receiver launch, so there is nothing to retry.
func (s *Service) Serve(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.radio.Ready():
	}

	port, err := portfile.Read(s.portFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Warnf("%s not found; run UxPlay first", s.portFile)
		} else {
			l.Warnln("resolving receiver port:", err)
		}
		return svcutil.AsFatalErr(err, svcutil.ExitError)
	}

	addr := netutil.SelectIPv4()

	payload, err := ble.Assemble(addr, port)
	if err != nil {
		l.Warnln("assembling announcement:", err)
		return svcutil.AsFatalErr(err, svcutil.ExitError)
	}

	if err := s.radio.StartAdvertising(s.name, payload); err != nil {
		l.Warnln("starting advertisement:", err)
		return svcutil.AsFatalErr(err, svcutil.ExitError)
	}

	l.Infof("Broadcasting: %s @ %s:%d", s.name, addr, port)

	for _, a := range s.extra {
		// Secondary channels never take the beacon down.
		if err := a.Announce(s.name, addr, port); err != nil {
			l.Warnln("secondary announcement:", err)
		}
	}

	<-ctx.Done()
	for _, a := range s.extra {
		a.Stop()
	}
	return ctx.Err()
}

func (s *Service) String() string {
	return fmt.Sprintf("announce.Service(%s)", s.name)
}
