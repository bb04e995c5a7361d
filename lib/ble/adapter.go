// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package ble

import (
	"context"
	"encoding/binary"
	"fmt"
	stdsync "sync"

	"tinygo.org/x/bluetooth"

	"github.com/uxplay/blebeacon/lib/svcutil"
)

// Adapter drives the default platform Bluetooth adapter. It implements
// suture.Service: Serve powers the adapter on, signals readiness and holds
// it until cancellation. There is no retry; if the radio cannot be enabled
// the whole process is done.
type Adapter struct {
	adapter *bluetooth.Adapter
	ready   chan struct{}

	mut stdsync.Mutex
	adv *bluetooth.Advertisement
}

func NewAdapter() *Adapter {
	return &Adapter{
		adapter: bluetooth.DefaultAdapter,
		ready:   make(chan struct{}),
	}
}

func (a *Adapter) Serve(ctx context.Context) error {
	if err := a.adapter.Enable(); err != nil {
		l.Warnln("enabling radio:", err)
		return svcutil.AsFatalErr(fmt.Errorf("enabling radio: %w", err), svcutil.ExitError)
	}
	l.Debugln("radio powered on")
	close(a.ready)

	<-ctx.Done()

	a.mut.Lock()
	if a.adv != nil {
		if err := a.adv.Stop(); err != nil {
			l.Debugln("stopping advertisement:", err)
		}
	}
	a.mut.Unlock()
	return ctx.Err()
}

func (a *Adapter) Ready() <-chan struct{} {
	return a.ready
}

func (a *Adapter) StartAdvertising(name string, manufacturerData []byte) error {
	if len(manufacturerData) < 2 {
		return fmt.Errorf("manufacturer data too short (%d bytes)", len(manufacturerData))
	}

	adv := a.adapter.DefaultAdvertisement()
	err := adv.Configure(bluetooth.AdvertisementOptions{
		LocalName: name,
		ManufacturerData: []bluetooth.ManufacturerDataElement{{
			// The stack wants the company identifier split out. It is
			// the little endian head of the assembled record.
			CompanyID: binary.LittleEndian.Uint16(manufacturerData[:2]),
			Data:      manufacturerData[2:],
		}},
	})
	if err != nil {
		return fmt.Errorf("configuring advertisement: %w", err)
	}
	if err := adv.Start(); err != nil {
		return fmt.Errorf("starting advertisement: %w", err)
	}

	a.mut.Lock()
	a.adv = adv
	a.mut.Unlock()
	l.Debugf("advertising %q, %d bytes manufacturer data", name, len(manufacturerData))
	return nil
}

func (a *Adapter) String() string {
	return "ble.Adapter"
}
