// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Command uxbeacon broadcasts the local UxPlay receiver's address and
// port as a Bluetooth LE advertisement, so nearby mirroring capable
// devices can discover it without manual configuration.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/thejerf/suture/v4"

	"github.com/uxplay/blebeacon/lib/announce"
	"github.com/uxplay/blebeacon/lib/ble"
	"github.com/uxplay/blebeacon/lib/locations"
	"github.com/uxplay/blebeacon/lib/logger"
	"github.com/uxplay/blebeacon/lib/mdns"
	"github.com/uxplay/blebeacon/lib/svcutil"
)

var (
	Version    = "unknown-dev"
	BuildStamp = "0"
	BuildUser  = "unknown"
	BuildHost  = "unknown"

	BuildDate   time.Time
	LongVersion string
)

func init() {
	stamp, _ := strconv.Atoi(BuildStamp)
	BuildDate = time.Unix(int64(stamp), 0)

	date := BuildDate.UTC().Format("2006-01-02 15:04:05 MST")
	LongVersion = fmt.Sprintf("uxbeacon %s (%s %s-%s) %s@%s %s", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH, BuildUser, BuildHost, date)
}

var l = logger.DefaultLogger.NewFacility("main", "Startup and supervision")

type cli struct {
	PortFile string `help:"Path to the receiver port file (default ~/.uxplay.ble)" env:"UXPLAY_BLE_FILE"`
	Name     string `help:"Advertised display name" default:"UxPlay" env:"UXPLAY_BLE_NAME"`
	MDNS     bool   `name:"mdns" help:"Also announce the endpoint over mDNS"`
	Version  bool   `help:"Print version and exit"`
}

func main() {
	var params cli
	kong.Parse(&params)

	if params.Version {
		fmt.Println(LongVersion)
		return
	}

	var path string
	var err error
	if params.PortFile == "" {
		path, err = locations.PortFile()
	} else {
		path, err = locations.ExpandTilde(params.PortFile)
	}
	if err != nil {
		l.Warnln("resolving port file path:", err)
		os.Exit(svcutil.ExitError.AsInt())
	}

	l.Infoln(LongVersion)

	radio := ble.NewAdapter()
	svc := announce.New(radio, params.Name, path)
	if params.MDNS {
		svc.AddAnnouncer(mdns.NewAnnouncer())
	}

	sup := suture.New("main", svcutil.SpecWithDebugLogger(l))
	sup.Add(radio)
	sup.Add(svc)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = <-sup.ServeBackground(ctx)
	if errors.Is(err, context.Canceled) {
		// Interrupted; advertising stops with us.
		l.Infoln("Exiting")
		return
	}

	var ferr *svcutil.FatalErr
	if errors.As(err, &ferr) {
		os.Exit(ferr.Status.AsInt())
	}
	if err != nil {
		l.Warnln("exiting:", err)
		os.Exit(svcutil.ExitError.AsInt())
	}
}
