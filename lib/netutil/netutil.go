// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package netutil figures out which IPv4 address other devices are most
// likely to reach this host at.
package netutil

import (
	"net"
	"net/netip"
	"os"
	"time"
)

const loopbackV4 = "127.0.0.1"

// Dialing a UDP socket sends nothing; it just makes the OS commit to an
// outbound interface, whose address we read back.
const (
	probeAddr    = "8.8.8.8:80"
	probeTimeout = 5 * time.Second
)

// Preferred ranges for hostname derived candidates, most preferred first.
// Bridge and USB sharing networks usually hand out 192.168.x.x, VPNs and
// enterprise networks the 10/8 and 172.16/12 ranges.
var preferredRanges = []netip.Prefix{
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("172.16.0.0/12"),
}

// SelectIPv4 returns the best IPv4 address to hand out to other devices.
// It never fails; with no usable interfaces at all it returns the loopback
// address. Probe errors are swallowed, this is best effort by design of
// the ad-hoc setups it runs in.
func SelectIPv4() string {
	if addr, ok := outboundIP(); ok {
		return addr
	}
	if addr, ok := hostnameIP(); ok {
		return addr
	}
	return loopbackV4
}

// outboundIP reads the local address of a routed but unconnected UDP
// socket. Works whenever there is a default route, typically when the
// internet is reachable.
func outboundIP() (string, bool) {
	conn, err := net.DialTimeout("udp", probeAddr, probeTimeout)
	if err != nil {
		l.Debugln("outbound route probe:", err)
		return "", false
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", false
	}
	ip := addr.IP.To4()
	if ip == nil || ip.IsLoopback() {
		return "", false
	}
	l.Debugln("outbound route probe selected", ip)
	return ip.String(), true
}

// hostnameIP resolves our own hostname and picks the most useful of the
// assigned IPv4 addresses. Covers LAN-only and USB tethered hosts where
// the outbound probe has nothing to route towards.
func hostnameIP() (string, bool) {
	host, err := os.Hostname()
	if err != nil {
		l.Debugln("hostname:", err)
		return "", false
	}
	ips, err := net.LookupIP(host)
	if err != nil {
		l.Debugf("resolving %s: %v", host, err)
		return "", false
	}

	var addrs []netip.Addr
	for _, ip := range ips {
		if ip4 := ip.To4(); ip4 != nil {
			if addr, ok := netip.AddrFromSlice(ip4); ok {
				addrs = append(addrs, addr)
			}
		}
	}
	l.Debugln("hostname candidates:", addrs)

	if addr, ok := preferAddr(addrs); ok {
		return addr.String(), true
	}
	return "", false
}

// preferAddr picks the candidate in the most preferred range, or failing
// that the first one that is not loopback.
func preferAddr(addrs []netip.Addr) (netip.Addr, bool) {
	for _, pfx := range preferredRanges {
		for _, addr := range addrs {
			if pfx.Contains(addr) {
				return addr, true
			}
		}
	}
	for _, addr := range addrs {
		if !addr.IsLoopback() {
			return addr, true
		}
	}
	return netip.Addr{}, false
}
