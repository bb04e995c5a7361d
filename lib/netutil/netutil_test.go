// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package netutil

import (
	"net"
	"net/netip"
	"testing"
)

func TestPreferAddr(t *testing.T) {
	cases := []struct {
		name  string
		addrs []string
		want  string
		ok    bool
	}{
		// 192.168/16 beats 10/8 regardless of candidate order.
		{"homeBeatsEnterprise", []string{"10.1.2.3", "192.168.1.2"}, "192.168.1.2", true},
		{"homeBeatsEnterpriseReversed", []string{"192.168.1.2", "10.1.2.3"}, "192.168.1.2", true},
		{"enterpriseBeatsDocker", []string{"172.17.0.2", "10.1.2.3"}, "10.1.2.3", true},
		{"dockerRange", []string{"172.17.0.2"}, "172.17.0.2", true},
		// 172.32.x is outside 172.16/12, so it only qualifies as a
		// generic non-loopback candidate.
		{"outsidePrivateRanges", []string{"172.32.0.1", "203.0.113.9"}, "172.32.0.1", true},
		{"publicOnly", []string{"203.0.113.9"}, "203.0.113.9", true},
		{"skipsLoopback", []string{"127.0.0.1", "203.0.113.9"}, "203.0.113.9", true},
		{"loopbackOnly", []string{"127.0.0.1"}, "", false},
		{"empty", nil, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var addrs []netip.Addr
			for _, s := range tc.addrs {
				addrs = append(addrs, netip.MustParseAddr(s))
			}
			addr, ok := preferAddr(addrs)
			if ok != tc.ok {
				t.Fatalf("preferAddr(%v) ok=%v, expected %v", tc.addrs, ok, tc.ok)
			}
			if ok && addr.String() != tc.want {
				t.Errorf("preferAddr(%v) => %v, expected %v", tc.addrs, addr, tc.want)
			}
		})
	}
}

func TestSelectIPv4IsTotal(t *testing.T) {
	// Whatever the environment looks like, we must get a well formed
	// IPv4 address; at worst the loopback.
	addr := SelectIPv4()
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		t.Fatalf("SelectIPv4 returned %q, not an IPv4 address", addr)
	}
}
