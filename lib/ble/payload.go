// Copyright (C) 2026 The UxBeacon Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package ble

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
)

const (
	// companyID is Apple's assigned identifier, which scanners looking
	// for the receiver filter on. On the air, and in the assembled
	// record, it occupies the leading two bytes little endian.
	companyID = 0x004c

	// typePrefix and magic mark the record as a mirroring receiver
	// announcement.
	typePrefix = 0x0908
	magic      = 0x1330

	// PayloadSize is the fixed length of an assembled record.
	PayloadSize = 12
)

var (
	ErrInvalidAddress = errors.New("not an IPv4 address")
	ErrInvalidPort    = errors.New("port out of range")
)

// Assemble packs the manufacturer data record: company identifier, record
// prefix, magic marker, the four address octets in network order, and the
// port big endian. It is pure; no lookups happen here.
func Assemble(addr string, port int) ([]byte, error) {
	ip := net.ParseIP(addr).To4()
	if ip == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	bs := make([]byte, 0, PayloadSize)
	bs = binary.LittleEndian.AppendUint16(bs, companyID)
	bs = binary.BigEndian.AppendUint16(bs, typePrefix)
	bs = binary.BigEndian.AppendUint16(bs, magic)
	bs = append(bs, ip...)
	bs = binary.BigEndian.AppendUint16(bs, uint16(port))
	return bs, nil
}
