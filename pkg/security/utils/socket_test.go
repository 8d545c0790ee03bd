// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddrPortFromNetworkOrder(t *testing.T) {
	// S4 (spec.md §8): 127.0.0.1:80 from ip=0x0100007F/port=0x5000 read
	// little-endian, which model.UnmarshalSocketConnectEvent captures as
	// 0x7F000001/0x0050 (big-endian read of the wire bytes).
	addr := AddrPortFromNetworkOrder(0x7F000001, 0x0050)
	assert.Equal(t, "127.0.0.1:80", addr.String())
}

func TestAddrPortFromNetworkOrderSingleConversion(t *testing.T) {
	// spec.md §8 property 9: a converted IP of 0x50000000 must render as
	// 80.0.0.0, not 0.0.0.80 (the double-swap bug the source exhibits).
	addr := AddrPortFromNetworkOrder(0x50000000, 0)
	assert.Equal(t, "80.0.0.0", addr.Addr().String())
}

func TestSocketDomainString(t *testing.T) {
	assert.Equal(t, "AF_INET", SocketDomain(2).String())
	assert.Equal(t, "AF_UNKNOWN", SocketDomain(9999).String())
}

func TestSocketTypeStringMasksFlags(t *testing.T) {
	const sockNonblock = 0x800
	assert.Equal(t, "SOCK_STREAM", SocketType(1|sockNonblock).String())
}
