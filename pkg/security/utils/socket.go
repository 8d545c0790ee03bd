// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package utils

import (
	"net/netip"

	"golang.org/x/sys/unix"
)

// SocketDomain stringifies a socket(2) domain argument (AF_*).
type SocketDomain uint32

// String renders the domain as a short, human-readable label.
func (d SocketDomain) String() string {
	switch int(d) {
	case unix.AF_INET:
		return "AF_INET"
	case unix.AF_INET6:
		return "AF_INET6"
	case unix.AF_UNIX:
		return "AF_UNIX"
	case unix.AF_NETLINK:
		return "AF_NETLINK"
	case unix.AF_PACKET:
		return "AF_PACKET"
	default:
		return "AF_UNKNOWN"
	}
}

// SocketType stringifies a socket(2) type argument (SOCK_*), masking out
// the SOCK_NONBLOCK/SOCK_CLOEXEC flag bits the kernel allows to be OR'd in.
type SocketType uint32

// String renders the base socket type, ignoring SOCK_NONBLOCK/SOCK_CLOEXEC.
func (t SocketType) String() string {
	switch int(t) & 0xF {
	case unix.SOCK_STREAM:
		return "SOCK_STREAM"
	case unix.SOCK_DGRAM:
		return "SOCK_DGRAM"
	case unix.SOCK_RAW:
		return "SOCK_RAW"
	case unix.SOCK_SEQPACKET:
		return "SOCK_SEQPACKET"
	default:
		return "SOCK_UNKNOWN"
	}
}

// IsAFInet reports whether domain is AF_INET (IPv4). Non-goal: IPv6 address
// parsing for connect events (spec.md §1) — callers use this to decide
// whether a SocketConnectEvent's address fields are resolvable at all.
func IsAFInet(domain uint32) bool {
	return int32(domain) == unix.AF_INET
}

// AddrPortFromNetworkOrder builds a netip.AddrPort from an IPv4 address and
// port that arrived in network byte order, as SocketConnectEvent carries
// them. It converts exactly once: network-order bytes, read big-endian,
// are already the bytes a dotted-quad address prints left to right.
func AddrPortFromNetworkOrder(ipv4BE uint32, portBE uint16) netip.AddrPort {
	addr := netip.AddrFrom4([4]byte{
		byte(ipv4BE >> 24),
		byte(ipv4BE >> 16),
		byte(ipv4BE >> 8),
		byte(ipv4BE),
	})
	return netip.AddrPortFrom(addr, portBE)
}
