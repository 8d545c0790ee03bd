// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package model

import (
	"fmt"
	"net/netip"

	"github.com/juriSacchetta/sentinel/pkg/security/utils"
)

// DescriptorKind tags which variant of Descriptor is populated. Descriptor
// is a tagged struct rather than an interface hierarchy: each variant keeps
// its own fields, and callers switch on Kind, per the "pattern-matching on
// the variant drives detector logic" design note.
type DescriptorKind int

const (
	// DescriptorUnknown is the zero value: the sensor has no opinion about the fd.
	DescriptorUnknown DescriptorKind = iota
	// DescriptorMemfd describes an anonymous memory file created by memfd_create.
	DescriptorMemfd
	// DescriptorSocket describes a network endpoint.
	DescriptorSocket
	// DescriptorFile is reserved: no detector currently populates it.
	DescriptorFile
)

// Descriptor is what a file descriptor is, from the sensor's point of view.
type Descriptor struct {
	Kind DescriptorKind

	// DescriptorMemfd
	Name string

	// DescriptorSocket
	Domain    uint32
	Type      uint32
	Protocol  uint32
	Remote    netip.AddrPort // zero value until a successful-looking connect is observed
	HasRemote bool

	// DescriptorFile
	Path string
}

// NewMemfdDescriptor builds a Descriptor for an anonymous memory file.
func NewMemfdDescriptor(name string) Descriptor {
	return Descriptor{Kind: DescriptorMemfd, Name: name}
}

// NewSocketDescriptor builds a Descriptor for a freshly allocated socket, with no remote yet.
func NewSocketDescriptor(domain, typ, protocol uint32) Descriptor {
	return Descriptor{Kind: DescriptorSocket, Domain: domain, Type: typ, Protocol: protocol}
}

// WithRemote returns a copy of the socket descriptor with its remote address set.
func (d Descriptor) WithRemote(addr netip.AddrPort) Descriptor {
	d.Remote = addr
	d.HasRemote = true
	return d
}

// RemoteString renders the remote address, or "Unknown" if none was resolved
// (either never connected, or an IPv6 connect that the sensor does not parse).
func (d Descriptor) RemoteString() string {
	if !d.HasRemote {
		return "Unknown"
	}
	return d.Remote.String()
}

// String renders a short label for the descriptor, used in alert and log
// output (spec.md §6: alerts carry a names[] field describing the fds
// involved). Only DescriptorSocket has domain/type detail worth rendering.
func (d Descriptor) String() string {
	switch d.Kind {
	case DescriptorSocket:
		return fmt.Sprintf("socket(%s,%s)", utils.SocketDomain(d.Domain), utils.SocketType(d.Type))
	case DescriptorMemfd:
		return fmt.Sprintf("memfd(%s)", d.Name)
	case DescriptorFile:
		return fmt.Sprintf("file(%s)", d.Path)
	default:
		return "unknown"
	}
}
