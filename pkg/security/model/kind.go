// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

// Package model holds the fixed-layout event records shared between the
// kernel probe plane and the user-space analysis plane.
package model

// Kind discriminates the payload that follows an EventHeader on the wire.
// The numeric values must match the hook_kind enum written by bpf/sentinel.bpf.c.
type Kind uint32

const (
	// KindUnknown is the zero value; never emitted deliberately. A buffer
	// with an unrecognized discriminator keeps its raw value as its Kind,
	// which String renders as "unknown".
	KindUnknown Kind = iota
	// KindMemfd is emitted by the memfd_create entry/exit probe pair.
	KindMemfd
	// KindExecve is emitted by the execveat entry probe.
	KindExecve
	// KindMmap is emitted by the mmap entry probe.
	KindMmap
	// KindSocketAlloc is emitted by the socket entry/exit probe pair.
	KindSocketAlloc
	// KindSocketConnect is emitted by the connect entry probe.
	KindSocketConnect
	// KindDup is emitted by the dup2/dup3 entry probes.
	KindDup
)

func (k Kind) String() string {
	switch k {
	case KindMemfd:
		return "memfd"
	case KindExecve:
		return "execve"
	case KindMmap:
		return "mmap"
	case KindSocketAlloc:
		return "socket_alloc"
	case KindSocketConnect:
		return "socket_connect"
	case KindDup:
		return "dup"
	default:
		return "unknown"
	}
}
