// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package model

import "encoding/binary"

// MemfdFilenameSize is the size of the NUL-terminated filename buffer the
// memfd_create entry probe captures. 64 bytes is generous for the short
// names malware typically passes to memfd_create.
const MemfdFilenameSize = 64

// MemfdEvent is emitted once memfd_create returns a non-negative fd, pairing
// the fd with the filename captured at entry.
type MemfdEvent struct {
	Header   EventHeader
	Filename [MemfdFilenameSize]byte
	Fd       uint32
}

// MemfdPayloadSize is the wire size of a MemfdEvent payload, excluding the header.
const MemfdPayloadSize = MemfdFilenameSize + 4

// UnmarshalMemfdEvent decodes a MemfdEvent whose header has already been
// validated by the caller.
func UnmarshalMemfdEvent(h EventHeader, buf []byte) (MemfdEvent, error) {
	body := buf[HeaderSize:]
	if len(body) < MemfdPayloadSize {
		return MemfdEvent{}, ErrShortBuffer
	}
	var e MemfdEvent
	e.Header = h
	copy(e.Filename[:], body[:MemfdFilenameSize])
	e.Fd = binary.LittleEndian.Uint32(body[MemfdFilenameSize : MemfdFilenameSize+4])
	return e, nil
}

// Name truncates the filename buffer at its first NUL byte, discarding any
// trailing padding, per the fileless detector's normalization rule.
func (e MemfdEvent) Name() string {
	for i, b := range e.Filename {
		if b == 0 {
			return string(e.Filename[:i])
		}
	}
	return string(e.Filename[:])
}

// ExecveEvent is emitted by the execveat entry probe.
type ExecveEvent struct {
	Header EventHeader
	Fd     uint32
	Flags  uint32
}

// ExecvePayloadSize is the wire size of an ExecveEvent payload, excluding the header.
const ExecvePayloadSize = 8

// UnmarshalExecveEvent decodes an ExecveEvent.
func UnmarshalExecveEvent(h EventHeader, buf []byte) (ExecveEvent, error) {
	body := buf[HeaderSize:]
	if len(body) < ExecvePayloadSize {
		return ExecveEvent{}, ErrShortBuffer
	}
	return ExecveEvent{
		Header: h,
		Fd:     binary.LittleEndian.Uint32(body[0:4]),
		Flags:  binary.LittleEndian.Uint32(body[4:8]),
	}, nil
}

// Protection bits tested against MmapEvent.Prot, mirroring PROT_WRITE/PROT_EXEC.
const (
	ProtWrite = 0x2
	ProtExec  = 0x4
)

// MmapEvent is emitted by the mmap entry probe.
type MmapEvent struct {
	Header EventHeader
	Fd     uint32
	Prot   uint32
	Flags  uint32
}

// MmapPayloadSize is the wire size of a MmapEvent payload, excluding the header.
const MmapPayloadSize = 12

// UnmarshalMmapEvent decodes a MmapEvent.
func UnmarshalMmapEvent(h EventHeader, buf []byte) (MmapEvent, error) {
	body := buf[HeaderSize:]
	if len(body) < MmapPayloadSize {
		return MmapEvent{}, ErrShortBuffer
	}
	return MmapEvent{
		Header: h,
		Fd:     binary.LittleEndian.Uint32(body[0:4]),
		Prot:   binary.LittleEndian.Uint32(body[4:8]),
		Flags:  binary.LittleEndian.Uint32(body[8:12]),
	}, nil
}

// IsWriteExec reports whether Prot carries both PROT_WRITE and PROT_EXEC,
// the W^X combination the reflective-loader detector alerts on.
func (e MmapEvent) IsWriteExec() bool {
	return e.Prot&(ProtWrite|ProtExec) == (ProtWrite | ProtExec)
}

// SocketAllocEvent is emitted once socket() returns a non-negative fd.
type SocketAllocEvent struct {
	Header   EventHeader
	Fd       uint32
	Domain   uint32
	Type     uint32
	Protocol uint32
}

// SocketAllocPayloadSize is the wire size of a SocketAllocEvent payload, excluding the header.
const SocketAllocPayloadSize = 16

// UnmarshalSocketAllocEvent decodes a SocketAllocEvent.
func UnmarshalSocketAllocEvent(h EventHeader, buf []byte) (SocketAllocEvent, error) {
	body := buf[HeaderSize:]
	if len(body) < SocketAllocPayloadSize {
		return SocketAllocEvent{}, ErrShortBuffer
	}
	return SocketAllocEvent{
		Header:   h,
		Fd:       binary.LittleEndian.Uint32(body[0:4]),
		Domain:   binary.LittleEndian.Uint32(body[4:8]),
		Type:     binary.LittleEndian.Uint32(body[8:12]),
		Protocol: binary.LittleEndian.Uint32(body[12:16]),
	}, nil
}

// SocketConnectEvent is emitted by the connect entry probe. It does not
// imply connect() succeeded; user space treats it as an attempted remote
// association. IPv4 and Port arrive in network byte order.
type SocketConnectEvent struct {
	Header EventHeader
	Fd     uint32
	IPv4   uint32 // network byte order
	Port   uint16 // network byte order
	IsIPv6 bool
}

// SocketConnectPayloadSize is the wire size of a SocketConnectEvent payload, excluding the header.
const SocketConnectPayloadSize = 11

// UnmarshalSocketConnectEvent decodes a SocketConnectEvent.
func UnmarshalSocketConnectEvent(h EventHeader, buf []byte) (SocketConnectEvent, error) {
	body := buf[HeaderSize:]
	if len(body) < SocketConnectPayloadSize {
		return SocketConnectEvent{}, ErrShortBuffer
	}
	return SocketConnectEvent{
		Header: h,
		Fd:     binary.LittleEndian.Uint32(body[0:4]),
		IPv4:   binary.BigEndian.Uint32(body[4:8]),
		Port:   binary.BigEndian.Uint16(body[8:10]),
		IsIPv6: body[10] != 0,
	}, nil
}

// DupEvent is emitted by the dup2/dup3 entry probes.
type DupEvent struct {
	Header EventHeader
	OldFd  uint32
	NewFd  uint32
}

// DupPayloadSize is the wire size of a DupEvent payload, excluding the header.
const DupPayloadSize = 8

// UnmarshalDupEvent decodes a DupEvent.
func UnmarshalDupEvent(h EventHeader, buf []byte) (DupEvent, error) {
	body := buf[HeaderSize:]
	if len(body) < DupPayloadSize {
		return DupEvent{}, ErrShortBuffer
	}
	return DupEvent{
		Header: h,
		OldFd:  binary.LittleEndian.Uint32(body[0:4]),
		NewFd:  binary.LittleEndian.Uint32(body[4:8]),
	}, nil
}
