// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package model

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(t *testing.T, kind Kind) []byte {
	t.Helper()
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(kind))
	binary.LittleEndian.PutUint32(buf[4:8], 1)
	binary.LittleEndian.PutUint32(buf[8:12], 2)
	return buf
}

func TestUnmarshalMemfdEventRoundTrip(t *testing.T) {
	buf := header(t, KindMemfd)
	body := make([]byte, MemfdPayloadSize)
	copy(body, "payload")
	binary.LittleEndian.PutUint32(body[MemfdFilenameSize:], 7)
	buf = append(buf, body...)

	h, err := UnmarshalHeader(buf)
	require.NoError(t, err)
	e, err := UnmarshalMemfdEvent(h, buf)
	require.NoError(t, err)

	assert.Equal(t, uint32(7), e.Fd)
	assert.Equal(t, "payload", e.Name())
}

func TestMemfdEventNameTruncatesAtFirstNUL(t *testing.T) {
	var e MemfdEvent
	copy(e.Filename[:], "ab\x00cd")
	assert.Equal(t, "ab", e.Name())
}

func TestMmapEventIsWriteExec(t *testing.T) {
	tests := []struct {
		name string
		prot uint32
		want bool
	}{
		{"write and exec", ProtWrite | ProtExec, true},
		{"exec only", ProtExec, false},
		{"write only", ProtWrite, false},
		{"write exec and read", ProtWrite | ProtExec | 0x1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := MmapEvent{Prot: tt.prot}
			assert.Equal(t, tt.want, e.IsWriteExec())
		})
	}
}

func TestUnmarshalSocketConnectEventNetworkByteOrder(t *testing.T) {
	// S4 (spec.md §8): ip=0x0100007F, port=0x5000 renders as 127.0.0.1:80.
	// The captured field values are big-endian reads of the wire bytes
	// [0x7F,0x00,0x00,0x01] and [0x00,0x50] respectively.
	buf := header(t, KindSocketConnect)
	body := make([]byte, SocketConnectPayloadSize)
	binary.LittleEndian.PutUint32(body[0:4], 3) // fd
	copy(body[4:8], []byte{0x7F, 0x00, 0x00, 0x01})
	copy(body[8:10], []byte{0x00, 0x50})
	body[10] = 0
	buf = append(buf, body...)

	h, err := UnmarshalHeader(buf)
	require.NoError(t, err)
	e, err := UnmarshalSocketConnectEvent(h, buf)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), e.Fd)
	assert.Equal(t, uint32(0x7F000001), e.IPv4)
	assert.Equal(t, uint16(0x0050), e.Port)
	assert.False(t, e.IsIPv6)
}

func TestUnmarshalDupEvent(t *testing.T) {
	buf := header(t, KindDup)
	body := make([]byte, DupPayloadSize)
	binary.LittleEndian.PutUint32(body[0:4], 3)
	binary.LittleEndian.PutUint32(body[4:8], 0)
	buf = append(buf, body...)

	h, err := UnmarshalHeader(buf)
	require.NoError(t, err)
	e, err := UnmarshalDupEvent(h, buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), e.OldFd)
	assert.Equal(t, uint32(0), e.NewFd)
}

func TestUnmarshalEventsRejectShortBuffer(t *testing.T) {
	h := EventHeader{Kind: KindMemfd}
	_, err := UnmarshalMemfdEvent(h, make([]byte, HeaderSize))
	assert.ErrorIs(t, err, ErrShortBuffer)
}
