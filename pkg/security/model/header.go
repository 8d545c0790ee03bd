// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package model

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the wire size, in bytes, of EventHeader: Kind, Pid, Tid as
// three consecutive uint32 host-byte-order fields with no padding.
const HeaderSize = 12

// EventHeader is the fixed-layout record every event begins with. It is
// read with encoding/binary rather than an unsafe pointer cast so that
// decoding never assumes the buffer starts at a naturally aligned address,
// per the "unaligned loads" requirement the probe ABI imposes on readers.
type EventHeader struct {
	Kind Kind
	Pid  uint32
	Tid  uint32
}

// UnmarshalHeader decodes an EventHeader from the front of buf. It returns
// ErrShortBuffer, never panics, if buf is shorter than HeaderSize: a
// malformed or truncated record must be dropped silently by its caller, not
// crash the sensor.
func UnmarshalHeader(buf []byte) (EventHeader, error) {
	if len(buf) < HeaderSize {
		return EventHeader{}, ErrShortBuffer
	}
	return EventHeader{
		Kind: Kind(binary.LittleEndian.Uint32(buf[0:4])),
		Pid:  binary.LittleEndian.Uint32(buf[4:8]),
		Tid:  binary.LittleEndian.Uint32(buf[8:12]),
	}, nil
}

// ErrShortBuffer is returned when a buffer is too short to hold the
// structure being decoded from it.
var ErrShortBuffer = fmt.Errorf("model: buffer too short")
