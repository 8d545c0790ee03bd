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

func TestUnmarshalHeader(t *testing.T) {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(KindExecve))
	binary.LittleEndian.PutUint32(buf[4:8], 100)
	binary.LittleEndian.PutUint32(buf[8:12], 101)

	h, err := UnmarshalHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, KindExecve, h.Kind)
	assert.Equal(t, uint32(100), h.Pid)
	assert.Equal(t, uint32(101), h.Tid)
}

func TestUnmarshalHeaderShortBuffer(t *testing.T) {
	_, err := UnmarshalHeader(make([]byte, HeaderSize-1))
	assert.ErrorIs(t, err, ErrShortBuffer)
}
