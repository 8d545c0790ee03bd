// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package probe

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/juriSacchetta/sentinel/pkg/security/alert"
	"github.com/juriSacchetta/sentinel/pkg/security/model"
	"github.com/juriSacchetta/sentinel/pkg/security/registry"
)

func TestRingDataHandlerDispatchesAndReusesBuffer(t *testing.T) {
	sink := &recordingSink{}
	bus := NewBus(registry.New(), sink)
	ring := NewRing(bus, nil)

	raw := make([]byte, model.HeaderSize)
	binary.LittleEndian.PutUint32(raw[0:4], uint32(model.KindExecve))
	binary.LittleEndian.PutUint32(raw[4:8], 9)
	binary.LittleEndian.PutUint32(raw[8:12], 9)
	body := make([]byte, model.ExecvePayloadSize)
	binary.LittleEndian.PutUint32(body[0:4], 3)
	raw = append(raw, body...)

	// Prime the fd table so the Execve half of the fileless rule can fire.
	reg := bus.reg
	reg.GetOrCreate(9).SetFd(3, model.NewMemfdDescriptor("payload"))

	ring.DataHandler(0, raw, nil, nil)
	ring.DataHandler(0, raw, nil, nil)

	assert.Len(t, sink.got, 2)
	assert.Equal(t, alert.KindFilelessExecution, sink.got[0].Kind)
}

func TestRingLostHandlerToleratesNilMonitor(t *testing.T) {
	ring := NewRing(NewBus(registry.New(), &recordingSink{}), nil)
	assert.NotPanics(t, func() {
		ring.LostHandler(2, 5, nil, nil)
	})
}
