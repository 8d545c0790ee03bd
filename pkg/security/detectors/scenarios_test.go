// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package detectors_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juriSacchetta/sentinel/pkg/security/alert"
	"github.com/juriSacchetta/sentinel/pkg/security/detectors"
	"github.com/juriSacchetta/sentinel/pkg/security/model"
	"github.com/juriSacchetta/sentinel/pkg/security/registry"
)

// collector gathers every emitted alert for assertion; it implements alert.Sink.
type collector struct{ alerts []alert.Alert }

func (c *collector) Emit(a alert.Alert) { c.alerts = append(c.alerts, a) }

func newHarness() (*registry.Registry, *collector, []detectors.Detector) {
	return registry.New(), &collector{}, detectors.All()
}

func dispatch(t *testing.T, ds []detectors.Detector, reg *registry.Registry, sink alert.Sink, raw []byte) {
	t.Helper()
	h, err := model.UnmarshalHeader(raw)
	require.NoError(t, err)
	for _, d := range ds {
		d.OnEvent(h, raw, reg, sink)
	}
}

func encodeHeader(kind model.Kind, pid, tid uint32) []byte {
	buf := make([]byte, model.HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(kind))
	binary.LittleEndian.PutUint32(buf[4:8], pid)
	binary.LittleEndian.PutUint32(buf[8:12], tid)
	return buf
}

func encodeMemfd(pid uint32, fd uint32, name string) []byte {
	buf := encodeHeader(model.KindMemfd, pid, pid)
	body := make([]byte, model.MemfdPayloadSize)
	copy(body, name)
	binary.LittleEndian.PutUint32(body[model.MemfdFilenameSize:], fd)
	return append(buf, body...)
}

func encodeExecve(pid, fd, flags uint32) []byte {
	buf := encodeHeader(model.KindExecve, pid, pid)
	body := make([]byte, model.ExecvePayloadSize)
	binary.LittleEndian.PutUint32(body[0:4], fd)
	binary.LittleEndian.PutUint32(body[4:8], flags)
	return append(buf, body...)
}

func encodeMmap(pid, fd, prot uint32) []byte {
	buf := encodeHeader(model.KindMmap, pid, pid)
	body := make([]byte, model.MmapPayloadSize)
	binary.LittleEndian.PutUint32(body[0:4], fd)
	binary.LittleEndian.PutUint32(body[4:8], prot)
	return append(buf, body...)
}

func encodeSocketAlloc(pid, fd, domain, typ, protocol uint32) []byte {
	buf := encodeHeader(model.KindSocketAlloc, pid, pid)
	body := make([]byte, model.SocketAllocPayloadSize)
	binary.LittleEndian.PutUint32(body[0:4], fd)
	binary.LittleEndian.PutUint32(body[4:8], domain)
	binary.LittleEndian.PutUint32(body[8:12], typ)
	binary.LittleEndian.PutUint32(body[12:16], protocol)
	return append(buf, body...)
}

func encodeSocketConnect(pid, fd uint32, ipv4BE uint32, portBE uint16) []byte {
	buf := encodeHeader(model.KindSocketConnect, pid, pid)
	body := make([]byte, model.SocketConnectPayloadSize)
	binary.LittleEndian.PutUint32(body[0:4], fd)
	binary.BigEndian.PutUint32(body[4:8], ipv4BE)
	binary.BigEndian.PutUint16(body[8:10], portBE)
	body[10] = 0
	return append(buf, body...)
}

func encodeDup(pid, oldFd, newFd uint32) []byte {
	buf := encodeHeader(model.KindDup, pid, pid)
	body := make([]byte, model.DupPayloadSize)
	binary.LittleEndian.PutUint32(body[0:4], oldFd)
	binary.LittleEndian.PutUint32(body[4:8], newFd)
	return append(buf, body...)
}

func TestS1FilelessExecution(t *testing.T) {
	reg, sink, ds := newHarness()
	dispatch(t, ds, reg, sink, encodeMemfd(100, 7, "payload"))
	dispatch(t, ds, reg, sink, encodeExecve(100, 7, 0x1000))

	require.Len(t, sink.alerts, 1)
	a := sink.alerts[0]
	assert.Equal(t, alert.KindFilelessExecution, a.Kind)
	assert.Equal(t, uint32(100), a.Pid)
	assert.Equal(t, []uint32{7}, a.Fds)
	assert.Equal(t, []string{"payload"}, a.Names)
}

func TestS2ReflectiveLoad(t *testing.T) {
	reg, sink, ds := newHarness()
	dispatch(t, ds, reg, sink, encodeMemfd(100, 7, "libmal"))
	dispatch(t, ds, reg, sink, encodeMmap(100, 7, 0x6))

	require.Len(t, sink.alerts, 1)
	a := sink.alerts[0]
	assert.Equal(t, alert.KindReflectiveCodeLoading, a.Kind)
	assert.Equal(t, []string{"libmal"}, a.Names)
}

func TestS3MmapWithoutWriteDoesNotAlert(t *testing.T) {
	reg, sink, ds := newHarness()
	dispatch(t, ds, reg, sink, encodeMemfd(100, 7, "libmal"))
	dispatch(t, ds, reg, sink, encodeMmap(100, 7, 0x5))

	assert.Empty(t, sink.alerts)
}

func TestS4ReverseShellOverIPv4(t *testing.T) {
	reg, sink, ds := newHarness()
	dispatch(t, ds, reg, sink, encodeSocketAlloc(200, 3, 2, 1, 6))
	dispatch(t, ds, reg, sink, encodeSocketConnect(200, 3, 0x7F000001, 80))
	dispatch(t, ds, reg, sink, encodeDup(200, 3, 0))

	require.Len(t, sink.alerts, 1)
	a := sink.alerts[0]
	assert.Equal(t, alert.KindReverseShell, a.Kind)
	assert.Equal(t, []uint32{3, 0}, a.Fds)
	assert.Equal(t, "127.0.0.1:80", a.Remote)
}

func TestS5DupToNonStdioDoesNotAlert(t *testing.T) {
	reg, sink, ds := newHarness()
	dispatch(t, ds, reg, sink, encodeSocketAlloc(200, 3, 2, 1, 6))
	dispatch(t, ds, reg, sink, encodeSocketConnect(200, 3, 0x7F000001, 80))
	dispatch(t, ds, reg, sink, encodeDup(200, 3, 10))

	assert.Empty(t, sink.alerts)

	proc := reg.GetOrCreate(200)
	_, atOld := proc.Fd(3)
	_, atNew := proc.Fd(10)
	assert.True(t, atOld)
	assert.True(t, atNew)
}

func TestS6LossOfSocketAllocLeavesRegistryUnaffected(t *testing.T) {
	reg, sink, ds := newHarness()
	// SocketAlloc{pid=300, fd=4} is dropped in the ring; only the Dup arrives.
	dispatch(t, ds, reg, sink, encodeDup(300, 4, 1))

	assert.Empty(t, sink.alerts)
	proc := reg.GetOrCreate(300)
	_, ok := proc.Fd(1)
	assert.False(t, ok, "dup of an untracked old_fd must leave the table unchanged")
}
