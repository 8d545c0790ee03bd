// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

// Package probe owns the attachment/lifecycle of the eBPF program set, the
// per-CPU ring reader, and the dispatcher that fans decoded events out to
// detectors. It is the glue layer named "Attachment / lifecycle" and
// "Ring reader" in the component design.
package probe

import (
	"github.com/juriSacchetta/sentinel/pkg/security/alert"
	"github.com/juriSacchetta/sentinel/pkg/security/detectors"
	"github.com/juriSacchetta/sentinel/pkg/security/log"
	"github.com/juriSacchetta/sentinel/pkg/security/model"
	"github.com/juriSacchetta/sentinel/pkg/security/registry"
)

// Bus decodes a raw event record and fans it out to every registered
// detector. It holds no state of its own beyond the registry and detector
// set it was built with (spec.md §4.4: "the bus neither inspects payloads
// nor maintains state").
type Bus struct {
	reg       *registry.Registry
	detectors []detectors.Detector
	sink      alert.Sink
}

// NewBus builds a Bus over the standard detector set.
func NewBus(reg *registry.Registry, sink alert.Sink) *Bus {
	return &Bus{reg: reg, detectors: detectors.All(), sink: sink}
}

// Dispatch decodes raw's header and calls every detector with the decoded
// header and the full raw record (detectors re-decode their own payload,
// keeping the bus ignorant of per-kind layouts). Buffers shorter than the
// header are dropped silently; an unrecognized discriminator is still
// handed to detectors, which ignore kinds they don't act on.
func (b *Bus) Dispatch(raw []byte) {
	header, err := model.UnmarshalHeader(raw)
	if err != nil {
		return
	}
	for _, d := range b.detectors {
		d.OnEvent(header, raw, b.reg, b.sink)
	}
}

// LoggingSink adapts the package logger into an alert.Sink, the default
// sink used when the caller wires no other alert transport (out of scope,
// spec.md §1). When monitor is non-nil each alert also increments its
// per-kind counter.
func LoggingSink(monitor *Monitor) alert.Sink {
	return alert.SinkFunc(func(a alert.Alert) {
		log.Warnf("alert kind=%s pid=%d fds=%v names=%v remote=%q", a.Kind, a.Pid, a.Fds, a.Names, a.Remote)
		if monitor != nil {
			monitor.RecordAlert(string(a.Kind))
		}
	})
}
