// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package detectors

import (
	"github.com/juriSacchetta/sentinel/pkg/security/alert"
	"github.com/juriSacchetta/sentinel/pkg/security/model"
	"github.com/juriSacchetta/sentinel/pkg/security/registry"
)

// Fileless detects execve-at-fd against a tracked memfd (spec.md §4.5).
type Fileless struct{}

// Name implements Detector.
func (f *Fileless) Name() string { return "fileless_execution" }

// OnEvent implements Detector. Memfd events populate the fd table; Execve
// events check it and alert unconditionally on a hit — no suppression or
// deduplication, per spec.md §4.5 ("each execveat against a tracked memfd
// is an alert").
func (f *Fileless) OnEvent(header model.EventHeader, raw []byte, reg *registry.Registry, sink alert.Sink) {
	switch header.Kind {
	case model.KindMemfd:
		e, err := model.UnmarshalMemfdEvent(header, raw)
		if err != nil {
			return
		}
		proc := reg.GetOrCreate(header.Pid)
		proc.SetFd(e.Fd, model.NewMemfdDescriptor(e.Name()))

	case model.KindExecve:
		e, err := model.UnmarshalExecveEvent(header, raw)
		if err != nil {
			return
		}
		proc := reg.GetOrCreate(header.Pid)
		d, ok := proc.Fd(e.Fd)
		if !ok || d.Kind != model.DescriptorMemfd {
			return
		}
		sink.Emit(alert.Alert{
			Kind:  alert.KindFilelessExecution,
			Pid:   header.Pid,
			Fds:   []uint32{e.Fd},
			Names: []string{d.Name},
		})
	}
}
