// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package detectors

import (
	"github.com/juriSacchetta/sentinel/pkg/security/alert"
	"github.com/juriSacchetta/sentinel/pkg/security/model"
	"github.com/juriSacchetta/sentinel/pkg/security/registry"
)

// ReflectiveLoader detects a W^X mapping of a tracked memfd (spec.md §4.6).
type ReflectiveLoader struct{}

// Name implements Detector.
func (r *ReflectiveLoader) Name() string { return "reflective_code_loading" }

// OnEvent implements Detector. Only Mmap events carrying both PROT_WRITE and
// PROT_EXEC against an fd the registry knows as a Memfd raise an alert;
// PROT_EXEC alone, or a mapping of a non-memfd fd, does not.
func (r *ReflectiveLoader) OnEvent(header model.EventHeader, raw []byte, reg *registry.Registry, sink alert.Sink) {
	if header.Kind != model.KindMmap {
		return
	}
	e, err := model.UnmarshalMmapEvent(header, raw)
	if err != nil {
		return
	}
	if !e.IsWriteExec() {
		return
	}
	proc := reg.GetOrCreate(header.Pid)
	d, ok := proc.Fd(e.Fd)
	if !ok || d.Kind != model.DescriptorMemfd {
		return
	}
	sink.Emit(alert.Alert{
		Kind:  alert.KindReflectiveCodeLoading,
		Pid:   header.Pid,
		Fds:   []uint32{e.Fd},
		Names: []string{d.Name},
	})
}
