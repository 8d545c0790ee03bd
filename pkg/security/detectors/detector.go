// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

// Package detectors holds the three stateful rules this sensor runs over
// the decoded event stream: fileless execution, reflective code loading,
// and reverse shells. Every detector is a leaf value with no private state
// of its own — all state lives in the process registry (spec.md §9,
// "Polymorphic detector set") — so the set can grow without the dispatcher
// caring about construction order beyond the sequence it is given.
package detectors

import (
	"github.com/juriSacchetta/sentinel/pkg/security/alert"
	"github.com/juriSacchetta/sentinel/pkg/security/model"
	"github.com/juriSacchetta/sentinel/pkg/security/registry"
)

// Detector is the capability set every rule implements: a name for logging
// and a single entry point the bus calls once per decoded event.
type Detector interface {
	Name() string
	OnEvent(header model.EventHeader, raw []byte, reg *registry.Registry, sink alert.Sink)
}

// All returns the standard detector set in a fixed, stable order. Order has
// no behavioral significance — each detector is independent — but a fixed
// order keeps alert ordering deterministic for a given event stream.
func All() []Detector {
	return []Detector{
		&Fileless{},
		&ReflectiveLoader{},
		&ReverseShell{},
	}
}
