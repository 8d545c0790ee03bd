// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package probe

import (
	manager "github.com/DataDog/ebpf-manager"
)

// eventsMapName is the perf event array the kernel-side program writes
// every record to, regardless of Kind.
const eventsMapName = "events"

// selectors names every tracepoint probe the kernel program provides,
// grouped entry/exit per spec.md §4.1. Each selector is best-effort
// (BestEffort, not MandatoryProbes): a missing probe is logged and
// skipped rather than aborting startup, per spec.md §4.8 ("a subset of
// working detectors is preferred to full refusal").
func selectors() []manager.ProbesSelector {
	names := []string{
		"tracepoint_syscalls_sys_enter_memfd_create",
		"tracepoint_syscalls_sys_exit_memfd_create",
		"tracepoint_syscalls_sys_enter_execveat",
		"tracepoint_syscalls_sys_enter_mmap",
		"tracepoint_syscalls_sys_enter_socket",
		"tracepoint_syscalls_sys_exit_socket",
		"tracepoint_syscalls_sys_enter_connect",
		"tracepoint_syscalls_sys_enter_dup2",
		"tracepoint_syscalls_sys_enter_dup3",
	}
	out := make([]manager.ProbesSelector, 0, len(names))
	for _, n := range names {
		out = append(out, &manager.BestEffort{
			Selectors: []manager.ProbesSelector{
				&manager.ProbeSelector{ProbeIdentificationPair: manager.ProbeIdentificationPair{EBPFFuncName: n}},
			},
		})
	}
	return out
}

// probeList is the concrete manager.Probe set, one per function named in
// selectors, attached by (category, event) tracepoint identifiers.
func probeList() []*manager.Probe {
	tracepoint := func(funcName, category, event string) *manager.Probe {
		return &manager.Probe{
			ProbeIdentificationPair: manager.ProbeIdentificationPair{EBPFFuncName: funcName},
			TracepointCategory:      category,
			TracepointName:          event,
		}
	}
	return []*manager.Probe{
		tracepoint("tracepoint_syscalls_sys_enter_memfd_create", "syscalls", "sys_enter_memfd_create"),
		tracepoint("tracepoint_syscalls_sys_exit_memfd_create", "syscalls", "sys_exit_memfd_create"),
		tracepoint("tracepoint_syscalls_sys_enter_execveat", "syscalls", "sys_enter_execveat"),
		tracepoint("tracepoint_syscalls_sys_enter_mmap", "syscalls", "sys_enter_mmap"),
		tracepoint("tracepoint_syscalls_sys_enter_socket", "syscalls", "sys_enter_socket"),
		tracepoint("tracepoint_syscalls_sys_exit_socket", "syscalls", "sys_exit_socket"),
		tracepoint("tracepoint_syscalls_sys_enter_connect", "syscalls", "sys_enter_connect"),
		tracepoint("tracepoint_syscalls_sys_enter_dup2", "syscalls", "sys_enter_dup2"),
		tracepoint("tracepoint_syscalls_sys_enter_dup3", "syscalls", "sys_enter_dup3"),
	}
}

// stashMapMaxEntries and stashMapNames describe the two per-thread stash
// maps of spec.md §3: one for pending memfd_create filenames, one for
// pending socket() argument triples. Both are bounded at 1024 entries;
// overflow is tolerated (probe-plane losses are allowed, never surfaced as
// partial events). The ceiling is enforced from the Go side via
// stashMapSpecEditors rather than left solely to the compiled-in map
// definitions, so it can be tuned without touching the kernel object.
const stashMapMaxEntries = 1024

var stashMapNames = []string{"memfd_stash", "socket_stash"}

// stashMapSpecEditors builds the manager.Options.MapSpecEditors entries that
// pin stashMapMaxEntries onto both stash maps at load time.
func stashMapSpecEditors() map[string]manager.MapSpecEditor {
	editors := make(map[string]manager.MapSpecEditor, len(stashMapNames))
	for _, name := range stashMapNames {
		editors[name] = manager.MapSpecEditor{
			MaxEntries: stashMapMaxEntries,
			EditorFlag: manager.EditMaxEntries,
		}
	}
	return editors
}
