// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package registry

import "sync"

// Registry is the concurrent pid -> *Process table. Every probe callback
// reaches a Process through GetOrCreate rather than holding its own map, so
// the fileless, reflective-loader and reverse-shell detectors all observe
// the same fd state for a given pid.
type Registry struct {
	mu        sync.RWMutex
	processes map[uint32]*Process
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{processes: make(map[uint32]*Process)}
}

// GetOrCreate returns the Process for pid, creating one if this is the first
// event seen for it.
func (r *Registry) GetOrCreate(pid uint32) *Process {
	r.mu.RLock()
	p, ok := r.processes[pid]
	r.mu.RUnlock()
	if ok {
		return p
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.processes[pid]; ok {
		return p
	}
	p = newProcess(pid)
	r.processes[pid] = p
	return p
}

// Remove drops pid from the registry, e.g. once the sensor observes it exit.
// Exit tracking itself is out of scope (spec.md §1 names no exit probe);
// callers that learn of process death some other way may still use this to
// bound registry growth.
func (r *Registry) Remove(pid uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.processes, pid)
}

// Len reports the number of tracked processes, exposed for the monitor's
// gauge metric.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.processes)
}
