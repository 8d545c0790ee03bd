// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

// Package registry tracks live processes and their file descriptor tables,
// correlating events that arrive on independent probes (fd allocation,
// connect, dup) into a single per-process view, per spec.md §4.
package registry

import (
	"sync"
	"time"

	"github.com/juriSacchetta/sentinel/pkg/security/model"
	"github.com/juriSacchetta/sentinel/pkg/security/utils"
)

// Process is a single tracked pid and the file descriptors it currently
// holds. Binary metadata is resolved lazily and best-effort: a process that
// has already exited by the time we read /proc/<pid>/exe simply carries an
// empty path and name, per spec.md §3.
type Process struct {
	Pid       uint32
	FirstSeen time.Time

	mu       sync.Mutex
	resolved bool
	path     string
	name     string
	fds      map[uint32]model.Descriptor
}

func newProcess(pid uint32) *Process {
	return &Process{Pid: pid, FirstSeen: time.Now(), fds: make(map[uint32]model.Descriptor)}
}

// Exe returns the resolved binary path and base name, resolving on first use
// and caching the result for the life of the Process.
func (p *Process) Exe() (path string, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.resolved {
		p.path, p.name = utils.ResolveExe(p.Pid)
		p.resolved = true
	}
	return p.path, p.name
}

// SetFd records or replaces the descriptor at fd.
func (p *Process) SetFd(fd uint32, d model.Descriptor) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fds[fd] = d
}

// Fd returns the descriptor at fd and whether one is tracked there.
func (p *Process) Fd(fd uint32) (model.Descriptor, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	d, ok := p.fds[fd]
	return d, ok
}

// CloseFd drops the descriptor at fd, e.g. once it has been duped elsewhere
// and the source fd is no longer of interest on its own.
func (p *Process) CloseFd(fd uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.fds, fd)
}
