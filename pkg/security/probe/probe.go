// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package probe

import (
	"context"
	"sync"

	manager "github.com/DataDog/ebpf-manager"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sys/unix"

	"github.com/juriSacchetta/sentinel/internal/ebpfasset"
	"github.com/juriSacchetta/sentinel/pkg/security/alert"
	"github.com/juriSacchetta/sentinel/pkg/security/log"
	"github.com/juriSacchetta/sentinel/pkg/security/registry"
)

// Probe owns the kernel program set and its user-space plumbing: the
// manager, the ring reader, the dispatcher, and the process registry every
// detector reads and mutates. It is the component spec.md §4.8 calls
// "Attachment / lifecycle".
type Probe struct {
	bpfDir string

	manager *manager.Manager
	ring    *Ring
	bus     *Bus
	monitor *Monitor
	reg     *registry.Registry

	ctx       context.Context
	cancelFnc context.CancelFunc
	wg        sync.WaitGroup
}

// Option customizes NewProbe.
type Option func(*Probe)

// WithBPFDir sets the directory internal/ebpfasset looks in for the
// compiled probe object. Defaults to "bpf".
func WithBPFDir(dir string) Option {
	return func(p *Probe) { p.bpfDir = dir }
}

// NewProbe builds a Probe wired to the standard detector set and an alert
// sink that logs every alert and records it in promReg. promReg may be
// nil, in which case no metrics are registered.
func NewProbe(promReg prometheus.Registerer, opts ...Option) (*Probe, error) {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Probe{
		bpfDir:    "bpf",
		reg:       registry.New(),
		ctx:       ctx,
		cancelFnc: cancel,
	}
	for _, opt := range opts {
		opt(p)
	}

	var monitor *Monitor
	if promReg != nil {
		m, err := NewMonitor(p.reg, promReg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to register monitor collectors")
		}
		monitor = m
	}
	p.monitor = monitor

	var sink alert.Sink = LoggingSink(monitor)
	p.bus = NewBus(p.reg, sink)
	p.ring = NewRing(p.bus, monitor)

	return p, nil
}

// bumpMemlockRlimit removes the locked-memory ceiling so the kernel can pin
// the maps and programs this probe loads, mirroring the teacher's
// attachment sequence. Failure here is fatal (spec.md §7, taxonomy entry
// 6): without it, program load itself will fail.
func bumpMemlockRlimit() error {
	rlim := unix.Rlimit{Cur: unix.RLIM_INFINITY, Max: unix.RLIM_INFINITY}
	if err := unix.Setrlimit(unix.RLIMIT_MEMLOCK, &rlim); err != nil {
		return errors.Wrap(err, "failed to raise RLIMIT_MEMLOCK")
	}
	return nil
}

// Init loads the probe object with every tracepoint selected best-effort
// (spec.md §4.8), and wires the events perf map to the ring reader.
// Attachment itself happens in Start.
func (p *Probe) Init() error {
	if err := bumpMemlockRlimit(); err != nil {
		return err
	}

	reader, err := ebpfasset.Reader(p.bpfDir)
	if err != nil {
		return errors.Wrap(err, "failed to open probe object")
	}
	defer reader.Close()

	p.manager = &manager.Manager{
		Probes: probeList(),
		PerfMaps: []*manager.PerfMap{
			{
				Map: manager.Map{Name: eventsMapName},
				PerfMapOptions: manager.PerfMapOptions{
					DataHandler: p.ring.DataHandler,
					LostHandler: p.ring.LostHandler,
				},
			},
		},
	}

	options := manager.Options{
		ActivatedProbes:        selectors(),
		DefaultKProbeMaxActive: 512,
		MapSpecEditors:         stashMapSpecEditors(),
	}

	if err := p.manager.InitWithOptions(reader, options); err != nil {
		return errors.Wrap(err, "failed to init manager")
	}
	return nil
}

// Start attaches every probe and begins draining per-CPU ring buffers.
// Attach failures are logged and otherwise tolerated (spec.md §4.8): a
// subset of working detectors is preferred to full refusal.
func (p *Probe) Start() error {
	if err := p.manager.Start(); err != nil {
		log.Warnf("probe attachment encountered errors, continuing with a reduced probe set: %v", err)
	}
	return nil
}

// Registry exposes the process registry detectors and callers share.
func (p *Probe) Registry() *registry.Registry { return p.reg }

// Close stops the manager, unloading every attached probe and stopping the
// ring reader. No graceful drain of in-flight events is attempted, per
// spec.md §5 ("Cancellation / shutdown").
func (p *Probe) Close() error {
	p.cancelFnc()
	p.wg.Wait()
	if p.manager == nil {
		return nil
	}
	if err := p.manager.Stop(manager.CleanAll); err != nil {
		return errors.Wrap(err, "failed to stop manager")
	}
	return nil
}
