// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package probe

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/juriSacchetta/sentinel/pkg/security/registry"
)

// Monitor exposes operational gauges/counters about the running probe: ring
// losses, tracked-process count, and alerts raised per kind. It mirrors the
// teacher's probe.Monitor role without any of the CWS-specific rule-match
// accounting this sensor has no use for.
type Monitor struct {
	reg *registry.Registry

	trackedProcesses prometheus.GaugeFunc
	ringLosses       *prometheus.CounterVec
	alertsTotal      *prometheus.CounterVec
}

// NewMonitor builds a Monitor and registers its collectors against promReg.
func NewMonitor(procReg *registry.Registry, promReg prometheus.Registerer) (*Monitor, error) {
	m := &Monitor{
		reg: procReg,
		ringLosses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sentinel",
			Subsystem: "ring",
			Name:      "losses_total",
			Help:      "Events dropped by the per-CPU perf ring before being read.",
		}, []string{"cpu"}),
		alertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sentinel",
			Subsystem: "detectors",
			Name:      "alerts_total",
			Help:      "Alerts emitted, by detector kind.",
		}, []string{"kind"}),
	}
	m.trackedProcesses = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "sentinel",
		Subsystem: "registry",
		Name:      "tracked_processes",
		Help:      "Number of process records currently held by the registry.",
	}, func() float64 { return float64(procReg.Len()) })

	for _, c := range []prometheus.Collector{m.ringLosses, m.alertsTotal, m.trackedProcesses} {
		if err := promReg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordLoss increments the per-CPU ring loss counter.
func (m *Monitor) RecordLoss(cpu int, count uint64) {
	m.ringLosses.WithLabelValues(strconv.Itoa(cpu)).Add(float64(count))
}

// RecordAlert increments the alert counter for kind.
func (m *Monitor) RecordAlert(kind string) {
	m.alertsTotal.WithLabelValues(kind).Inc()
}
