// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package probe

import (
	"sync"

	manager "github.com/DataDog/ebpf-manager"

	"github.com/juriSacchetta/sentinel/pkg/security/log"
	"github.com/juriSacchetta/sentinel/pkg/security/utils"
)

// minRingBuffers and minRingBufferSize are the per-CPU buffer pool floor
// spec.md §4.2 requires ("each task owns a ring of >= 10 reusable buffers
// of >= 1024 bytes"). ebpf-manager already runs one goroutine per online
// CPU delivering into PerfMapOptions.DataHandler; Ring supplies the
// reusable-buffer discipline on top of that boundary.
const (
	minRingBuffers    = 10
	minRingBufferSize = 1024
)

// Ring drains the manager's per-CPU perf event streams and forwards decoded
// records to a Bus. Each CPU gets its own sync.Pool of reusable buffers so
// that concurrent DataHandler invocations (one goroutine per CPU, per the
// manager's design) never contend on a shared buffer set.
type Ring struct {
	bus     *Bus
	monitor *Monitor

	mu    sync.Mutex
	pools map[int]*sync.Pool
}

// NewRing builds a Ring that dispatches decoded events to bus and records
// ring losses against monitor (which may be nil in tests). It pre-warms one
// buffer pool per online CPU (utils.OnlineCPUCount), matching the "one task
// per online CPU" shape the manager's per-CPU DataHandler goroutines
// already give us, so steady-state operation never allocates a pool lazily
// on a CPU's first event.
func NewRing(bus *Bus, monitor *Monitor) *Ring {
	r := &Ring{bus: bus, monitor: monitor, pools: make(map[int]*sync.Pool)}
	for cpu := 0; cpu < utils.OnlineCPUCount(); cpu++ {
		r.pools[cpu] = newBufferPool()
	}
	return r
}

func newBufferPool() *sync.Pool {
	p := &sync.Pool{
		New: func() interface{} {
			buf := make([]byte, minRingBufferSize)
			return &buf
		},
	}
	// Pre-warm with the minimum reusable buffer count so steady-state
	// operation never allocates once traffic is flowing.
	prewarmed := make([]*[]byte, 0, minRingBuffers)
	for i := 0; i < minRingBuffers; i++ {
		prewarmed = append(prewarmed, p.Get().(*[]byte))
	}
	for _, b := range prewarmed {
		p.Put(b)
	}
	return p
}

// poolFor returns the pool for cpu, lazily creating one if cpu falls
// outside the range NewRing pre-warmed (e.g. the CPU came online after
// startup).
func (r *Ring) poolFor(cpu int) *sync.Pool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pools[cpu]
	if ok {
		return p
	}
	p = newBufferPool()
	r.pools[cpu] = p
	return p
}

// DataHandler is the manager.PerfMapOptions.DataHandler callback: it runs on
// a per-CPU goroutine the manager owns, copies the record into a pooled
// buffer (the perf map's own slice is reused by the manager immediately
// after this call returns), dispatches it, and returns the buffer to its
// CPU-local pool.
func (r *Ring) DataHandler(cpu int, data []byte, _ *manager.PerfMap, _ *manager.Manager) {
	pool := r.poolFor(cpu)
	bufPtr := pool.Get().(*[]byte)
	buf := *bufPtr
	if cap(buf) < len(data) {
		buf = make([]byte, len(data))
	}
	buf = buf[:len(data)]
	copy(buf, data)

	r.bus.Dispatch(buf)

	*bufPtr = buf[:cap(buf)]
	pool.Put(bufPtr)
}

// LostHandler is the manager.PerfMapOptions.LostHandler callback: ring
// losses are logged as a warning carrying the drop count and otherwise
// ignored, per spec.md §4.2 and §7 ("Ring loss" taxonomy entry).
func (r *Ring) LostHandler(cpu int, count uint64, _ *manager.PerfMap, _ *manager.Manager) {
	log.Warnf("ring buffer loss: cpu=%d dropped=%d", cpu, count)
	if r.monitor != nil {
		r.monitor.RecordLoss(cpu, count)
	}
}
