// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package utils

import (
	"runtime"

	"github.com/prometheus/procfs"
)

// OnlineCPUCount returns the number of online CPUs, used to size the ring
// reader's per-CPU worker pool (spec.md §4.2: "one long-running task per
// online CPU"). It prefers /proc/cpuinfo via procfs, the same source the
// teacher's stack already depends on (github.com/prometheus/procfs), and
// falls back to runtime.NumCPU() if /proc is unavailable (e.g. in a
// restricted test sandbox).
func OnlineCPUCount() int {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return runtime.NumCPU()
	}
	info, err := fs.CPUInfo()
	if err != nil || len(info) == 0 {
		return runtime.NumCPU()
	}
	return len(info)
}
