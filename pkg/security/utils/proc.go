// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

// Package utils holds small, dependency-grounded helpers shared across the
// analysis plane: process metadata resolution, socket domain/type
// stringification, network-order address extraction, and CPU counting.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveExe follows /proc/<pid>/exe and returns the resolved binary path
// and its base name. Both are empty if the link cannot be read (the process
// may have already exited, or the sensor may lack permission); that failure
// is non-fatal, per spec.md §3 ("both may be absent").
func ResolveExe(pid uint32) (path string, name string) {
	link := fmt.Sprintf("/proc/%d/exe", pid)
	resolved, err := os.Readlink(link)
	if err != nil {
		return "", ""
	}
	return resolved, filepath.Base(resolved)
}
