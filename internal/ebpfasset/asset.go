// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

// Package ebpfasset locates the compiled probe object built from
// bpf/sentinel.bpf.c, mirroring the teacher's pkg/ebpf/bytecode reader:
// object loading itself is out of scope (spec.md §1), but something still
// needs to know the asset's filename and hand the manager an open file.
package ebpfasset

import (
	"fmt"
	"os"
	"path/filepath"
)

// Name is the compiled probe object's filename, produced by bpf/Makefile.
const Name = "sentinel.bpf.o"

// Reader opens the compiled probe object under dir (typically the
// directory the binary was installed alongside, or bpf/ in a source
// checkout). The caller is responsible for closing the returned file.
func Reader(dir string) (*os.File, error) {
	path := filepath.Join(dir, Name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ebpfasset: open %s: %w (build it with make -C bpf)", path, err)
	}
	return f, nil
}
