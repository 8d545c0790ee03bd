// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/juriSacchetta/sentinel/pkg/security/model"
)

func TestGetOrCreateReturnsSameProcessForSamePid(t *testing.T) {
	r := New()
	a := r.GetOrCreate(42)
	b := r.GetOrCreate(42)
	assert.Same(t, a, b)
	assert.Equal(t, 1, r.Len())
}

func TestFdTableRoundTrip(t *testing.T) {
	r := New()
	p := r.GetOrCreate(1)
	p.SetFd(7, model.NewMemfdDescriptor("payload"))

	d, ok := p.Fd(7)
	assert.True(t, ok)
	assert.Equal(t, model.DescriptorMemfd, d.Kind)
	assert.Equal(t, "payload", d.Name)

	p.CloseFd(7)
	_, ok = p.Fd(7)
	assert.False(t, ok)
}

func TestRemoveDropsProcess(t *testing.T) {
	r := New()
	r.GetOrCreate(1)
	assert.Equal(t, 1, r.Len())
	r.Remove(1)
	assert.Equal(t, 0, r.Len())
}
