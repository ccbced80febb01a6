// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build linux

package stress

import "golang.org/x/sys/unix"

type mmapAllocator struct{}

// NewAllocator returns the platform allocator: anonymous private mappings on linux,
// so an allocation refused by the kernel surfaces as an error instead of a runtime abort
func NewAllocator() Allocator {
	return mmapAllocator{}
}

// Allocate maps size bytes of anonymous memory, pages are only committed once written
func (mmapAllocator) Allocate(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
}

// ReadOnly drops the write permission of a mapping returned by Allocate
func (mmapAllocator) ReadOnly(b []byte) error {
	return unix.Mprotect(b, unix.PROT_READ)
}
