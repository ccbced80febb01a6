// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stress

import (
	"fmt"
)

type memorySaturator struct {
	allocator Allocator
	region    []byte
}

// NewMemorySaturator creates a memory saturator allocating its region with the given allocator
func NewMemorySaturator(allocator Allocator) MemorySaturator {
	return &memorySaturator{
		allocator: allocator,
	}
}

// Saturate allocates a single region and fills it with chunk, the region is never released
// and lives as long as the process
func (m *memorySaturator) Saturate(size int, chunk []byte) (int, error) {
	if m.region != nil {
		return 0, fmt.Errorf("saturator already owns a %d bytes region, a worker saturates a single region", len(m.region))
	}

	if size <= 0 {
		return 0, fmt.Errorf("%w: region size must be positive, got %d", ErrAllocation, size)
	}

	if len(chunk) == 0 {
		return 0, fmt.Errorf("unable to saturate %d bytes from an empty chunk", size)
	}

	region, err := m.allocator.Allocate(size)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot allocate %d bytes: %w", ErrAllocation, size, err)
	}

	m.region = region

	return fill(region, chunk, nil), nil
}

// fill copies chunk into region repeatedly until every byte of region has been written,
// the last copy is truncated to the remaining length; observe, when set, receives each copy length
func fill(region, chunk []byte, observe func(n int)) int {
	written := 0

	for written < len(region) {
		n := copy(region[written:], chunk)
		written += n

		if observe != nil {
			observe(n)
		}
	}

	return written
}
