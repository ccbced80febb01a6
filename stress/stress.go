// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

// Package stress holds the building blocks of a memory pressure worker:
// an optional cpu burn phase, a random chunk filled from an entropy source,
// and a memory region written chunk after chunk until every byte is resident.
package stress

import "errors"

var (
	// ErrEntropy is returned when the entropy source cannot be opened or read
	ErrEntropy = errors.New("entropy source failure")
	// ErrAllocation is returned when a buffer cannot be allocated
	ErrAllocation = errors.New("memory allocation failure")
)

// CPUBurner keeps one core busy before memory pressure is applied
type CPUBurner interface {
	// Burn busy-loops for the given number of seconds, returning immediately for 0
	Burn(seconds uint) error
}

// MemorySaturator allocates a memory region and writes every single byte of it
type MemorySaturator interface {
	// Saturate allocates size bytes and copies chunk into them until the region is full,
	// it returns the number of bytes written
	Saturate(size int, chunk []byte) (int, error)
}

// Allocator provides the memory buffers used by a worker
type Allocator interface {
	// Allocate returns a zeroed buffer of exactly size bytes
	Allocate(size int) ([]byte, error)
	// ReadOnly forbids any further write to the given buffer
	ReadOnly(b []byte) error
}
