// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stress

type heapAllocator struct{}

// NewHeapAllocator returns an allocator backed by the go heap,
// the runtime aborts the process instead of returning an error when the heap cannot grow
func NewHeapAllocator() Allocator {
	return heapAllocator{}
}

func (heapAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (heapAllocator) ReadOnly([]byte) error {
	return nil
}
