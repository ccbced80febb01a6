// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package sysinfo

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/mem"
)

// Memory is a point in time view of the system memory
type Memory struct {
	Total     uint64
	Available uint64
}

// String returns a human readable status line
func (m Memory) String() string {
	return fmt.Sprintf("%s available out of %s", humanize.IBytes(m.Available), humanize.IBytes(m.Total))
}

// Fits returns true if the given amount of bytes can be committed without reclaiming memory
func (m Memory) Fits(bytes uint64) bool {
	return bytes <= m.Available
}

// Reader reads the system memory statistics
type Reader func() (*mem.VirtualMemoryStat, error)

// Snapshot reads the current system memory
func Snapshot() (Memory, error) {
	return SnapshotFrom(mem.VirtualMemory)
}

// SnapshotFrom reads the system memory using the given reader
func SnapshotFrom(read Reader) (Memory, error) {
	stat, err := read()
	if err != nil {
		return Memory{}, fmt.Errorf("unable to read the system memory: %w", err)
	}

	return Memory{
		Total:     stat.Total,
		Available: stat.Available,
	}, nil
}
