// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build unix

package process

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

type manager struct{}

// NewManager creates a new process manager
func NewManager() Manager {
	return manager{}
}

// ProcessID returns the caller PID
func (p manager) ProcessID() int {
	return unix.Getpid()
}

// ProcessGroupID returns the caller process group id
func (p manager) ProcessGroupID() int {
	return unix.Getpgrp()
}

// NewProcessGroup puts the caller in a new process group it leads
func (p manager) NewProcessGroup() (int, error) {
	pid := unix.Getpid()

	// setpgid fails with EPERM for session leaders, which already lead their group
	if p.ProcessGroupID() == pid {
		return pid, nil
	}

	if err := unix.Setpgid(0, 0); err != nil {
		return NotFoundProcessPID, fmt.Errorf("unable to create a new process group for process %d: %w", pid, err)
	}

	return pid, nil
}

// SignalGroup sends the provided signal to the whole process group
func (p manager) SignalGroup(pgid int, signal syscall.Signal) error {
	if pgid <= 0 {
		return fmt.Errorf("invalid process group id %d", pgid)
	}

	if err := unix.Kill(-pgid, signal); err != nil {
		return fmt.Errorf("unable to send %s to process group %d: %w", signal, pgid, err)
	}

	return nil
}
