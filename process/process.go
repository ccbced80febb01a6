// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package process

import "syscall"

// NotFoundProcessPID is returned when a process does not exist (yet)
const NotFoundProcessPID = -1

// Manager manages the current process and the process group it leads
type Manager interface {
	// ProcessID returns the caller PID
	ProcessID() int
	// ProcessGroupID returns the process group of the caller
	ProcessGroupID() int
	// NewProcessGroup makes the caller the leader of a new process group and returns its id,
	// it is a no-op when the caller already leads its group
	NewProcessGroup() (int, error)
	// SignalGroup sends the given signal to every member of the given process group, caller included
	SignalGroup(pgid int, signal syscall.Signal) error
}
