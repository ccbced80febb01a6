// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build !unix

package process

import (
	"errors"
	"os"
	"syscall"
)

type manager struct{}

// NewManager creates a new process manager
func NewManager() Manager {
	return manager{}
}

func (p manager) ProcessID() int {
	return os.Getpid()
}

func (p manager) ProcessGroupID() int {
	return NotFoundProcessPID
}

func (p manager) NewProcessGroup() (int, error) {
	return NotFoundProcessPID, errors.New("unsupported")
}

func (p manager) SignalGroup(int, syscall.Signal) error {
	return errors.New("unsupported")
}
