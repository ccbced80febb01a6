// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build linux

package nolimits

import "golang.org/x/sys/unix"

// rlimInfinity is RLIM_INFINITY
const rlimInfinity = ^uint64(0)

type system struct{}

// NewSystem returns the System backed by the operating system
func NewSystem() System {
	return system{}
}

func (system) Getuid() int {
	return unix.Getuid()
}

func (system) RelaxCPULimit() error {
	return unix.Setrlimit(unix.RLIMIT_CPU, &unix.Rlimit{Cur: rlimInfinity, Max: rlimInfinity})
}

func (system) Setuid(uid int) error {
	return unix.Setuid(uid)
}

func (system) Exec(path string, argv []string, env []string) error {
	return unix.Exec(path, argv, env)
}
