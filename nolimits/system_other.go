// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build !linux

package nolimits

import "errors"

type system struct{}

// NewSystem returns the System backed by the operating system
func NewSystem() System {
	return system{}
}

func (system) Getuid() int {
	return -1
}

func (system) RelaxCPULimit() error {
	return errors.New("unsupported")
}

func (system) Setuid(int) error {
	return errors.New("unsupported")
}

func (system) Exec(string, []string, []string) error {
	return errors.New("unsupported")
}
