// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package command

import (
	"context"
	"os"
	"os/exec"

	"github.com/DataDog/chaos-usemem/process"
)

const (
	NotFoundProcessExitCode = -1
)

// Factory defines how we want to create a command (with context and with relevant fields set)
type Factory interface {
	NewCmd(ctx context.Context, name string, args []string, env []string) Cmd
}

// Cmd aims to be a convenient wrapper around os/exec.CommandContext to ease testing and move some process methods up (PID/ExitCode)
type Cmd interface {
	Start() error
	String() string
	Wait() error
	PID() int
	ExitCode() int
}

type cmd struct {
	*exec.Cmd
}

func (c *cmd) PID() int {
	if c == nil || c.Cmd == nil || c.Cmd.Process == nil {
		return process.NotFoundProcessPID
	}

	return c.Cmd.Process.Pid
}

// ExitCode returns the exit code of the exited process, or -1 if the process hasn't exited or was terminated by a signal
func (c *cmd) ExitCode() int {
	if c == nil || c.Cmd == nil { // ExitCode check if process state is nil
		return NotFoundProcessExitCode
	}

	return c.Cmd.ProcessState.ExitCode()
}

type factory struct{}

// NewFactory returns a factory creating commands sharing the caller standard streams
func NewFactory() Factory {
	return factory{}
}

// NewCmd creates a command inheriting the caller environment extended with the given env entries,
// the started process stays in the caller process group
func (f factory) NewCmd(ctx context.Context, name string, args []string, env []string) Cmd {
	cmdContext := exec.CommandContext(ctx, name, args...)

	cmdContext.Stdout = os.Stdout
	cmdContext.Stderr = os.Stderr
	cmdContext.Env = append(os.Environ(), env...)

	return &cmd{
		cmdContext,
	}
}
