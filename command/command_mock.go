// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package command

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// FactoryMock is a mock implementation of the Factory interface
type FactoryMock struct {
	mock.Mock
}

//nolint:golint
func (f *FactoryMock) NewCmd(ctx context.Context, name string, args []string, env []string) Cmd {
	ret := f.Called(ctx, name, args, env)

	return ret.Get(0).(Cmd)
}

// CmdMock is a mock implementation of the Cmd interface
type CmdMock struct {
	mock.Mock
}

//nolint:golint
func (c *CmdMock) Start() error {
	args := c.Called()

	return args.Error(0)
}

//nolint:golint
func (c *CmdMock) String() string {
	args := c.Called()

	return args.String(0)
}

//nolint:golint
func (c *CmdMock) Wait() error {
	args := c.Called()

	return args.Error(0)
}

//nolint:golint
func (c *CmdMock) PID() int {
	args := c.Called()

	return args.Int(0)
}

//nolint:golint
func (c *CmdMock) ExitCode() int {
	args := c.Called()

	return args.Int(0)
}
