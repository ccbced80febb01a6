// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package process

import (
	"syscall"

	"github.com/stretchr/testify/mock"
)

// ManagerMock is a mock implementation of the Manager interface
type ManagerMock struct {
	mock.Mock
}

//nolint:golint
func (f *ManagerMock) ProcessID() int {
	args := f.Called()

	return args.Int(0)
}

//nolint:golint
func (f *ManagerMock) ProcessGroupID() int {
	args := f.Called()

	return args.Int(0)
}

//nolint:golint
func (f *ManagerMock) NewProcessGroup() (int, error) {
	args := f.Called()

	return args.Int(0), args.Error(1)
}

//nolint:golint
func (f *ManagerMock) SignalGroup(pgid int, signal syscall.Signal) error {
	args := f.Called(pgid, signal)

	return args.Error(0)
}

// RuntimeMock is a mock implementation of the Runtime interface
type RuntimeMock struct {
	mock.Mock
}

//nolint:golint
func (r *RuntimeMock) LockOSThread() {
	r.Called()
}

//nolint:golint
func (r *RuntimeMock) UnlockOSThread() {
	r.Called()
}
