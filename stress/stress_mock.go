// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stress

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/atomic"

	"github.com/DataDog/chaos-usemem/types"
)

// CPUBurnerMock is a mock implementation of the CPUBurner interface
type CPUBurnerMock struct {
	mock.Mock
}

//nolint:golint
func (f *CPUBurnerMock) Burn(seconds uint) error {
	args := f.Called(seconds)

	return args.Error(0)
}

// MemorySaturatorMock is a mock implementation of the MemorySaturator interface
type MemorySaturatorMock struct {
	mock.Mock
}

//nolint:golint
func (f *MemorySaturatorMock) Saturate(size int, chunk []byte) (int, error) {
	args := f.Called(size, chunk)

	return args.Int(0), args.Error(1)
}

// AllocatorMock is a mock implementation of the Allocator interface
type AllocatorMock struct {
	mock.Mock
}

//nolint:golint
func (f *AllocatorMock) Allocate(size int) ([]byte, error) {
	args := f.Called(size)

	b, _ := args.Get(0).([]byte)

	return b, args.Error(1)
}

//nolint:golint
func (f *AllocatorMock) ReadOnly(b []byte) error {
	args := f.Called(b)

	return args.Error(0)
}

// AlarmMock is a mock implementation of the Alarm interface
type AlarmMock struct {
	mock.Mock
}

//nolint:golint
func (f *AlarmMock) Arm(d time.Duration, fired *atomic.Bool) (func(), error) {
	args := f.Called(d, fired)

	disarm, _ := args.Get(0).(func())

	return disarm, args.Error(1)
}

// EntropySourceMock is a mock implementation of the EntropySource interface
type EntropySourceMock struct {
	mock.Mock
}

//nolint:golint
func (f *EntropySourceMock) Open() (io.ReadCloser, error) {
	args := f.Called()

	r, _ := args.Get(0).(io.ReadCloser)

	return r, args.Error(1)
}

// WorkerMock is a mock implementation of the Worker interface
type WorkerMock struct {
	mock.Mock
}

//nolint:golint
func (f *WorkerMock) Run(ctx context.Context) (WorkerReport, error) {
	args := f.Called(ctx)

	return args.Get(0).(WorkerReport), args.Error(1)
}

//nolint:golint
func (f *WorkerMock) State() types.WorkerState {
	args := f.Called()

	return args.Get(0).(types.WorkerState)
}
