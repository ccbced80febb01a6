// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package nolimits

import "github.com/stretchr/testify/mock"

// SystemMock is a mock implementation of the System interface
type SystemMock struct {
	mock.Mock
}

//nolint:golint
func (f *SystemMock) Getuid() int {
	args := f.Called()

	return args.Int(0)
}

//nolint:golint
func (f *SystemMock) RelaxCPULimit() error {
	args := f.Called()

	return args.Error(0)
}

//nolint:golint
func (f *SystemMock) Setuid(uid int) error {
	args := f.Called(uid)

	return args.Error(0)
}

//nolint:golint
func (f *SystemMock) Exec(path string, argv []string, env []string) error {
	args := f.Called(path, argv, env)

	return args.Error(0)
}
