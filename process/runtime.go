// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package process

import "runtime"

// Runtime wraps the scheduler calls a busy loop needs so they can be mocked
type Runtime interface {
	// LockOSThread wires the calling goroutine to its current operating system thread.
	// The calling goroutine will always execute in that thread,
	// and no other goroutine will execute in it,
	// until the calling goroutine has made as many calls to
	// UnlockOSThread as to LockOSThread.
	LockOSThread()

	// UnlockOSThread undoes an earlier call to LockOSThread.
	UnlockOSThread()
}

type runtimeImpl struct{}

// NewRuntime returns the Runtime backed by the go scheduler
func NewRuntime() Runtime {
	return runtimeImpl{}
}

func (r runtimeImpl) LockOSThread() {
	runtime.LockOSThread()
}

func (r runtimeImpl) UnlockOSThread() {
	runtime.UnlockOSThread()
}
