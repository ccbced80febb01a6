// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package types

// WorkerState represents where a worker process is in its lifecycle
type WorkerState string

const (
	// WorkerStateStarting is the state of a worker whose process is being created
	WorkerStateStarting WorkerState = "STARTING"
	// WorkerStateRunning is the state of a worker burning cpu or saturating memory
	WorkerStateRunning WorkerState = "RUNNING"
	// WorkerStateDone is the state of a worker which wrote its whole memory region
	WorkerStateDone WorkerState = "DONE"
	// WorkerStateFailed is the state of a worker that could not be started or did not complete
	WorkerStateFailed WorkerState = "FAILED"
)

// OriginalWorkerIndex is the ordinal of the worker running in the original process
const OriginalWorkerIndex = 1

// Terminal returns true when no further transition can happen
func (s WorkerState) Terminal() bool {
	return s == WorkerStateDone || s == WorkerStateFailed
}

// CanTransitionTo returns true if going from s to next is allowed:
// STARTING -> RUNNING | FAILED, RUNNING -> DONE | FAILED
func (s WorkerState) CanTransitionTo(next WorkerState) bool {
	switch s {
	case WorkerStateStarting:
		return next == WorkerStateRunning || next == WorkerStateFailed
	case WorkerStateRunning:
		return next == WorkerStateDone || next == WorkerStateFailed
	default:
		return false
	}
}
