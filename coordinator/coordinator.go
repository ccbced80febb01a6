// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

// Package coordinator replicates the memory pressure worker across a group of processes:
// the original process spawns workers 2..N in its own process group, runs worker 1 itself,
// then waits for every worker it spawned.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/hashicorp/go-multierror"

	"github.com/DataDog/chaos-usemem/command"
	"github.com/DataDog/chaos-usemem/config"
	"github.com/DataDog/chaos-usemem/env"
	"github.com/DataDog/chaos-usemem/log"
	"github.com/DataDog/chaos-usemem/o11y/tags"
	"github.com/DataDog/chaos-usemem/process"
	"github.com/DataDog/chaos-usemem/stress"
	"github.com/DataDog/chaos-usemem/types"
)

// ErrSpawn is returned when a worker process cannot be started
var ErrSpawn = errors.New("unable to spawn worker")

// Deps are the collaborators of a coordinator
type Deps struct {
	Process  process.Manager
	Commands command.Factory
	// Executable is the program re-executed as worker processes
	Executable string
	// Worker is the worker running in the original process
	Worker stress.Worker
}

// WorkerResult is the outcome of a single worker
type WorkerResult struct {
	Index    int
	PID      int
	State    types.WorkerState
	ExitCode int
	Err      error
}

// Result gathers the outcome of every worker, indexed by ordinal minus one
type Result struct {
	ProcessGroupID int
	Workers        []WorkerResult
}

// Pending returns the ordinals of the workers which did not reach a terminal state
func (r Result) Pending() []int {
	pending := []int{}

	for _, worker := range r.Workers {
		if !worker.State.Terminal() {
			pending = append(pending, worker.Index)
		}
	}

	return pending
}

// Coordinator drives the fan-out and fan-in of worker processes
type Coordinator struct {
	cfg  config.Config
	deps Deps
}

// New creates a coordinator for the given configuration
func New(cfg config.Config, deps Deps) *Coordinator {
	return &Coordinator{
		cfg:  cfg,
		deps: deps,
	}
}

type child struct {
	cmd    command.Cmd
	result *WorkerResult
}

// Run creates the process group, spawns every worker but the first, runs the first one in the current process
// and waits for every spawned worker; a spawn failure terminates the whole process group, caller included
func (c *Coordinator) Run(ctx context.Context) (Result, error) {
	logger := log.FromContext(ctx)
	workers := int(c.cfg.Workers)
	result := Result{
		ProcessGroupID: process.NotFoundProcessPID,
		Workers:        make([]WorkerResult, workers),
	}

	for i := range result.Workers {
		result.Workers[i] = WorkerResult{
			Index:    i + types.OriginalWorkerIndex,
			PID:      process.NotFoundProcessPID,
			State:    types.WorkerStateStarting,
			ExitCode: command.NotFoundProcessExitCode,
		}
	}

	pgid, err := c.deps.Process.NewProcessGroup()
	if err != nil {
		return result, fmt.Errorf("unable to create the workers process group: %w", err)
	}

	result.ProcessGroupID = pgid
	logger.Debugw("process group created", tags.PgidKey, pgid, tags.WorkersKey, workers, tags.ExecutableKey, c.deps.Executable)

	children := make([]child, 0, workers-1)
	args := c.cfg.Args()

	for index := types.OriginalWorkerIndex + 1; index <= workers; index++ {
		worker := &result.Workers[index-1]
		cmd := c.deps.Commands.NewCmd(ctx, c.deps.Executable, args, []string{env.WorkerIndexEntry(index)})

		if err := cmd.Start(); err != nil {
			spawnErr := fmt.Errorf("%w %d: %w", ErrSpawn, index, err)
			transition(worker, types.WorkerStateFailed)
			worker.Err = spawnErr

			logger.Errorw("worker spawn failed, terminating the whole process group",
				tags.WorkerKey, index,
				tags.PgidKey, pgid,
				tags.PendingKey, result.Pending(),
				tags.ErrorKey, err,
			)

			if signalErr := c.deps.Process.SignalGroup(pgid, syscall.SIGTERM); signalErr != nil {
				return result, multierror.Append(spawnErr, signalErr)
			}

			return result, spawnErr
		}

		worker.PID = cmd.PID()
		transition(worker, types.WorkerStateRunning)
		children = append(children, child{cmd: cmd, result: worker})

		logger.Debugw("worker spawned", tags.WorkerKey, index, tags.PidKey, worker.PID)
	}

	var errs *multierror.Error

	original := &result.Workers[0]
	original.PID = c.deps.Process.ProcessID()
	transition(original, types.WorkerStateRunning)

	if _, err := c.deps.Worker.Run(ctx); err != nil {
		transition(original, types.WorkerStateFailed)
		original.Err = err
		errs = multierror.Append(errs, err)

		logger.Errorw("worker failed", tags.WorkerKey, original.Index, tags.ErrorKey, err)
	} else {
		original.ExitCode = 0
		transition(original, types.WorkerStateDone)
	}

	// the original worker outcome never shortcuts the wait of spawned workers
	for _, ch := range children {
		err := ch.cmd.Wait()
		ch.result.ExitCode = ch.cmd.ExitCode()

		if err != nil {
			transition(ch.result, types.WorkerStateFailed)
			ch.result.Err = fmt.Errorf("worker %d (pid %d) did not complete: %w", ch.result.Index, ch.result.PID, err)
			errs = multierror.Append(errs, ch.result.Err)

			logger.Errorw("worker failed",
				tags.WorkerKey, ch.result.Index,
				tags.PidKey, ch.result.PID,
				tags.ExitCodeKey, ch.result.ExitCode,
				tags.ErrorKey, err,
			)

			continue
		}

		transition(ch.result, types.WorkerStateDone)
		logger.Debugw("worker exited", tags.WorkerKey, ch.result.Index, tags.PidKey, ch.result.PID, tags.StateKey, ch.result.State)
	}

	if errs != nil {
		return result, multierror.Prefix(errs, "coordinator:")
	}

	return result, nil
}

func transition(worker *WorkerResult, next types.WorkerState) {
	if worker.State.CanTransitionTo(next) {
		worker.State = next
	}
}
